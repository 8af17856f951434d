package modals

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/enigmavision/internal/enigma"
	"github.com/zhubert/enigmavision/internal/keys"
)

// plugboardColumns is the width of the letter grid
const plugboardColumns = 6

// PlugConnectMsg asks the app to cable A to B.
type PlugConnectMsg struct{ A, B rune }

// PlugDisconnectMsg asks the app to pull the cable on Symbol.
type PlugDisconnectMsg struct{ Symbol rune }

// PlugClearMsg asks the app to pull every cable.
type PlugClearMsg struct{}

// PlugboardState is a grid of the 26 sockets. Selecting two letters in turn
// connects them; the app applies the change and pushes the resulting pairs
// back with SetPairs.
type PlugboardState struct {
	pairs    []enigma.PlugPair
	cursor   int
	selected rune
}

func (*PlugboardState) modalState() {}

func (s *PlugboardState) Title() string { return "Plugboard" }

func (s *PlugboardState) Help() string {
	return "arrows: move  Enter/Space: plug  Bksp: unplug  x: clear all  Esc: close"
}

// SetPairs replaces the pairs shown
func (s *PlugboardState) SetPairs(pairs []enigma.PlugPair) {
	s.pairs = append([]enigma.PlugPair(nil), pairs...)
}

// Pairs returns the pairs shown
func (s *PlugboardState) Pairs() []enigma.PlugPair {
	return append([]enigma.PlugPair(nil), s.pairs...)
}

// Cursor returns the letter under the cursor
func (s *PlugboardState) Cursor() rune {
	return enigma.Symbol(s.cursor)
}

// Selected returns the letter waiting for its partner, or zero
func (s *PlugboardState) Selected() rune {
	return s.selected
}

func (s *PlugboardState) pairIndex(r rune) int {
	for i, p := range s.pairs {
		if p.Has(r) {
			return i
		}
	}
	return -1
}

func (s *PlugboardState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	var rows []string
	var row []string
	for i, r := range enigma.Alphabet {
		row = append(row, s.renderSocket(i, r))
		if (i+1)%plugboardColumns == 0 || i == enigma.Size-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)

	status := fmt.Sprintf("%d/%d pairs connected", len(s.pairs), enigma.MaxPlugPairs)
	if s.selected != 0 {
		status += fmt.Sprintf("  ·  %c selected, pick its partner", s.selected)
	}
	statusLine := lipgloss.NewStyle().Foreground(ColorTextMuted).Render(status)

	var spec []string
	for i, p := range s.pairs {
		spec = append(spec, lipgloss.NewStyle().Foreground(plugColor(i)).Bold(true).Render(p.String()))
	}
	pairLine := strings.Join(spec, " ")

	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, grid, "", statusLine, pairLine, help)
}

func (s *PlugboardState) renderSocket(i int, r rune) string {
	style := lipgloss.NewStyle().Padding(0, 1).Foreground(ColorTextMuted)
	if idx := s.pairIndex(r); idx >= 0 {
		style = style.Foreground(ColorTextInverse).Background(plugColor(idx)).Bold(true)
	}
	if r == s.selected {
		style = style.Underline(true).Bold(true)
	}

	label := " " + string(r) + " "
	if i == s.cursor {
		label = "[" + string(r) + "]"
	}
	return lipgloss.NewStyle().MarginRight(1).Render(style.Render(label))
}

func (s *PlugboardState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch keyMsg.String() {
	case keys.Left:
		s.moveCursor(-1)
	case keys.Right:
		s.moveCursor(1)
	case keys.Up:
		s.moveCursor(-plugboardColumns)
	case keys.Down:
		s.moveCursor(plugboardColumns)
	case keys.Home:
		s.cursor = 0
	case keys.End:
		s.cursor = enigma.Size - 1
	case keys.Enter, keys.Space:
		return s, s.choose(s.Cursor())
	case keys.Backspace, "delete":
		r := s.Cursor()
		if s.pairIndex(r) < 0 {
			return s, nil
		}
		s.selected = 0
		return s, func() tea.Msg { return PlugDisconnectMsg{Symbol: r} }
	case "x":
		s.selected = 0
		return s, func() tea.Msg { return PlugClearMsg{} }
	}
	return s, nil
}

// moveCursor moves by delta, clamped to the grid
func (s *PlugboardState) moveCursor(delta int) {
	next := s.cursor + delta
	if next < 0 || next >= enigma.Size {
		return
	}
	s.cursor = next
}

// choose selects r, deselects it when already selected, or connects it to
// the pending selection.
func (s *PlugboardState) choose(r rune) tea.Cmd {
	switch s.selected {
	case 0:
		s.selected = r
		return nil
	case r:
		s.selected = 0
		return nil
	}
	a := s.selected
	s.selected = 0
	return func() tea.Msg { return PlugConnectMsg{A: a, B: r} }
}

// NewPlugboardState opens the plugboard showing pairs
func NewPlugboardState(pairs []enigma.PlugPair) *PlugboardState {
	s := &PlugboardState{}
	s.SetPairs(pairs)
	return s
}

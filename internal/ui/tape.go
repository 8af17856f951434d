package ui

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Tape is a titled, scrollable panel holding either the plaintext or the
// ciphertext. New text always scrolls to the bottom.
type Tape struct {
	title       string
	placeholder string
	text        string
	width       int
	height      int
	focused     bool
	viewport    viewport.Model
}

// NewTape creates a tape panel
func NewTape(title, placeholder string) *Tape {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	t := &Tape{
		title:       title,
		placeholder: placeholder,
		viewport:    vp,
	}
	t.updateContent()
	return t
}

// SetSize sets the outer dimensions of the panel, borders included
func (t *Tape) SetSize(width, height int) {
	t.width = width
	t.height = height

	innerWidth := width - BorderSize
	vpHeight := height - BorderSize - TitleHeight
	if innerWidth < 1 {
		innerWidth = 1
	}
	if vpHeight < MinTapeHeight {
		vpHeight = MinTapeHeight
	}
	t.viewport.SetWidth(innerWidth)
	t.viewport.SetHeight(vpHeight)
	t.updateContent()
}

// SetFocused highlights the panel border
func (t *Tape) SetFocused(focused bool) {
	t.focused = focused
}

// SetText replaces the tape's contents
func (t *Tape) SetText(text string) {
	if text == t.text {
		return
	}
	t.text = text
	t.updateContent()
}

// Text returns the tape's contents
func (t *Tape) Text() string {
	return t.text
}

func (t *Tape) updateContent() {
	wrapWidth := t.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	var content string
	if t.text == "" {
		content = TapePlaceholderStyle.Render(t.placeholder)
	} else {
		content = TapeTextStyle.Render(ansi.Hardwrap(t.text, wrapWidth, true))
	}
	t.viewport.SetContent(content)
	t.viewport.GotoBottom()
}

// Update passes scroll messages to the viewport
func (t *Tape) Update(msg tea.Msg) (*Tape, tea.Cmd) {
	var cmd tea.Cmd
	t.viewport, cmd = t.viewport.Update(msg)
	return t, cmd
}

// View renders the panel
func (t *Tape) View() string {
	panelStyle := PanelStyle
	if t.focused {
		panelStyle = PanelFocusedStyle
	}

	title := PanelTitleStyle.Render(t.title)
	body := lipgloss.JoinVertical(lipgloss.Left, title, t.viewport.View())

	if t.width <= 0 {
		return panelStyle.Render(body)
	}
	return panelStyle.Width(t.width).Height(t.height).Render(body)
}

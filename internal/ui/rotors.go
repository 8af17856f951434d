package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/zhubert/enigmavision/internal/enigma"
)

// RotorDial is the display state of a single rotor.
type RotorDial struct {
	Type     string
	Position rune
	Notch    rune
	Locked   bool
}

// RotorPanel renders the three rotor dials, left to right.
type RotorPanel struct {
	width int
	dials [3]RotorDial
}

// NewRotorPanel creates an empty rotor panel
func NewRotorPanel() *RotorPanel {
	return &RotorPanel{}
}

// SetWidth sets the width the dials are centered within
func (p *RotorPanel) SetWidth(width int) {
	p.width = width
}

// SetDials replaces the dial state
func (p *RotorPanel) SetDials(dials [3]RotorDial) {
	p.dials = dials
}

// Dials returns the current dial state
func (p *RotorPanel) Dials() [3]RotorDial {
	return p.dials
}

// Height is the number of lines View returns
func (p *RotorPanel) Height() int {
	return RotorDialHeight + BorderSize + 1
}

// View renders the panel
func (p *RotorPanel) View() string {
	rendered := make([]string, 0, len(p.dials))
	for i, d := range p.dials {
		if i > 0 {
			rendered = append(rendered, "  ")
		}
		rendered = append(rendered, renderDial(d, enigma.Slots[i]))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if p.width <= 0 {
		return row
	}
	return lipgloss.PlaceHorizontal(p.width, lipgloss.Center, row)
}

func renderDial(d RotorDial, slot enigma.Slot) string {
	line := lipgloss.NewStyle().Width(RotorDialWidth).Align(lipgloss.Center)

	pos := enigma.NormalizePosition(d.Position)
	prev := enigma.Symbol(enigma.Index(pos) - 1)
	next := enigma.Symbol(enigma.Index(pos) + 1)

	current := "▸ " + RotorLetterStyle.Render(string(pos)) + " ◂"

	var status []string
	if d.Locked {
		status = append(status, RotorLockStyle.Render("lock"))
	}
	if pos == d.Notch {
		status = append(status, RotorNotchStyle.Render("◆"))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		line.Render(RotorTypeStyle.Render(d.Type)),
		line.Render(RotorNeighborStyle.Render(string(prev))),
		line.Render(current),
		line.Render(RotorNeighborStyle.Render(string(next))),
		line.Render(strings.Join(status, " ")),
	)

	border := PanelStyle
	if d.Locked {
		border = border.BorderForeground(ColorMuted)
	}
	label := lipgloss.NewStyle().
		Width(RotorDialWidth + BorderSize).
		Align(lipgloss.Center).
		Foreground(ColorTextMuted).
		Render(slot.String())

	return lipgloss.JoinVertical(lipgloss.Center, border.Render(body), label)
}

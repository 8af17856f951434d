package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/zhubert/enigmavision/internal/enigma"
)

// Lampboard shows one lamp per letter, lighting the last cipher letter.
type Lampboard struct {
	width int
	lit   rune
}

// NewLampboard creates a lampboard with every lamp dark
func NewLampboard() *Lampboard {
	return &Lampboard{}
}

// SetWidth sets the width the lamps are centered within
func (l *Lampboard) SetWidth(width int) {
	l.width = width
}

// Light turns on the lamp for r. Anything outside the alphabet turns
// every lamp off.
func (l *Lampboard) Light(r rune) {
	if !enigma.IsSymbol(r) {
		r = 0
	}
	l.lit = r
}

// Off turns every lamp off
func (l *Lampboard) Off() {
	l.lit = 0
}

// Lit returns the lit lamp, or zero when all are dark
func (l *Lampboard) Lit() rune {
	return l.lit
}

// Height is the number of lines View returns
func (l *Lampboard) Height() int {
	rows := (enigma.Size + LampboardColumns - 1) / LampboardColumns
	return rows + BorderSize
}

// View renders the lamps in rows of LampboardColumns
func (l *Lampboard) View() string {
	var rows []string
	var row strings.Builder
	for i, r := range enigma.Alphabet {
		if r == l.lit {
			row.WriteString(LampOnStyle.Render(string(r)))
		} else {
			row.WriteString(LampOffStyle.Render(string(r)))
		}
		if (i+1)%LampboardColumns == 0 || i == enigma.Size-1 {
			rows = append(rows, row.String())
			row.Reset()
		}
	}

	board := PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
	if l.width <= 0 {
		return board
	}
	return lipgloss.PlaceHorizontal(l.width, lipgloss.Center, board)
}

package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/zhubert/enigmavision/internal/enigma"
)

// PlugStrip is a one-line summary of the connected plug pairs.
type PlugStrip struct {
	width int
	pairs []enigma.PlugPair
}

// NewPlugStrip creates an empty plug strip
func NewPlugStrip() *PlugStrip {
	return &PlugStrip{}
}

// SetWidth sets the strip width
func (s *PlugStrip) SetWidth(width int) {
	s.width = width
}

// SetPairs replaces the pairs shown
func (s *PlugStrip) SetPairs(pairs []enigma.PlugPair) {
	s.pairs = append([]enigma.PlugPair(nil), pairs...)
}

// View renders the strip
func (s *PlugStrip) View() string {
	label := lipgloss.NewStyle().Foreground(ColorTextMuted).Render("plugboard ")

	var body string
	if len(s.pairs) == 0 {
		body = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).Render("no plugs connected")
	} else {
		parts := make([]string, len(s.pairs))
		for i, p := range s.pairs {
			parts[i] = PlugStyle(i).Render(p.String())
		}
		body = strings.Join(parts, " ")
	}

	count := lipgloss.NewStyle().Foreground(ColorTextMuted).
		Render(fmt.Sprintf("  %d/%d", len(s.pairs), enigma.MaxPlugPairs))

	line := label + body + count
	if s.width <= 0 {
		return line
	}
	return lipgloss.PlaceHorizontal(s.width, lipgloss.Center, line)
}

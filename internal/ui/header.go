package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// Header represents the top header bar
type Header struct {
	width     int
	rotorInfo string
	plugCount int
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetRotorInfo sets the rotor order summary shown on the right, e.g. "I · II · III"
func (h *Header) SetRotorInfo(info string) {
	h.rotorInfo = info
}

// SetPlugCount sets the number of connected plug pairs
func (h *Header) SetPlugCount(n int) {
	h.plugCount = n
}

// View renders the header
func (h *Header) View() string {
	titleText := " enigma vision"

	var rightText string
	if h.rotorInfo != "" {
		rightText = h.rotorInfo
		rightText += fmt.Sprintf("  (%d plugs)", h.plugCount)
		rightText += " "
	}

	paddingLen := h.width - runewidth.StringWidth(titleText) - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText
	return h.renderGradient(fullContent, len([]rune(titleText)))
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content over a background fading from the
// theme's primary color to its background. The first boldLen runes are bold.
func (h *Header) renderGradient(content string, boldLen int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	// the plug count sits in parentheses and is muted
	mutedStart := strings.LastIndex(content, "(")

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	byteOffset := 0
	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < boldLen)

		if mutedStart >= 0 && byteOffset >= mutedStart {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
		byteOffset += len(string(r))
	}

	return result.String()
}

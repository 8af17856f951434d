package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/zhubert/enigmavision/internal/ui/modals"
)

// Color palette, replaced by regenerateStyles whenever the theme changes
var (
	ColorPrimary     color.Color = lipgloss.Color("#7C3AED")
	ColorSecondary   color.Color = lipgloss.Color("#06B6D4")
	ColorMuted       color.Color = lipgloss.Color("#6B7280")
	ColorBorder      color.Color = lipgloss.Color("#374151")
	ColorBorderFocus color.Color = lipgloss.Color("#7C3AED")
	ColorBg          color.Color = lipgloss.Color("#1F2937")
	ColorText        color.Color = lipgloss.Color("#F9FAFB")
	ColorTextMuted   color.Color = lipgloss.Color("#B0B8C4")
	ColorTextInverse color.Color = lipgloss.Color("#1F2937")
	ColorWarning     color.Color = lipgloss.Color("#F59E0B")
	ColorInfo        color.Color = lipgloss.Color("#06B6D4")
	ColorError       color.Color = lipgloss.Color("#EF4444")
	ColorSuccess     color.Color = lipgloss.Color("#10B981")
)

// Header and footer styles
var (
	HeaderStyle     lipgloss.Style
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style

	ItemStyle         lipgloss.Style
	SelectedItemStyle lipgloss.Style
)

// Machine styles
var (
	RotorLetterStyle   lipgloss.Style
	RotorNeighborStyle lipgloss.Style
	RotorTypeStyle     lipgloss.Style
	RotorNotchStyle    lipgloss.Style
	RotorLockStyle     lipgloss.Style

	LampOffStyle lipgloss.Style
	LampOnStyle  lipgloss.Style

	TapeTextStyle        lipgloss.Style
	TapePlaceholderStyle lipgloss.Style
)

// Modal styles
var (
	ModalStyle       lipgloss.Style
	ModalTitleStyle  lipgloss.Style
	ModalHelpStyle   lipgloss.Style
	StatusErrorStyle lipgloss.Style
)

func init() {
	regenerateStyles()
	RefreshModalStyles()
}

// PlugStyle returns the foreground style for the i-th connected plug pair.
func PlugStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(currentTheme.PlugColor(i))).
		Bold(true)
}

// RefreshModalStyles pushes the current palette into the modals package.
func RefreshModalStyles() {
	t := currentTheme
	plugColors := make([]color.Color, len(t.PlugColors))
	for i, c := range t.PlugColors {
		plugColors[i] = lipgloss.Color(c)
	}

	modals.SetStyles(
		ModalTitleStyle, ModalHelpStyle, ItemStyle, SelectedItemStyle, StatusErrorStyle,
		ColorPrimary, ColorSecondary, ColorText, ColorTextMuted, ColorTextInverse, ColorWarning, ColorBorder,
		plugColors,
		ModalWidth, ModalWidthWide, HelpModalMaxVisible,
	)
}

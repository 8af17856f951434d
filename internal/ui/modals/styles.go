package modals

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Style variables - these will be set by the parent ui package via SetStyles
var (
	ModalTitleStyle   lipgloss.Style
	ModalHelpStyle    lipgloss.Style
	ItemStyle         lipgloss.Style
	SelectedItemStyle lipgloss.Style
	StatusErrorStyle  lipgloss.Style

	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorWarning     color.Color
	ColorBorder      color.Color

	// PlugColors are assigned to connected pairs in order
	PlugColors []color.Color

	ModalWidth          int
	ModalWidthWide      int
	HelpModalMaxVisible int
)

// SetStyles sets the style variables from the parent ui package.
// This must be called before rendering any modals.
func SetStyles(
	modalTitle, modalHelp, item, selectedItem, statusError lipgloss.Style,
	primary, secondary, text, textMuted, textInverse, warning, border color.Color,
	plugColors []color.Color,
	modalWidth, modalWidthWide, helpMaxVisible int,
) {
	ModalTitleStyle = modalTitle
	ModalHelpStyle = modalHelp
	ItemStyle = item
	SelectedItemStyle = selectedItem
	StatusErrorStyle = statusError

	ColorPrimary = primary
	ColorSecondary = secondary
	ColorText = text
	ColorTextMuted = textMuted
	ColorTextInverse = textInverse
	ColorWarning = warning
	ColorBorder = border

	PlugColors = plugColors

	ModalWidth = modalWidth
	ModalWidthWide = modalWidthWide
	HelpModalMaxVisible = helpMaxVisible
}

// plugColor returns the color of the i-th connected pair
func plugColor(i int) color.Color {
	if len(PlugColors) == 0 {
		return ColorPrimary
	}
	return PlugColors[i%len(PlugColors)]
}

// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI, including the
// lampboard and the plug pair colors.
package ui

import "charm.land/lipgloss/v2"

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (used for keys, section titles)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Warning string
	Error   string
	Info    string
	Success string

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)

	// Lampboard colors
	LampOn    string // Lit lamp background
	LampOnFg  string // Lit lamp letter
	LampOff   string // Dark lamp letter
	Notch     string // Notch marker on rotor dials
	LockColor string // Lock marker on rotor dials

	// PlugColors are assigned to connected pairs in order, wrapping around.
	PlugColors []string
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// PlugColor returns the color for the i-th connected pair.
func (t Theme) PlugColor(i int) string {
	if len(t.PlugColors) == 0 {
		return t.Primary
	}
	if i < 0 {
		i = -i
	}
	return t.PlugColors[i%len(t.PlugColors)]
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDarkPurple ThemeName = "dark-purple"
	ThemeNord       ThemeName = "nord"
	ThemeDracula    ThemeName = "dracula"
	ThemeGruvbox    ThemeName = "gruvbox"
	ThemeLight      ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDarkPurple

// tailwind 500 shades, in the order the pairs get connected
var plugPalette = []string{
	"#EF4444", "#3B82F6", "#22C55E", "#EAB308", "#A855F7",
	"#EC4899", "#6366F1", "#14B8A6", "#F97316", "#06B6D4",
}

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkPurple: {
		Name:        "Dark Purple",
		Primary:     "#7C3AED",
		Secondary:   "#06B6D4",
		Bg:          "#1F2937",
		Text:        "#F9FAFB",
		TextMuted:   "#9CA3AF",
		TextInverse: "#1F2937",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Info:        "#06B6D4",
		Success:     "#10B981",
		Border:      "#374151",
		LampOn:      "#FCD34D",
		LampOnFg:    "#92400E",
		LampOff:     "#4B5563",
		Notch:       "#F59E0B",
		LockColor:   "#EF4444",
		PlugColors:  plugPalette,
	},
	ThemeNord: {
		Name:        "Nord",
		Primary:     "#88C0D0",
		Secondary:   "#81A1C1",
		Bg:          "#2E3440",
		BgSelected:  "#4C566A",
		Text:        "#ECEFF4",
		TextMuted:   "#D8DEE9",
		TextInverse: "#2E3440",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Info:        "#88C0D0",
		Success:     "#A3BE8C",
		Border:      "#4C566A",
		LampOn:      "#EBCB8B",
		LampOnFg:    "#2E3440",
		LampOff:     "#4C566A",
		Notch:       "#D08770",
		LockColor:   "#BF616A",
		PlugColors: []string{
			"#BF616A", "#5E81AC", "#A3BE8C", "#EBCB8B", "#B48EAD",
			"#D08770", "#81A1C1", "#8FBCBB", "#88C0D0", "#ECEFF4",
		},
	},
	ThemeDracula: {
		Name:        "Dracula",
		Primary:     "#BD93F9",
		Secondary:   "#8BE9FD",
		Bg:          "#282A36",
		BgSelected:  "#44475A",
		Text:        "#F8F8F2",
		TextMuted:   "#6272A4",
		TextInverse: "#282A36",
		Warning:     "#FFB86C",
		Error:       "#FF5555",
		Info:        "#8BE9FD",
		Success:     "#50FA7B",
		Border:      "#44475A",
		LampOn:      "#F1FA8C",
		LampOnFg:    "#282A36",
		LampOff:     "#44475A",
		Notch:       "#FFB86C",
		LockColor:   "#FF5555",
		PlugColors: []string{
			"#FF5555", "#8BE9FD", "#50FA7B", "#F1FA8C", "#BD93F9",
			"#FF79C6", "#6272A4", "#FFB86C", "#F8F8F2", "#44475A",
		},
	},
	ThemeGruvbox: {
		Name:        "Gruvbox",
		Primary:     "#D79921",
		Secondary:   "#689D6A",
		Bg:          "#282828",
		BgSelected:  "#504945",
		Text:        "#EBDBB2",
		TextMuted:   "#A89984",
		TextInverse: "#282828",
		Warning:     "#FABD2F",
		Error:       "#FB4934",
		Info:        "#83A598",
		Success:     "#B8BB26",
		Border:      "#504945",
		LampOn:      "#FABD2F",
		LampOnFg:    "#282828",
		LampOff:     "#504945",
		Notch:       "#FE8019",
		LockColor:   "#FB4934",
		PlugColors: []string{
			"#FB4934", "#458588", "#B8BB26", "#FABD2F", "#B16286",
			"#D3869B", "#83A598", "#8EC07C", "#FE8019", "#689D6A",
		},
	},
	ThemeLight: {
		Name:        "Light",
		Primary:     "#6366F1",
		Secondary:   "#0891B2",
		Bg:          "#FFFFFF",
		BgSelected:  "#E0E7FF",
		Text:        "#111827",
		TextMuted:   "#6B7280",
		TextInverse: "#FFFFFF",
		Warning:     "#D97706",
		Error:       "#DC2626",
		Info:        "#0891B2",
		Success:     "#059669",
		Border:      "#D1D5DB",
		LampOn:      "#FCD34D",
		LampOnFg:    "#92400E",
		LampOff:     "#D1D5DB",
		Notch:       "#D97706",
		LockColor:   "#DC2626",
		PlugColors:  plugPalette,
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeDarkPurple,
		ThemeNord,
		ThemeDracula,
		ThemeGruvbox,
		ThemeLight,
	}
}

// GetTheme returns a theme by name, defaulting to DarkPurple if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
	RefreshModalStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	SelectedItemStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text)).
		Bold(true).
		Padding(0, 1)

	ItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	RotorLetterStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	RotorNeighborStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	RotorTypeStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	RotorNotchStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Notch))

	RotorLockStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.LockColor)).
		Bold(true)

	LampOffStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.LampOff)).
		Padding(0, 1)

	LampOnStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.LampOnFg)).
		Background(lipgloss.Color(t.LampOn)).
		Bold(true).
		Padding(0, 1)

	TapeTextStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	TapePlaceholderStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
}

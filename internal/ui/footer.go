package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/enigmavision/internal/keys"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FooterContext selects which set of bindings the footer shows.
type FooterContext int

const (
	FooterMain FooterContext = iota
	FooterRotorSettings
	FooterPlugboard
	FooterHelp
)

// FlashType is the severity of a flash message
type FlashType int

const (
	FlashError FlashType = iota
	FlashWarning
	FlashInfo
	FlashSuccess
)

// DefaultFlashDuration is how long a flash message stays up
const DefaultFlashDuration = 3 * time.Second

// flashTickInterval is how often an active flash is checked for expiry
const flashTickInterval = 500 * time.Millisecond

// FlashMessage is a transient message shown in place of the key bindings
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FlashTickMsg is sent periodically while a flash message is showing
type FlashTickMsg time.Time

// FlashTick returns a command that fires a FlashTickMsg after a short interval
func FlashTick() tea.Cmd {
	return tea.Tick(flashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	context      FooterContext
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "a-z", Desc: "type"},
			{Key: "bksp", Desc: "delete"},
			{Key: "ctrl+r", Desc: "rotors"},
			{Key: "ctrl+p", Desc: "plugboard"},
			{Key: "ctrl+o", Desc: "copy"},
			{Key: "ctrl+v", Desc: "paste"},
			{Key: "ctrl+u", Desc: "clear"},
			{Key: "f1", Desc: "help"},
			{Key: "ctrl+c", Desc: "quit"},
		},
	}
}

// SetContext updates which bindings the footer shows
func (f *Footer) SetContext(ctx FooterContext) {
	f.context = ctx
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings for the main context
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for the given duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, duration time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  duration,
	}
}

// ClearFlash removes any flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired removes the flash message if it has expired and reports
// whether it did so.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

func (f *Footer) contextBindings() []KeyBinding {
	switch f.context {
	case FooterRotorSettings:
		return []KeyBinding{
			{Key: keys.Tab, Desc: "next field"},
			{Key: keys.ShiftTab, Desc: "previous field"},
			{Key: "←/→", Desc: "change"},
			{Key: "enter", Desc: "apply"},
			{Key: "esc", Desc: "cancel"},
		}
	case FooterPlugboard:
		return []KeyBinding{
			{Key: "arrows", Desc: "move"},
			{Key: "enter", Desc: "plug"},
			{Key: "x", Desc: "clear all"},
			{Key: "esc", Desc: "close"},
		}
	case FooterHelp:
		return []KeyBinding{
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "trigger"},
			{Key: "esc", Desc: "close"},
		}
	}
	return f.bindings
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return FooterStyle.Width(f.width).Render(f.renderFlash())
	}

	var parts []string
	for _, b := range f.contextBindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	return FooterStyle.Width(f.width).Render(content)
}

func (f *Footer) renderFlash() string {
	var icon string
	var fg = ColorText
	switch f.flashMessage.Type {
	case FlashError:
		icon, fg = "✕", ColorError
	case FlashWarning:
		icon, fg = "⚠", ColorWarning
	case FlashInfo:
		icon, fg = "ℹ", ColorInfo
	case FlashSuccess:
		icon, fg = "✓", ColorSuccess
	}
	style := lipgloss.NewStyle().Foreground(fg).Bold(true)
	return style.Render(icon + " " + f.flashMessage.Text)
}

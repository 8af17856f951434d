package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/enigmavision/internal/ui/modals"
)

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// width returns the modal's outer width, clamped to the screen
func (m *Modal) width(screenWidth int) int {
	w := ModalWidth
	if pw, ok := m.State.(modals.ModalWithPreferredWidth); ok {
		w = pw.PreferredWidth()
	}
	if screenWidth > 0 && w > screenWidth-4 {
		w = screenWidth - 4
	}
	return w
}

// View renders the modal centered on the screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	w := m.width(screenWidth)
	if sized, ok := m.State.(modals.ModalWithSize); ok {
		// border plus horizontal padding
		sized.SetSize(w-6, screenHeight-6)
	}

	content := m.State.Render()
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	modal := ModalStyle.Width(w).Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

// Modal state types, re-exported so the app package only imports ui
type (
	ModalState               = modals.ModalState
	HelpState                = modals.HelpState
	HelpSection              = modals.HelpSection
	HelpShortcut             = modals.HelpShortcut
	HelpShortcutTriggeredMsg = modals.HelpShortcutTriggeredMsg
	RotorSetting             = modals.RotorSetting
	RotorSettingsState       = modals.RotorSettingsState
	PlugboardState           = modals.PlugboardState
	PlugConnectMsg           = modals.PlugConnectMsg
	PlugDisconnectMsg        = modals.PlugDisconnectMsg
	PlugClearMsg             = modals.PlugClearMsg
)

// Modal constructors
var (
	NewHelpStateFromSections = modals.NewHelpStateFromSections
	NewRotorSettingsState    = modals.NewRotorSettingsState
	NewPlugboardState        = modals.NewPlugboardState
)

package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/enigmavision/internal/enigma"
	"github.com/zhubert/enigmavision/internal/keys"
	"github.com/zhubert/enigmavision/internal/session"
	"github.com/zhubert/enigmavision/internal/ui"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// The registry is the single source of truth for the help modal too.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "ctrl+r")
	DisplayKey  string                              // Display name in help; defaults to Key
	Description string                              // Human-readable description
	Category    string                              // Section for help modal grouping
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryTyping  = "Typing"
	CategoryMachine = "Machine"
	CategoryTape    = "Tape"
	CategoryGeneral = "General"
)

var categoryOrder = []string{
	CategoryTyping,
	CategoryMachine,
	CategoryTape,
	CategoryGeneral,
}

// ShortcutRegistry lists every executable shortcut. Entries appear in the
// help modal and can be run from it.
var ShortcutRegistry = []Shortcut{
	// Machine
	{
		Key:         keys.CtrlR,
		Description: "Rotor types, positions and locks",
		Category:    CategoryMachine,
		Handler:     shortcutRotorSettings,
	},
	{
		Key:         keys.CtrlP,
		Description: "Plugboard",
		Category:    CategoryMachine,
		Handler:     shortcutPlugboard,
	},

	// Tape
	{
		Key:         keys.CtrlO,
		Description: "Copy ciphertext to clipboard",
		Category:    CategoryTape,
		Handler:     shortcutCopy,
	},
	{
		Key:         keys.CtrlV,
		Description: "Paste clipboard as plaintext",
		Category:    CategoryTape,
		Handler:     shortcutPaste,
	},
	{
		Key:         keys.CtrlU,
		Description: "Clear the tape",
		Category:    CategoryTape,
		Handler:     shortcutClear,
		Condition:   func(m *Model) bool { return m.session.Plaintext() != "" },
	},

	// General
	{
		Key:         keys.CtrlC,
		Description: "Quit",
		Category:    CategoryGeneral,
		Handler:     shortcutQuit,
	},
}

// DisplayOnlyShortcuts are listed in the help modal but handled outside
// the registry.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "a-z", Description: "Encipher a letter", Category: CategoryTyping},
	{DisplayKey: "backspace", Description: "Delete the last character", Category: CategoryTyping},
	{DisplayKey: "space/enter", Description: "Pass through unchanged", Category: CategoryTyping},
	{DisplayKey: "pgup/pgdn", Description: "Scroll the tapes", Category: CategoryTyping},
	{DisplayKey: "f1", Description: "Show this help", Category: CategoryGeneral},
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or its condition failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	// help is kept out of the registry since it reads the registry
	if key == keys.F1 {
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if s.Condition != nil && !s.Condition(m) {
			m.log.Debug("shortcut condition failed", "key", key)
			return m, nil, false
		}
		m.log.Debug("executing shortcut", "key", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// helpSections groups the registry and the display-only shortcuts by
// category, in categoryOrder.
func (m *Model) helpSections() []ui.HelpSection {
	categories := make(map[string][]ui.HelpShortcut)

	add := func(s Shortcut) {
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], ui.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}
	for _, s := range DisplayOnlyShortcuts {
		add(s)
	}
	for _, s := range ShortcutRegistry {
		add(s)
	}

	var sections []ui.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts := categories[cat]; len(shortcuts) > 0 {
			sections = append(sections, ui.HelpSection{Title: cat, Shortcuts: shortcuts})
		}
	}
	return sections
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(ui.NewHelpStateFromSections(m.helpSections()))
	return m, nil
}

func shortcutRotorSettings(m *Model) (tea.Model, tea.Cmd) {
	names := make([]string, len(enigma.RotorTypes))
	for i, t := range enigma.RotorTypes {
		names[i] = t.String()
	}
	m.modal.Show(ui.NewRotorSettingsState(m.rotorSettings(), names, enigma.Alphabet))
	return m, nil
}

func shortcutPlugboard(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(ui.NewPlugboardState(m.session.Plugs()))
	return m, nil
}

func shortcutCopy(m *Model) (tea.Model, tea.Cmd) {
	return m, m.copyCiphertext()
}

func shortcutPaste(m *Model) (tea.Model, tea.Cmd) {
	return m, m.pasteClipboard()
}

func shortcutClear(m *Model) (tea.Model, tea.Cmd) {
	return m, m.apply(session.Clear{})
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}

// rotorSettings describes the session's base rotors for the settings modal.
func (m *Model) rotorSettings() [3]ui.RotorSetting {
	cfg := m.session.Config()
	locks := m.session.Locks()

	var out [3]ui.RotorSetting
	for i, rs := range cfg.Rotors {
		out[i] = ui.RotorSetting{
			Type:     rs.Type.String(),
			Position: rs.Position,
			Locked:   locks[i],
		}
	}
	return out
}

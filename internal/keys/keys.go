// Package keys holds the key strings the UI matches against, derived from
// tea.KeyPressMsg{...}.String() so they always agree with what Bubble Tea
// reports at runtime.
//
// Printable characters are not listed; they reach the machine as text.
package keys

import tea "charm.land/bubbletea/v2"

// Cursor movement, used by the plugboard grid and modals.
var (
	Up    = tea.KeyPressMsg{Code: tea.KeyUp}.String()    // "up"
	Down  = tea.KeyPressMsg{Code: tea.KeyDown}.String()  // "down"
	Left  = tea.KeyPressMsg{Code: tea.KeyLeft}.String()  // "left"
	Right = tea.KeyPressMsg{Code: tea.KeyRight}.String() // "right"
	Home  = tea.KeyPressMsg{Code: tea.KeyHome}.String()  // "home"
	End   = tea.KeyPressMsg{Code: tea.KeyEnd}.String()   // "end"
)

// Editing keys on the plaintext tape.
var (
	Space     = tea.KeyPressMsg{Code: tea.KeySpace}.String()            // "space"
	Enter     = tea.KeyPressMsg{Code: tea.KeyEnter}.String()            // "enter"
	Backspace = tea.KeyPressMsg{Code: tea.KeyBackspace}.String()        // "backspace"
	CtrlU     = (tea.KeyPressMsg{Code: 'u', Mod: tea.ModCtrl}).String() // "ctrl+u"
	CtrlV     = (tea.KeyPressMsg{Code: 'v', Mod: tea.ModCtrl}).String() // "ctrl+v"
)

// Commands and modal control.
var (
	Tab      = tea.KeyPressMsg{Code: tea.KeyTab}.String()                      // "tab"
	ShiftTab = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String() // "shift+tab"
	Escape   = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                   // "esc"
	F1       = tea.KeyPressMsg{Code: tea.KeyF1}.String()                       // "f1"
	CtrlC    = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String()         // "ctrl+c"
	CtrlO    = (tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}).String()         // "ctrl+o"
	CtrlP    = (tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl}).String()         // "ctrl+p"
	CtrlR    = (tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}).String()         // "ctrl+r"
)

package keys

import "testing"

// TestKeyStringValues pins the runtime strings so a Bubble Tea format change
// shows up here rather than as dead key bindings.
func TestKeyStringValues(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"Up", Up, "up"},
		{"Down", Down, "down"},
		{"Left", Left, "left"},
		{"Right", Right, "right"},
		{"Home", Home, "home"},
		{"End", End, "end"},

		{"Space", Space, "space"},
		{"Enter", Enter, "enter"},
		{"Backspace", Backspace, "backspace"},
		{"CtrlU", CtrlU, "ctrl+u"},
		{"CtrlV", CtrlV, "ctrl+v"},

		{"Tab", Tab, "tab"},
		{"ShiftTab", ShiftTab, "shift+tab"},
		{"Escape", Escape, "esc"},
		{"F1", F1, "f1"},
		{"CtrlC", CtrlC, "ctrl+c"},
		{"CtrlO", CtrlO, "ctrl+o"},
		{"CtrlP", CtrlP, "ctrl+p"},
		{"CtrlR", CtrlR, "ctrl+r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

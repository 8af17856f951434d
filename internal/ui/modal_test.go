package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/enigmavision/internal/ui/modals"
)

func TestModal_ShowHide(t *testing.T) {
	modal := NewModal()

	if modal.IsVisible() {
		t.Error("Expected modal to be hidden initially")
	}

	modal.Show(modals.NewHelpStateFromSections([]modals.HelpSection{
		{Title: "Typing", Shortcuts: []modals.HelpShortcut{{Key: "a-z", Desc: "encipher"}}},
	}))
	if !modal.IsVisible() {
		t.Error("Expected modal to be visible after Show")
	}

	modal.SetError("boom")
	if modal.GetError() != "boom" {
		t.Errorf("Expected error 'boom', got %q", modal.GetError())
	}

	modal.Hide()
	if modal.IsVisible() {
		t.Error("Expected modal to be hidden after Hide")
	}
	if modal.GetError() != "" {
		t.Error("Hide should clear the error")
	}
}

func TestModal_ViewHidden(t *testing.T) {
	modal := NewModal()
	if modal.View(80, 24) != "" {
		t.Error("Hidden modal should render nothing")
	}
}

func TestModal_ViewShowsTitleAndError(t *testing.T) {
	modal := NewModal()
	modal.Show(modals.NewPlugboardState(nil))
	modal.SetError("too many plugs")

	view := stripANSI(modal.View(120, 40))
	if !strings.Contains(view, "Plugboard") {
		t.Errorf("Expected plugboard title, got:\n%s", view)
	}
	if !strings.Contains(view, "too many plugs") {
		t.Error("Expected modal error in view")
	}
}

func TestModal_UpdateWhenHidden(t *testing.T) {
	modal := NewModal()
	m, cmd := modal.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if m != modal || cmd != nil {
		t.Error("Update on a hidden modal should be a no-op")
	}
}

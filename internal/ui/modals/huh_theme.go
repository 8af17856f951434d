package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/enigmavision/internal/keys"
)

// initHuhForm runs the form's Init so the first frame shows every column.
func initHuhForm(form *huh.Form) {
	form.Init()
}

// huhFormUpdate forwards msg to form. Enter and Escape are left to the app,
// which decides whether the rotor change is applied or discarded.
func huhFormUpdate(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Enter, keys.Escape:
			return form, nil
		}
	}

	m, cmd := form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		form = f
	}
	return form, cmd
}

// ModalTheme styles the rotor columns in the active palette. Only inline
// selects are drawn, so buttons and text inputs keep the base look.
func ModalTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		// the rotor column holding focus gets a rail like the dial window
		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
		t.Focused.SelectSelector = lipgloss.NewStyle().SetString("")
		t.Focused.PrevIndicator = lipgloss.NewStyle().Foreground(ColorPrimary).MarginRight(1).SetString("‹")
		t.Focused.NextIndicator = lipgloss.NewStyle().Foreground(ColorPrimary).MarginLeft(1).SetString("›")
		t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.Title = lipgloss.NewStyle().Foreground(ColorTextMuted)
		t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(ColorText)
		t.Blurred.PrevIndicator = lipgloss.NewStyle().MarginRight(1).SetString(" ")
		t.Blurred.NextIndicator = lipgloss.NewStyle().MarginLeft(1).SetString(" ")

		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")

		return t
	})
}

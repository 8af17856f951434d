package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/enigmavision/internal/ui"
)

// ShowFlash puts text in the footer in place of the key bindings and starts
// the tick that clears it.
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.log.Debug("flash", "type", int(flashType), "text", text)
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashError)
}

func (m *Model) ShowFlashWarning(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashWarning)
}

func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashInfo)
}

func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}

package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/enigmavision/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	m.updateFooterContext()

	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	tapes := lipgloss.JoinHorizontal(lipgloss.Top, m.plainTape.View(), m.cipherTape.View())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.rotors.View(),
		m.lampboard.View(),
		m.plugStrip.View(),
		tapes,
		m.footer.View(),
	)
}

// updateSizes lays the components out for the current window size.
func (m *Model) updateSizes() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.rotors.SetWidth(m.width)
	m.lampboard.SetWidth(m.width)
	m.plugStrip.SetWidth(m.width)

	fixed := ui.HeaderHeight + ui.FooterHeight + ui.PlugStripHeight +
		m.rotors.Height() + m.lampboard.Height()
	tapeHeight := m.height - fixed
	tapeHeight = max(tapeHeight, ui.MinTapeHeight+ui.BorderSize+ui.TitleHeight)

	leftWidth := m.width / 2
	m.plainTape.SetSize(leftWidth, tapeHeight)
	m.cipherTape.SetSize(m.width-leftWidth, tapeHeight)

	m.log.Debug("layout", "width", m.width, "height", m.height, "tape_height", tapeHeight)
}

// updateFooterContext shows the bindings for whatever has the keyboard.
func (m *Model) updateFooterContext() {
	switch m.modal.State.(type) {
	case *ui.RotorSettingsState:
		m.footer.SetContext(ui.FooterRotorSettings)
	case *ui.PlugboardState:
		m.footer.SetContext(ui.FooterPlugboard)
	case *ui.HelpState:
		m.footer.SetContext(ui.FooterHelp)
	default:
		m.footer.SetContext(ui.FooterMain)
	}
}

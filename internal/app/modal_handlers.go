package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/enigmavision/internal/enigma"
	"github.com/zhubert/enigmavision/internal/keys"
	"github.com/zhubert/enigmavision/internal/session"
	"github.com/zhubert/enigmavision/internal/ui"
)

// handleModalKey routes modal key events to the appropriate handler based on modal state type.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		return m, tea.Quit
	}

	switch s := m.modal.State.(type) {
	case *ui.RotorSettingsState:
		return m.handleRotorSettingsModal(key, msg, s)
	case *ui.PlugboardState:
		return m.handlePlugboardModal(key, msg, s)
	case *ui.HelpState:
		return m.handleHelpModal(key, msg, s)
	}

	if key == keys.Escape {
		m.modal.Hide()
		return m, nil
	}
	return m, nil
}

func (m *Model) handleRotorSettingsModal(key string, msg tea.KeyPressMsg, state *ui.RotorSettingsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		m.modal.Hide()
		if !state.Changed() {
			return m, nil
		}
		return m, m.applyRotorSettings(state.Settings())
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// applyRotorSettings turns the edited rotors into session events. Any change
// restarts the session, so the tape is cleared.
func (m *Model) applyRotorSettings(settings [3]ui.RotorSetting) tea.Cmd {
	current := m.rotorSettings()

	var cmds []tea.Cmd
	changed := 0
	for i, slot := range enigma.Slots {
		want, have := settings[i], current[i]

		if want.Type != have.Type {
			t, ok := enigma.ParseRotorType(want.Type)
			if !ok {
				m.log.Warn("ignoring unknown rotor type", "slot", slot.String(), "type", want.Type)
				continue
			}
			cmds = append(cmds, m.apply(session.SetRotorType{Slot: slot, Type: t}))
			changed++
		}
		if want.Position != have.Position && want.Position != 0 {
			cmds = append(cmds, m.apply(session.SetBasePosition{Slot: slot, Position: want.Position}))
			changed++
		}
		if want.Locked != have.Locked {
			cmds = append(cmds, m.apply(session.ToggleLock{Slot: slot}))
			changed++
		}
	}

	if changed == 0 {
		return tea.Batch(cmds...)
	}
	m.log.Info("rotor settings applied", "changes", changed)
	cmds = append(cmds, m.ShowFlashInfo(fmt.Sprintf("Rotors set to %s, tape cleared", rotorSummary(m.session.Config()))))
	return tea.Batch(cmds...)
}

func (m *Model) handlePlugboardModal(key string, msg tea.KeyPressMsg, _ *ui.PlugboardState) (tea.Model, tea.Cmd) {
	if key == keys.Escape {
		m.modal.Hide()
		return m, nil
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, _ *ui.HelpState) (tea.Model, tea.Cmd) {
	if key == keys.Escape || key == keys.F1 {
		m.modal.Hide()
		return m, nil
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handlePlugMsg applies a cable change requested by the plugboard modal.
func (m *Model) handlePlugMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ui.PlugConnectMsg:
		return m.apply(session.ConnectPlug{A: msg.A, B: msg.B})
	case ui.PlugDisconnectMsg:
		return m.apply(session.DisconnectPlug{Symbol: msg.Symbol})
	case ui.PlugClearMsg:
		return m.apply(session.ClearPlugs{})
	}
	return nil
}

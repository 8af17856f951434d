package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/enigmavision/internal/errors"
	"github.com/zhubert/enigmavision/internal/keys"
	"github.com/zhubert/enigmavision/internal/session"
	"github.com/zhubert/enigmavision/internal/ui"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		if m.modal.IsVisible() {
			return m.handleModalKey(msg)
		}
		return m.handleKey(msg)

	case tea.PasteMsg:
		if m.modal.IsVisible() {
			return m, nil
		}
		m.log.Debug("terminal paste", "len", len(msg.Content))
		return m, m.apply(session.Append{Text: msg.Content})

	case tea.MouseWheelMsg:
		var cmd1, cmd2 tea.Cmd
		m.plainTape, cmd1 = m.plainTape.Update(msg)
		m.cipherTape, cmd2 = m.cipherTape.Update(msg)
		return m, tea.Batch(cmd1, cmd2)

	case LampOffMsg:
		if msg.Seq == m.lampSeq {
			m.lampboard.Off()
		}
		return m, nil

	case ClipboardPastedMsg:
		return m, m.apply(session.Append{Text: msg.Text})

	case ClipboardCopiedMsg:
		return m, m.ShowFlashSuccess(copiedText(msg.N))

	case ClipboardErrorMsg:
		m.log.Warn("clipboard operation failed", "error", msg.Err)
		if errors.GetKind(msg.Err) == errors.KindNotFound {
			return m, m.ShowFlashInfo("Clipboard is empty")
		}
		return m, m.ShowFlashError("Clipboard unavailable")

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() {
			return m, nil
		}
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}
		return m, nil

	case ui.HelpShortcutTriggeredMsg:
		m.modal.Hide()
		result, cmd, _ := m.ExecuteShortcut(msg.Key)
		return result, cmd

	case ui.PlugConnectMsg, ui.PlugDisconnectMsg, ui.PlugClearMsg:
		return m, m.handlePlugMsg(msg)
	}

	if m.modal.IsVisible() {
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey handles a key press with no modal open.
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if result, cmd, ok := m.ExecuteShortcut(key); ok {
		return result, cmd
	}

	switch key {
	case keys.Backspace:
		return m, m.apply(session.DeleteLast{})
	case keys.Enter:
		return m, m.apply(session.Append{Text: "\n"})
	case keys.Space:
		return m, m.apply(session.Append{Text: " "})
	case "pgup", "pgdown":
		var cmd1, cmd2 tea.Cmd
		m.plainTape, cmd1 = m.plainTape.Update(msg)
		m.cipherTape, cmd2 = m.cipherTape.Update(msg)
		return m, tea.Batch(cmd1, cmd2)
	}

	// printable text only; ctrl and alt chords are not typing
	if msg.Text != "" && msg.Mod&(tea.ModCtrl|tea.ModAlt) == 0 {
		return m, m.apply(session.Append{Text: msg.Text})
	}
	return m, nil
}

// apply runs ev through the session, refreshes the components and returns
// any follow-up command (lamp timer, flash).
func (m *Model) apply(ev session.Event) tea.Cmd {
	res := m.session.Apply(ev)
	m.refresh()

	if res.Resynced {
		m.log.Debug("rotor display resynchronized", "positions", string(res.Positions[:]))
	}

	var cmds []tea.Cmd
	switch {
	case res.Lamp != 0:
		cmds = append(cmds, m.flashLamp(res.Lamp))
	case res.Direction != session.DirectionNone:
		// deletes and restarts leave every lamp dark
		m.lampSeq++
		m.lampboard.Off()
	}
	if res.PlugRefused {
		cmds = append(cmds, m.ShowFlashWarning("All plug cables are in use"))
	}
	return tea.Batch(cmds...)
}

// flashLamp lights r and schedules it to go dark. A newer flash supersedes
// the pending timer.
func (m *Model) flashLamp(r rune) tea.Cmd {
	m.lampSeq++
	seq := m.lampSeq
	m.lampboard.Light(r)
	return tea.Tick(m.config.LampFlash(), func(time.Time) tea.Msg {
		return LampOffMsg{Seq: seq}
	})
}

// copyCiphertext writes the ciphertext to the clipboard off the update loop.
func (m *Model) copyCiphertext() tea.Cmd {
	text := m.session.Ciphertext()
	if text == "" {
		return m.ShowFlashInfo("Nothing to copy yet")
	}

	write := m.clipboardWrite
	notify := m.notifyCopied
	notifyEnabled := m.config.GetNotificationsEnabled()
	n := len([]rune(text))

	return func() tea.Msg {
		if err := write(text); err != nil {
			return ClipboardErrorMsg{Err: err}
		}
		if notifyEnabled && notify != nil {
			// a failed notification is not worth surfacing
			_ = notify(n)
		}
		return ClipboardCopiedMsg{N: n}
	}
}

// pasteClipboard reads text from the clipboard off the update loop.
func (m *Model) pasteClipboard() tea.Cmd {
	read := m.clipboardRead
	return func() tea.Msg {
		text, err := read()
		if err != nil {
			return ClipboardErrorMsg{Err: err}
		}
		return ClipboardPastedMsg{Text: text}
	}
}

func copiedText(n int) string {
	if n == 1 {
		return "Copied 1 character of ciphertext"
	}
	return fmt.Sprintf("Copied %d characters of ciphertext", n)
}

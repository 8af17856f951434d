// Package app is the Bubble Tea model for the interactive machine. Every key
// the user types becomes a session.Event; the resulting session.Result is
// pushed into the ui components.
package app

import (
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/enigmavision/internal/clipboard"
	"github.com/zhubert/enigmavision/internal/config"
	"github.com/zhubert/enigmavision/internal/enigma"
	"github.com/zhubert/enigmavision/internal/logger"
	"github.com/zhubert/enigmavision/internal/notification"
	"github.com/zhubert/enigmavision/internal/session"
	"github.com/zhubert/enigmavision/internal/ui"
)

// Model is the root Bubble Tea model.
type Model struct {
	config  *config.Config
	version string

	reg     *enigma.Registry
	session *session.Session

	header     *ui.Header
	footer     *ui.Footer
	rotors     *ui.RotorPanel
	lampboard  *ui.Lampboard
	plugStrip  *ui.PlugStrip
	plainTape  *ui.Tape
	cipherTape *ui.Tape
	modal      *ui.Modal

	width  int
	height int

	// lampSeq identifies the most recent lamp flash; only its LampOffMsg
	// turns the lamp off.
	lampSeq int

	// system integrations, swapped out in tests
	clipboardRead  func() (string, error)
	clipboardWrite func(string) error
	notifyCopied   func(n int) error

	log *slog.Logger
}

// LampOffMsg turns the lamp off if Seq is still the latest flash.
type LampOffMsg struct {
	Seq int
}

// ClipboardCopiedMsg reports a successful copy of N ciphertext characters.
type ClipboardCopiedMsg struct {
	N int
}

// ClipboardPastedMsg carries text read from the clipboard.
type ClipboardPastedMsg struct {
	Text string
}

// ClipboardErrorMsg reports a failed clipboard read or write.
type ClipboardErrorMsg struct {
	Err error
}

// New creates the model and starts a session from cfg.
func New(cfg *config.Config, version string) *Model {
	if theme := cfg.GetTheme(); theme != "" {
		ui.SetThemeByName(theme)
	}

	reg := enigma.NewRegistry()
	sess := session.New(reg, cfg.MachineConfig())

	m := &Model{
		config:         cfg,
		version:        version,
		reg:            reg,
		session:        sess,
		header:         ui.NewHeader(),
		footer:         ui.NewFooter(),
		rotors:         ui.NewRotorPanel(),
		lampboard:      ui.NewLampboard(),
		plugStrip:      ui.NewPlugStrip(),
		plainTape:      ui.NewTape("Plaintext", "Type to encipher…"),
		cipherTape:     ui.NewTape("Ciphertext", "Output appears here"),
		modal:          ui.NewModal(),
		clipboardRead:  clipboard.ReadText,
		clipboardWrite: clipboard.WriteText,
		notifyCopied:   notification.CiphertextCopied,
		log:            logger.WithSession(sess.ID).With("component", "App"),
	}
	m.plainTape.SetFocused(true)
	m.refresh()

	m.log.Info("app started", "version", version, "config", cfg.Path())
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Session exposes the running session.
func (m *Model) Session() *session.Session {
	return m.session
}

// Close releases anything the model holds open.
func (m *Model) Close() {
	m.log.Info("app closing", "plaintext_len", len(m.session.Plaintext()))
}

// refresh copies session state into every component.
func (m *Model) refresh() {
	cfg := m.session.Config()
	positions := m.session.Positions()
	notches := m.session.Notches()
	locks := m.session.Locks()

	var dials [3]ui.RotorDial
	for i, rs := range cfg.Rotors {
		dials[i] = ui.RotorDial{
			Type:     rs.Type.String(),
			Position: positions[i],
			Notch:    notches[i],
			Locked:   locks[i],
		}
	}
	m.rotors.SetDials(dials)

	m.header.SetRotorInfo(rotorSummary(cfg))
	m.header.SetPlugCount(len(cfg.Plugs))
	m.plugStrip.SetPairs(cfg.Plugs)

	m.plainTape.SetText(m.session.Plaintext())
	m.cipherTape.SetText(m.session.Ciphertext())

	if pb, ok := m.modal.State.(*ui.PlugboardState); ok {
		pb.SetPairs(cfg.Plugs)
	}
}

// rotorSummary names the rotor types left to right, e.g. "I · II · III".
func rotorSummary(cfg enigma.Config) string {
	names := make([]string, len(cfg.Rotors))
	for i, rs := range cfg.Rotors {
		names[i] = rs.Type.String()
	}
	return strings.Join(names, " · ")
}

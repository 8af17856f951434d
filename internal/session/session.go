// Package session keeps the displayed rotor state in step with a ciphertext
// that is recomputed from scratch on every edit.
//
// A Session owns the base configuration, the plaintext and a Mirror of the
// rotor positions. Apply is a synchronous reducer: each edit event
// recomputes the ciphertext with a fresh enigma.Machine and moves the
// Mirror by the same stepping policy, one keystroke at a time. After every
// event the Mirror is checked against the Machine's end state.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/rivo/uniseg"
	"github.com/zhubert/enigmavision/internal/enigma"
	"github.com/zhubert/enigmavision/internal/logger"
)

// Session is one encode session. It is not safe for concurrent use; the UI
// drives it from its update loop.
type Session struct {
	ID string

	reg    *enigma.Registry
	base   [3]enigma.RotorState
	locks  enigma.Locks
	plugs  []enigma.PlugPair
	mirror *Mirror

	plaintext  string
	ciphertext string

	// lossy is set while an event moves the mirror in a way that cannot be
	// replayed exactly: a retreat or a non-trailing edit.
	lossy bool

	log *slog.Logger
}

// New starts a session at cfg's base positions with empty plaintext.
func New(reg *enigma.Registry, cfg enigma.Config) *Session {
	id := uuid.New().String()
	s := &Session{
		ID:    id,
		reg:   reg,
		base:  cfg.Rotors,
		locks: cfg.Locks,
		log:   logger.WithSession(id).With("component", "Session"),
	}
	for i := range s.base {
		s.base[i].Position = enigma.NormalizePosition(s.base[i].Position)
	}
	s.plugs = enigma.NewPlugboard(cfg.Plugs).Pairs()
	if len(s.plugs) > enigma.MaxPlugPairs {
		s.plugs = s.plugs[:enigma.MaxPlugPairs]
	}
	s.mirror = NewMirror(reg.Rotors(s.base), s.locks)
	s.log.Info("session started", "config", s.describe())
	return s
}

// Config returns the base configuration the ciphertext is computed from.
func (s *Session) Config() enigma.Config {
	plugs := make([]enigma.PlugPair, len(s.plugs))
	copy(plugs, s.plugs)
	return enigma.Config{Rotors: s.base, Plugs: plugs, Locks: s.locks}
}

// Plaintext returns the current (uppercased) plaintext.
func (s *Session) Plaintext() string { return s.plaintext }

// Ciphertext returns the ciphertext of the current plaintext.
func (s *Session) Ciphertext() string { return s.ciphertext }

// Positions returns the displayed rotor positions.
func (s *Session) Positions() [3]rune { return s.mirror.Positions() }

// Plugs returns the connected cables in connection order.
func (s *Session) Plugs() []enigma.PlugPair { return s.Config().Plugs }

// Locks returns the lock flags.
func (s *Session) Locks() enigma.Locks { return s.locks }

// Notches returns each rotor's notch symbol, left to right.
func (s *Session) Notches() [3]rune {
	var out [3]rune
	for i, st := range s.base {
		out[i] = s.reg.Spec(st.Type).Notch
	}
	return out
}

// Apply processes one edit and returns what to render.
func (s *Session) Apply(ev Event) Result {
	var res Result
	s.lossy = false

	switch e := ev.(type) {
	case Append:
		res.Direction = s.appendText(e.Text)
	case DeleteLast:
		res.Direction = s.deleteLast()
	case Clear:
		res.Direction = s.setPlaintext("")
	case SetText:
		res.Direction = s.setText(e.Text)
	case SetRotorType:
		if !s.validSlot(e.Slot) {
			break
		}
		if e.Type.Valid() && s.base[e.Slot].Type != e.Type {
			s.base[e.Slot].Type = e.Type
			res.Direction = s.restart("rotor type")
		}
	case SetBasePosition:
		if !s.validSlot(e.Slot) {
			break
		}
		pos := enigma.NormalizePosition(e.Position)
		if s.base[e.Slot].Position != pos {
			s.base[e.Slot].Position = pos
			res.Direction = s.restart("base position")
		}
	case ToggleLock:
		if !s.validSlot(e.Slot) {
			break
		}
		s.locks[e.Slot] = !s.locks[e.Slot]
		res.Direction = s.restart("lock")
	case ConnectPlug:
		res.PlugRefused = !s.connect(e.A, e.B)
	case DisconnectPlug:
		s.disconnect(e.Symbol)
	case SetPlugs:
		pairs := enigma.ParsePlugboard(e.Spec).Pairs()
		if len(pairs) > enigma.MaxPlugPairs {
			pairs = pairs[:enigma.MaxPlugPairs]
			res.PlugRefused = true
		}
		s.plugs = pairs
	case ClearPlugs:
		s.plugs = nil
	default:
		s.log.Warn("ignoring unknown event", "type", fmt.Sprintf("%T", ev))
	}

	res.Resynced = s.recompute()
	res.Ciphertext = s.ciphertext
	res.Positions = s.mirror.Positions()
	if res.Direction == DirectionForward {
		res.Lamp = lastSymbol(s.ciphertext)
	}
	return res
}

// appendText appends text one character at a time so that every alphabetic
// character advances the mirror exactly once.
func (s *Session) appendText(text string) Direction {
	text = strings.ReplaceAll(enigma.Normalize(text), "\r", "")
	if text == "" {
		return DirectionNone
	}
	var b strings.Builder
	b.WriteString(s.plaintext)
	for _, r := range text {
		b.WriteRune(r)
		if enigma.IsSymbol(r) {
			s.mirror.Advance()
		}
	}
	s.plaintext = b.String()
	return DirectionForward
}

func (s *Session) deleteLast() Direction {
	if s.plaintext == "" {
		return DirectionNone
	}
	last := lastGrapheme(s.plaintext)
	return s.truncate(len(s.plaintext) - len(last))
}

// truncate cuts the plaintext to n bytes, retreating the mirror once for
// every alphabetic character removed.
func (s *Session) truncate(n int) Direction {
	if n <= 0 {
		return s.setPlaintext("")
	}
	for _, r := range s.plaintext[n:] {
		if enigma.IsSymbol(r) {
			s.mirror.Retreat()
			s.lossy = true
		}
	}
	s.plaintext = s.plaintext[:n]
	return DirectionBackward
}

func (s *Session) setText(text string) Direction {
	text = strings.ReplaceAll(enigma.Normalize(text), "\r", "")
	switch {
	case text == s.plaintext:
		return DirectionNone
	case text == "":
		return s.setPlaintext("")
	case strings.HasPrefix(text, s.plaintext):
		return s.appendText(text[len(s.plaintext):])
	case strings.HasPrefix(s.plaintext, text):
		return s.truncate(len(text))
	}

	// Not a trailing edit. The mirror cannot replay it, so recompute
	// reconciles it with the machine.
	s.log.Debug("non-trailing edit", "oldLen", len(s.plaintext), "newLen", len(text))
	s.lossy = true
	dir := DirectionForward
	if len(text) < len(s.plaintext) {
		dir = DirectionBackward
	}
	s.plaintext = text
	return dir
}

// setPlaintext replaces the plaintext outright; an empty plaintext puts the
// mirror straight back to base.
func (s *Session) setPlaintext(text string) Direction {
	s.plaintext = text
	if text == "" {
		s.mirror.Reset()
		return DirectionReset
	}
	return DirectionNone
}

// restart applies a new base configuration: plaintext is cleared and the
// mirror moves to the new base.
func (s *Session) restart(reason string) Direction {
	s.plaintext = ""
	s.mirror.Rebase(s.reg.Rotors(s.base), s.locks)
	s.log.Info("session restarted", "reason", reason, "config", s.describe())
	return DirectionReset
}

// connect implements a plug click pairing a with b.
func (s *Session) connect(a, b rune) bool {
	a, b = enigma.NormalizePosition(a), enigma.NormalizePosition(b)
	if a == b {
		return true
	}
	s.disconnect(a)
	s.disconnect(b)
	if len(s.plugs) >= enigma.MaxPlugPairs {
		s.log.Debug("plug refused", "pair", string([]rune{a, b}))
		return false
	}
	s.plugs = append(s.plugs, enigma.PlugPair{A: a, B: b}.Sorted())
	return true
}

func (s *Session) disconnect(r rune) {
	kept := s.plugs[:0]
	for _, p := range s.plugs {
		if !p.Has(r) {
			kept = append(kept, p)
		}
	}
	s.plugs = kept
}

// recompute runs a fresh machine over the whole plaintext and reconciles
// the mirror with the machine's end state. It reports whether the mirror
// had to be corrected.
func (s *Session) recompute() bool {
	out, end := enigma.Run(s.reg, s.plaintext, s.Config())
	s.ciphertext = out

	mp, ep := s.mirror.Positions(), end.Positions()
	if mp == ep {
		return false
	}

	// A retreat across a double step has two predecessors, so a correction
	// after a backward or non-trailing edit is routine.
	level := slog.LevelWarn
	msg := "mirror out of step with machine; resyncing"
	if s.lossy {
		level = slog.LevelDebug
		msg = "mirror resynced after inexact edit"
	}
	s.log.Log(context.Background(), level, msg,
		"mirror", string(mp[:]),
		"machine", string(ep[:]),
		"plaintextLen", len(s.plaintext))
	s.mirror.Sync(end)
	return true
}

// validSlot reports whether slot names a rotor, logging the event as
// ignored when it does not.
func (s *Session) validSlot(slot enigma.Slot) bool {
	if slot.Valid() {
		return true
	}
	s.log.Warn("ignoring event for unknown rotor slot", "slot", int(slot))
	return false
}

func (s *Session) describe() string {
	var b strings.Builder
	for i, st := range s.base {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(st.Type.String())
		b.WriteByte(':')
		b.WriteRune(st.Position)
		if s.locks[i] {
			b.WriteString("(locked)")
		}
	}
	if len(s.plugs) > 0 {
		b.WriteString(" plugs=")
		b.WriteString(enigma.NewPlugboard(s.plugs).String())
	}
	return b.String()
}

// lastGrapheme returns the final user-perceived character of s.
func lastGrapheme(s string) string {
	var last string
	state := -1
	for s != "" {
		last, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
	}
	return last
}

// lastSymbol returns the final rune of s if it is in the alphabet.
func lastSymbol(s string) rune {
	rs := []rune(s)
	if len(rs) == 0 || !enigma.IsSymbol(rs[len(rs)-1]) {
		return 0
	}
	return rs[len(rs)-1]
}

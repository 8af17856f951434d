package session

import "github.com/zhubert/enigmavision/internal/enigma"

// Mirror is the displayed rotor state. It moves one keystroke at a time
// alongside the operator's edits, using the same stepping policy as the
// Machine, while the ciphertext itself is recomputed from scratch.
type Mirror struct {
	base    enigma.Rotors
	current enigma.Rotors
	locks   enigma.Locks
}

// NewMirror returns a mirror sitting at base.
func NewMirror(base enigma.Rotors, locks enigma.Locks) *Mirror {
	return &Mirror{base: base, current: base, locks: locks}
}

// Advance replays one forward step from the current notch state.
func (m *Mirror) Advance() {
	m.current = m.current.Advance(m.locks)
}

// Retreat replays one step backwards.
func (m *Mirror) Retreat() {
	m.current = m.current.Retreat(m.locks)
}

// Reset jumps straight back to the base positions.
func (m *Mirror) Reset() {
	m.current = m.base
}

// Rebase installs a new base and lock set and moves to it.
func (m *Mirror) Rebase(base enigma.Rotors, locks enigma.Locks) {
	m.base = base
	m.locks = locks
	m.current = base
}

// Sync overwrites the current rotors, e.g. with a Machine's end state.
func (m *Mirror) Sync(rs enigma.Rotors) {
	m.current = rs
}

// Rotors returns the current rotors.
func (m *Mirror) Rotors() enigma.Rotors {
	return m.current
}

// Positions returns the current rotor positions.
func (m *Mirror) Positions() [3]rune {
	return m.current.Positions()
}

// AtBase reports whether the mirror shows the base positions.
func (m *Mirror) AtBase() bool {
	return m.current.Positions() == m.base.Positions()
}

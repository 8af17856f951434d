package enigma

import "strings"

// Config is everything needed to start an encoding run: the base rotor
// states, the plug pairs and the lock flags, ordered left, middle, right.
type Config struct {
	Rotors [3]RotorState
	Plugs  []PlugPair
	Locks  Locks
}

// DefaultConfig is rotors I, II, III at 'A' with no cables.
func DefaultConfig() Config {
	return Config{
		Rotors: [3]RotorState{
			{Type: RotorI, Position: 'A'},
			{Type: RotorII, Position: 'A'},
			{Type: RotorIII, Position: 'A'},
		},
	}
}

// Machine is a working copy of the rotor stack. Its rotors move as it
// encodes; build a new Machine from the base Config for every run that must
// be a pure function of the text.
type Machine struct {
	rotors    Rotors
	locks     Locks
	plugboard Plugboard
	reflector Reflector
}

// NewMachine clones the rotors described by cfg out of reg.
func NewMachine(reg *Registry, cfg Config) *Machine {
	return &Machine{
		rotors:    reg.Rotors(cfg.Rotors),
		locks:     cfg.Locks,
		plugboard: NewPlugboard(cfg.Plugs),
		reflector: reg.Reflector(),
	}
}

// StepRotors applies the stepping policy once.
func (m *Machine) StepRotors() {
	m.rotors = m.rotors.Advance(m.locks)
}

// EncryptChar encodes a single symbol. Symbols outside the alphabet are
// returned unchanged and do not move the rotors.
func (m *Machine) EncryptChar(c rune) rune {
	if !IsSymbol(c) {
		return c
	}

	m.StepRotors()

	c = m.plugboard.Swap(c)
	c = m.rotors[Right].Forward(c)
	c = m.rotors[Middle].Forward(c)
	c = m.rotors[Left].Forward(c)
	c = m.reflector.Reflect(c)
	c = m.rotors[Left].Backward(c)
	c = m.rotors[Middle].Backward(c)
	c = m.rotors[Right].Backward(c)
	return m.plugboard.Swap(c)
}

// Encrypt uppercases text and encodes it symbol by symbol, carrying rotor
// state from one symbol to the next.
func (m *Machine) Encrypt(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, c := range Normalize(text) {
		b.WriteRune(m.EncryptChar(c))
	}
	return b.String()
}

// Rotors returns a copy of the working rotors.
func (m *Machine) Rotors() Rotors {
	return m.rotors
}

// Positions returns the working rotor positions.
func (m *Machine) Positions() [3]rune {
	return m.rotors.Positions()
}

// Run encodes text on a fresh machine built from cfg and returns the
// ciphertext together with the rotors as they stand afterwards.
func Run(reg *Registry, text string, cfg Config) (string, Rotors) {
	m := NewMachine(reg, cfg)
	out := m.Encrypt(text)
	return out, m.Rotors()
}

// Encrypt is the pure encode function: the same text and config always
// produce the same ciphertext. Encrypting the ciphertext again with the same
// config yields the original alphabetic text.
func Encrypt(reg *Registry, text string, cfg Config) string {
	out, _ := Run(reg, text, cfg)
	return out
}

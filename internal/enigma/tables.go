package enigma

import (
	"fmt"
	"strings"
)

// RotorType identifies one of the historical rotor wirings.
type RotorType int

const (
	RotorI RotorType = iota
	RotorII
	RotorIII
)

// RotorTypes lists every supported rotor type in display order.
var RotorTypes = []RotorType{RotorI, RotorII, RotorIII}

func (t RotorType) String() string {
	switch t {
	case RotorI:
		return "I"
	case RotorII:
		return "II"
	case RotorIII:
		return "III"
	default:
		return fmt.Sprintf("RotorType(%d)", int(t))
	}
}

// Valid reports whether t is one of the supported rotor types.
func (t RotorType) Valid() bool {
	return t >= RotorI && t <= RotorIII
}

// ParseRotorType parses a roman numeral ("I", "ii", " III ").
func ParseRotorType(s string) (RotorType, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "I":
		return RotorI, true
	case "II":
		return RotorII, true
	case "III":
		return RotorIII, true
	}
	return 0, false
}

// RotorSpec is the immutable wiring of one rotor type.
type RotorSpec struct {
	Wiring string // permutation of Alphabet
	Notch  rune   // position at which the next rotor is carried
}

// Reflector routes the signal back through the rotor stack.
type Reflector struct {
	Wiring string
}

// Reflect maps c through the reflector wiring.
func (r Reflector) Reflect(c rune) rune {
	return rune(r.Wiring[Index(c)])
}

// Historical Enigma I wirings.
const (
	wiringI    = "EKMFLGDQVZNTOWYHXUSPAIBRCJ"
	wiringII   = "AJDKSIRUXBLHWTMCQGZNPYFVOE"
	wiringIII  = "BDFHJLCPRTXVZNYEIWGAKMUSQO"
	reflectorB = "YRUHQSLDPXNGOKMIEBFZCWVJAT"
)

// Registry resolves rotor types to their specs. It is built once at startup
// and never mutated.
type Registry struct {
	rotors    [3]RotorSpec
	reflector Reflector
}

// NewRegistry returns the registry of the three in-scope rotor types and
// reflector B.
func NewRegistry() *Registry {
	return &Registry{
		rotors: [3]RotorSpec{
			RotorI:   {Wiring: wiringI, Notch: 'Q'},
			RotorII:  {Wiring: wiringII, Notch: 'E'},
			RotorIII: {Wiring: wiringIII, Notch: 'V'},
		},
		reflector: Reflector{Wiring: reflectorB},
	}
}

// Spec returns the spec for t. Unknown types resolve to rotor I.
func (r *Registry) Spec(t RotorType) RotorSpec {
	if !t.Valid() {
		return r.rotors[RotorI]
	}
	return r.rotors[t]
}

// Reflector returns the fixed reflector.
func (r *Registry) Reflector() Reflector {
	return r.reflector
}

// Rotor returns a rotor of type t positioned at pos.
func (r *Registry) Rotor(t RotorType, pos rune) Rotor {
	return NewRotor(r.Spec(t), pos)
}

// Rotors builds a left/middle/right rotor set from states.
func (r *Registry) Rotors(states [3]RotorState) Rotors {
	var rs Rotors
	for i, st := range states {
		rs[i] = r.Rotor(st.Type, st.Position)
	}
	return rs
}

package enigma

import "strings"

// RotorState is the configurable part of a rotor: its type and its
// rotational position.
type RotorState struct {
	Type     RotorType
	Position rune
}

// Rotor is a single rotor: an immutable spec plus the current position.
// Rotor is a small value; copying it clones the running state while the
// wiring string is shared.
type Rotor struct {
	spec     RotorSpec
	Position rune
}

// NewRotor returns a rotor with the given spec at pos. Positions outside the
// alphabet are normalized by uppercasing and, failing that, reset to 'A'.
func NewRotor(spec RotorSpec, pos rune) Rotor {
	return Rotor{spec: spec, Position: NormalizePosition(pos)}
}

// NormalizePosition coerces pos into the alphabet.
func NormalizePosition(pos rune) rune {
	if pos >= 'a' && pos <= 'z' {
		pos -= 'a' - 'A'
	}
	if !IsSymbol(pos) {
		return 'A'
	}
	return pos
}

// Spec returns the rotor's wiring and notch.
func (r *Rotor) Spec() RotorSpec {
	return r.spec
}

// Offset is the index of the current position.
func (r *Rotor) Offset() int {
	return Index(r.Position)
}

// Forward passes c through the rotor from the entry side towards the
// reflector.
func (r *Rotor) Forward(c rune) rune {
	off := r.Offset()
	encoded := rune(r.spec.Wiring[mod(Index(c)+off)])
	return Symbol(Index(encoded) - off)
}

// Backward passes c through the rotor on the return path. It is the inverse
// of Forward at the same position.
func (r *Rotor) Backward(c rune) rune {
	off := r.Offset()
	decoded := strings.IndexRune(r.spec.Wiring, Symbol(Index(c)+off))
	return Symbol(decoded - off)
}

// Step advances the rotor one position.
func (r *Rotor) Step() {
	r.Position = Symbol(r.Offset() + 1)
}

// StepBack turns the rotor back one position.
func (r *Rotor) StepBack() {
	r.Position = Symbol(r.Offset() - 1)
}

// AtNotch reports whether the rotor sits on its notch.
func (r *Rotor) AtNotch() bool {
	return r.Position == r.spec.Notch
}

// Clone returns an independent copy of the rotor.
func (r *Rotor) Clone() Rotor {
	return *r
}

package enigma

// Slot names a rotor position in the stack.
type Slot int

const (
	Left Slot = iota
	Middle
	Right
)

// Slots lists the slots left to right.
var Slots = []Slot{Left, Middle, Right}

// Valid reports whether s is Left, Middle or Right.
func (s Slot) Valid() bool {
	return s >= Left && s <= Right
}

func (s Slot) String() string {
	switch s {
	case Left:
		return "Left"
	case Middle:
		return "Middle"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Locks marks rotors whose rotation is suppressed. A locked rotor still
// substitutes and still reports its notch.
type Locks [3]bool

// Rotors is the left, middle and right rotor of a machine.
type Rotors [3]Rotor

// Positions returns the current position of each rotor.
func (rs Rotors) Positions() [3]rune {
	return [3]rune{rs[Left].Position, rs[Middle].Position, rs[Right].Position}
}

// Advance applies the stepping policy once and returns the resulting rotors.
//
// Notches are read from the positions before any rotor moves:
//  1. middle at its notch: middle and left step
//  2. right at its notch: middle steps (again, if step 1 fired)
//  3. right always steps
//
// When middle and right are both at their notches the middle rotor moves
// twice in one cycle, which is the historical double step.
func (rs Rotors) Advance(locks Locks) Rotors {
	middleNotch := rs[Middle].AtNotch()
	rightNotch := rs[Right].AtNotch()

	if middleNotch {
		rs.step(Middle, locks)
		rs.step(Left, locks)
	}
	if rightNotch {
		rs.step(Middle, locks)
	}
	rs.step(Right, locks)
	return rs
}

// Retreat undoes one Advance and returns the predecessor rotors.
//
// The right rotor always turns back. Its restored position tells whether it
// carried the middle rotor, and the middle rotor's restored position tells
// whether the left rotor was carried. A middle rotor one past its notch may
// have just stepped off the notch by itself or may have been resting there;
// Retreat assumes it was resting, so the one keystroke that performed a
// double step does not reverse exactly. Callers that need exact reversal
// compare against a recomputed Machine.
func (rs Rotors) Retreat(locks Locks) Rotors {
	rs.stepBack(Right, locks)
	if rs[Right].AtNotch() {
		rs.stepBack(Middle, locks)
	}
	if rs[Middle].AtNotch() {
		rs.stepBack(Left, locks)
	}
	return rs
}

func (rs *Rotors) step(s Slot, locks Locks) {
	if !locks[s] {
		rs[s].Step()
	}
}

func (rs *Rotors) stepBack(s Slot, locks Locks) {
	if !locks[s] {
		rs[s].StepBack()
	}
}

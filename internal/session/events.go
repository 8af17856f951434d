package session

import "github.com/zhubert/enigmavision/internal/enigma"

// Event is an operator edit. Session.Apply handles one event at a time in
// arrival order.
type Event interface {
	event()
}

// Append adds text to the end of the plaintext. Multi-character text (a
// paste) is applied one character at a time.
type Append struct{ Text string }

// DeleteLast removes the last character (grapheme cluster) of the plaintext.
type DeleteLast struct{}

// Clear empties the plaintext.
type Clear struct{}

// SetText replaces the whole plaintext, as a text field would report it.
// Trailing appends and deletes step the mirror; any other edit is
// reconciled against the recomputed machine state.
type SetText struct{ Text string }

// SetRotorType changes a rotor's type and restarts the session.
type SetRotorType struct {
	Slot enigma.Slot
	Type enigma.RotorType
}

// SetBasePosition changes a rotor's start position and restarts the session.
type SetBasePosition struct {
	Slot     enigma.Slot
	Position rune
}

// ToggleLock flips a rotor's lock and restarts the session.
type ToggleLock struct{ Slot enigma.Slot }

// ConnectPlug cables A to B. Existing cables on either symbol are pulled
// first. The new cable is refused once MaxPlugPairs are connected.
type ConnectPlug struct{ A, B rune }

// DisconnectPlug pulls the cable on Symbol, if any.
type DisconnectPlug struct{ Symbol rune }

// SetPlugs replaces all cables from a spec such as "AB CD". Pairs past
// MaxPlugPairs are refused.
type SetPlugs struct{ Spec string }

// ClearPlugs pulls every cable.
type ClearPlugs struct{}

func (Append) event()          {}
func (DeleteLast) event()      {}
func (Clear) event()           {}
func (SetText) event()         {}
func (SetRotorType) event()    {}
func (SetBasePosition) event() {}
func (ToggleLock) event()      {}
func (ConnectPlug) event()     {}
func (DisconnectPlug) event()  {}
func (SetPlugs) event()        {}
func (ClearPlugs) event()      {}

// Direction is how the plaintext length changed during an event.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionForward
	DirectionBackward
	DirectionReset
)

func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	case DirectionReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Result is what the UI renders after an event.
type Result struct {
	Ciphertext string
	Positions  [3]rune
	// Lamp is the ciphertext symbol to light, or 0 when nothing lights.
	Lamp      rune
	Direction Direction
	// Resynced is set when the mirror disagreed with the recomputed machine
	// and was corrected.
	Resynced bool
	// PlugRefused is set when a cable was refused because all are in use.
	PlugRefused bool
}

// Package enigma implements the three-rotor cipher machine: rotor
// substitution, the plugboard, the reflector and the stepping policy.
//
// Static data (rotor wirings, notches, the reflector) lives in a Registry
// that is built once and passed to the components that need it. Running
// state is limited to rotor positions, which are small values that can be
// copied freely. The stepping policy is implemented once, on Rotors, and is
// shared by the Machine and by anything that mirrors its rotation.
package enigma

import "strings"

// Alphabet is the ordered set of symbols the machine operates on.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Size is the number of symbols in the alphabet.
const Size = len(Alphabet)

// mod normalizes n into [0, Size).
func mod(n int) int {
	n %= Size
	if n < 0 {
		n += Size
	}
	return n
}

// IsSymbol reports whether r is a member of the alphabet.
func IsSymbol(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// Index returns the position of r in the alphabet. Symbols outside the
// alphabet are folded into range so that Index is total; callers that care
// about membership check IsSymbol first.
func Index(r rune) int {
	return mod(int(r - 'A'))
}

// Symbol returns the alphabet symbol at index i, taken mod Size.
func Symbol(i int) rune {
	return rune(Alphabet[mod(i)])
}

// Normalize uppercases text the way the machine reads its keyboard.
func Normalize(text string) string {
	return strings.ToUpper(text)
}

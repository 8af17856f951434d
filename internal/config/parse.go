package config

import (
	"strings"

	"github.com/zhubert/enigmavision/internal/enigma"
	"github.com/zhubert/enigmavision/internal/errors"
)

// ParseRotorType parses a rotor type name such as "II".
func ParseRotorType(s string) (enigma.RotorType, error) {
	t, ok := enigma.ParseRotorType(strings.TrimSpace(s))
	if !ok {
		return 0, errors.InvalidRotorType(s)
	}
	return t, nil
}

// ParsePosition parses a single-letter rotor position, in either case.
func ParsePosition(s string) (rune, error) {
	rs := []rune(strings.ToUpper(strings.TrimSpace(s)))
	if len(rs) != 1 || !enigma.IsSymbol(rs[0]) {
		return 0, errors.InvalidPosition(s)
	}
	return rs[0], nil
}

// ParsePositions parses a three-letter start position such as "AQV".
func ParsePositions(s string) ([3]rune, error) {
	var out [3]rune
	rs := []rune(strings.ToUpper(strings.TrimSpace(s)))
	if len(rs) != len(out) {
		return out, errors.InvalidPosition(s)
	}
	for i, r := range rs {
		if !enigma.IsSymbol(r) {
			return out, errors.InvalidPosition(s)
		}
		out[i] = r
	}
	return out, nil
}

// ParsePlugs parses a plugboard spec strictly. Unlike
// enigma.ParsePlugboard, which drops bad tokens, any malformed or
// conflicting pair is an error, as is more than MaxPlugPairs pairs.
func ParsePlugs(spec string) ([]enigma.PlugPair, error) {
	tokens := strings.Fields(strings.ToUpper(spec))
	if len(tokens) > enigma.MaxPlugPairs {
		return nil, errors.TooManyPlugs(len(tokens), enigma.MaxPlugPairs)
	}

	used := make(map[rune]bool, 2*len(tokens))
	pairs := make([]enigma.PlugPair, 0, len(tokens))
	for _, tok := range tokens {
		rs := []rune(tok)
		if len(rs) != 2 || !enigma.IsSymbol(rs[0]) || !enigma.IsSymbol(rs[1]) ||
			rs[0] == rs[1] || used[rs[0]] || used[rs[1]] {
			return nil, errors.InvalidPlug(tok)
		}
		used[rs[0]], used[rs[1]] = true, true
		pairs = append(pairs, enigma.PlugPair{A: rs[0], B: rs[1]})
	}
	return pairs, nil
}

// ParseLocks parses a comma-separated list of slots to lock, such as
// "left,right" or "L,R". An empty string locks nothing.
func ParseLocks(s string) (enigma.Locks, error) {
	var locks enigma.Locks
	for _, tok := range strings.Split(s, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		switch tok {
		case "":
			continue
		case "l", "left":
			locks[enigma.Left] = true
		case "m", "middle":
			locks[enigma.Middle] = true
		case "r", "right":
			locks[enigma.Right] = true
		default:
			return locks, errors.InvalidSlot(tok)
		}
	}
	return locks, nil
}

package enigma

import "strings"

// MaxPlugPairs is the number of cables the machine ships with. Plugboard
// itself does not enforce it; callers reject extra pairs before building
// one.
const MaxPlugPairs = 10

// PlugPair is an unordered pair of distinct symbols joined by a cable.
type PlugPair struct {
	A, B rune
}

// Has reports whether the pair uses r.
func (p PlugPair) Has(r rune) bool {
	return p.A == r || p.B == r
}

// Sorted returns the pair with its symbols in alphabet order.
func (p PlugPair) Sorted() PlugPair {
	if p.B < p.A {
		return PlugPair{A: p.B, B: p.A}
	}
	return p
}

func (p PlugPair) String() string {
	return string([]rune{p.A, p.B})
}

// Plugboard is a symmetric pairwise substitution. The zero value swaps
// nothing.
type Plugboard struct {
	mapping [Size]rune
	pairs   []PlugPair
}

// ParsePlugboard builds a plugboard from whitespace-separated two-symbol
// tokens such as "AB CD EF". Tokens are read left to right; malformed tokens
// and tokens that reuse an already connected symbol are dropped.
func ParsePlugboard(spec string) Plugboard {
	var pairs []PlugPair
	for _, tok := range strings.Fields(strings.ToUpper(spec)) {
		rs := []rune(tok)
		if len(rs) != 2 {
			continue
		}
		pairs = append(pairs, PlugPair{A: rs[0], B: rs[1]})
	}
	return NewPlugboard(pairs)
}

// NewPlugboard connects pairs in order. A pair is dropped when either symbol
// is outside the alphabet, when both symbols are the same, or when either
// symbol is already connected.
func NewPlugboard(pairs []PlugPair) Plugboard {
	var pb Plugboard
	var used [Size]bool
	for _, p := range pairs {
		if !IsSymbol(p.A) || !IsSymbol(p.B) || p.A == p.B {
			continue
		}
		a, b := Index(p.A), Index(p.B)
		if used[a] || used[b] {
			continue
		}
		used[a], used[b] = true, true
		pb.mapping[a] = p.B
		pb.mapping[b] = p.A
		pb.pairs = append(pb.pairs, p)
	}
	return pb
}

// Swap returns the symbol cabled to c, or c itself.
func (pb Plugboard) Swap(c rune) rune {
	if !IsSymbol(c) {
		return c
	}
	if m := pb.mapping[Index(c)]; m != 0 {
		return m
	}
	return c
}

// Pairs returns the accepted pairs in the order they were connected.
func (pb Plugboard) Pairs() []PlugPair {
	out := make([]PlugPair, len(pb.pairs))
	copy(out, pb.pairs)
	return out
}

// Len is the number of connected pairs.
func (pb Plugboard) Len() int {
	return len(pb.pairs)
}

// String renders the plugboard in the format ParsePlugboard accepts.
func (pb Plugboard) String() string {
	parts := make([]string, len(pb.pairs))
	for i, p := range pb.pairs {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

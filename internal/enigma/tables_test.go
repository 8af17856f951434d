package enigma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPermutation(t *testing.T, name, wiring string) {
	t.Helper()
	require.Len(t, wiring, Size, "%s wiring length", name)
	seen := make(map[rune]bool, Size)
	for _, r := range wiring {
		assert.True(t, IsSymbol(r), "%s: %q is not in the alphabet", name, r)
		assert.False(t, seen[r], "%s: %q appears twice", name, r)
		seen[r] = true
	}
	assert.Len(t, seen, Size, "%s must cover the alphabet", name)
}

func TestRegistry_WiringsArePermutations(t *testing.T) {
	reg := NewRegistry()
	for _, rt := range RotorTypes {
		assertPermutation(t, "rotor "+rt.String(), reg.Spec(rt).Wiring)
	}
	assertPermutation(t, "reflector", reg.Reflector().Wiring)
}

func TestRegistry_ReflectorIsInvolutionWithoutFixedPoints(t *testing.T) {
	ref := NewRegistry().Reflector()
	for _, c := range Alphabet {
		r := ref.Reflect(c)
		assert.NotEqual(t, c, r, "reflector maps %q to itself", c)
		assert.Equal(t, c, ref.Reflect(r), "reflector not symmetric at %q", c)
	}
}

func TestRegistry_Notches(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, 'Q', reg.Spec(RotorI).Notch)
	assert.Equal(t, 'E', reg.Spec(RotorII).Notch)
	assert.Equal(t, 'V', reg.Spec(RotorIII).Notch)
}

func TestRegistry_UnknownTypeFallsBackToRotorI(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, reg.Spec(RotorI), reg.Spec(RotorType(7)))
}

func TestParseRotorType(t *testing.T) {
	tests := []struct {
		in     string
		want   RotorType
		wantOK bool
	}{
		{"I", RotorI, true},
		{"ii", RotorII, true},
		{" III ", RotorIII, true},
		{"IV", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseRotorType(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRotorType_String(t *testing.T) {
	assert.Equal(t, "I", RotorI.String())
	assert.Equal(t, "II", RotorII.String())
	assert.Equal(t, "III", RotorIII.String())
	assert.Equal(t, "RotorType(9)", RotorType(9).String())
}

func TestAlphabet_IndexAndSymbolAreTotal(t *testing.T) {
	assert.Equal(t, 0, Index('A'))
	assert.Equal(t, 25, Index('Z'))
	assert.Equal(t, 'A', Symbol(26))
	assert.Equal(t, 'Z', Symbol(-1))
	assert.Equal(t, 'B', Symbol(53))
	for i, c := range Alphabet {
		assert.Equal(t, i, Index(c))
		assert.Equal(t, c, Symbol(i))
	}
}

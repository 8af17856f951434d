package enigma

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configAt(left, middle, right rune) Config {
	cfg := DefaultConfig()
	cfg.Rotors[Left].Position = left
	cfg.Rotors[Middle].Position = middle
	cfg.Rotors[Right].Position = right
	return cfg
}

func TestEncrypt_HistoricalVector(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, "BDZGO", Encrypt(reg, "AAAAA", DefaultConfig()))
}

func TestEncrypt_IsDeterministic(t *testing.T) {
	reg := NewRegistry()
	cfg := DefaultConfig()
	cfg.Plugs = ParsePlugboard("AQ WE RT").Pairs()

	first := Encrypt(reg, "HELLO WORLD", cfg)
	second := Encrypt(reg, "HELLO WORLD", cfg)
	assert.Equal(t, first, second)
}

func TestMachine_ProgressiveConsistency(t *testing.T) {
	reg := NewRegistry()
	cfg := DefaultConfig()

	full := Encrypt(reg, "AAAAA", cfg)

	m := NewMachine(reg, cfg)
	prefix := m.Encrypt("AAAA")
	last := m.Encrypt("A")

	assert.Equal(t, full, prefix+last)
}

func TestEncrypt_PrefixesAreStable(t *testing.T) {
	reg := NewRegistry()
	cfg := configAt('Q', 'D', 'T')
	cfg.Plugs = ParsePlugboard("AZ BY").Pairs()
	text := "THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG"

	full := []rune(Encrypt(reg, text, cfg))
	runes := []rune(text)
	for n := 1; n <= len(runes); n++ {
		got := Encrypt(reg, string(runes[:n]), cfg)
		require.Equal(t, string(full[:n]), got, "prefix length %d", n)
	}
}

func TestEncrypt_NonAlphabetPassesThroughWithoutStepping(t *testing.T) {
	reg := NewRegistry()
	cfg := DefaultConfig()

	spaced := NewMachine(reg, cfg)
	out := spaced.Encrypt("A B")
	packed := NewMachine(reg, cfg)
	packed.Encrypt("AB")

	assert.Equal(t, ' ', []rune(out)[1])
	assert.Equal(t, packed.Positions(), spaced.Positions())
	assert.Equal(t, [3]rune{'A', 'A', 'C'}, spaced.Positions())
}

func TestEncrypt_PunctuationKeepsPosition(t *testing.T) {
	reg := NewRegistry()
	out := Encrypt(reg, "A, B! 42", DefaultConfig())

	runes := []rune(out)
	require.Len(t, runes, 8)
	assert.Equal(t, ", ", string(runes[1:3]))
	assert.Equal(t, "! 42", string(runes[4:]))
}

func TestEncrypt_Lowercase(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, Encrypt(reg, "AAAAA", DefaultConfig()), Encrypt(reg, "aaaaa", DefaultConfig()))
}

func TestMachine_DoubleStep(t *testing.T) {
	reg := NewRegistry()
	// Middle is type II (notch E), right is type III (notch V).
	m := NewMachine(reg, configAt('A', 'E', 'V'))

	m.EncryptChar('A')

	assert.Equal(t, [3]rune{'B', 'G', 'W'}, m.Positions())
}

func TestMachine_DoubleStepSequence(t *testing.T) {
	reg := NewRegistry()
	m := NewMachine(reg, configAt('A', 'D', 'U'))

	want := [][3]rune{
		{'A', 'D', 'V'},
		{'A', 'E', 'W'},
		{'B', 'F', 'X'},
		{'B', 'F', 'Y'},
	}
	for i, w := range want {
		m.StepRotors()
		assert.Equal(t, w, m.Positions(), "step %d", i+1)
	}
}

func TestMachine_LockedRotorsDoNotRotate(t *testing.T) {
	reg := NewRegistry()
	cfg := configAt('A', 'E', 'V')
	cfg.Locks[Middle] = true

	m := NewMachine(reg, cfg)
	m.StepRotors()

	// The middle rotor holds at its notch, so the left rotor keeps being
	// carried while the right rotor steps as usual.
	assert.Equal(t, [3]rune{'B', 'E', 'W'}, m.Positions())
	m.StepRotors()
	assert.Equal(t, [3]rune{'C', 'E', 'X'}, m.Positions())
}

func TestMachine_AllLockedStillEncrypts(t *testing.T) {
	reg := NewRegistry()
	cfg := DefaultConfig()
	cfg.Locks = Locks{true, true, true}

	m := NewMachine(reg, cfg)
	out := m.Encrypt("AAAA")

	assert.Equal(t, [3]rune{'A', 'A', 'A'}, m.Positions())
	runes := []rune(out)
	for _, r := range runes {
		assert.Equal(t, runes[0], r)
		assert.NotEqual(t, 'A', r)
	}
}

func TestRun_ReturnsEndRotors(t *testing.T) {
	reg := NewRegistry()
	out, rotors := Run(reg, "AAAAA", DefaultConfig())

	assert.Equal(t, "BDZGO", out)
	assert.Equal(t, [3]rune{'A', 'A', 'F'}, rotors.Positions())
}

func TestNewMachine_DoesNotAliasConfig(t *testing.T) {
	reg := NewRegistry()
	cfg := DefaultConfig()
	m := NewMachine(reg, cfg)
	m.Encrypt("HELLO")

	assert.Equal(t, 'A', cfg.Rotors[Right].Position)
}

func TestEncrypt_Properties(t *testing.T) {
	reg := NewRegistry()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	cfgFrom := func(types []int, positions []rune, plugs []rune) Config {
		var cfg Config
		for i := range 3 {
			cfg.Rotors[i] = RotorState{Type: RotorType(types[i]), Position: positions[i]}
		}
		for i := 0; i+1 < len(plugs); i += 2 {
			cfg.Plugs = append(cfg.Plugs, PlugPair{A: plugs[i], B: plugs[i+1]})
		}
		return cfg
	}

	typesGen := gen.SliceOfN(3, gen.IntRange(0, 2))
	positionsGen := gen.SliceOfN(3, gen.RuneRange('A', 'Z'))
	plugsGen := gen.SliceOf(gen.RuneRange('A', 'Z'))
	textGen := gen.SliceOf(gen.RuneRange('A', 'Z'))

	properties.Property("encrypting twice from the same base restores the text", prop.ForAll(
		func(types []int, positions, plugs, text []rune) bool {
			cfg := cfgFrom(types, positions, plugs)
			plain := string(text)
			return Encrypt(reg, Encrypt(reg, plain, cfg), cfg) == plain
		},
		typesGen, positionsGen, plugsGen, textGen,
	))

	properties.Property("no symbol encrypts to itself", prop.ForAll(
		func(types []int, positions, plugs, text []rune) bool {
			cfg := cfgFrom(types, positions, plugs)
			out := []rune(Encrypt(reg, string(text), cfg))
			for i := range text {
				if out[i] == text[i] {
					return false
				}
			}
			return true
		},
		typesGen, positionsGen, plugsGen, textGen,
	))

	properties.Property("identical calls give identical output", prop.ForAll(
		func(types []int, positions, plugs, text []rune) bool {
			cfg := cfgFrom(types, positions, plugs)
			return Encrypt(reg, string(text), cfg) == Encrypt(reg, string(text), cfg)
		},
		typesGen, positionsGen, plugsGen, textGen,
	))

	properties.TestingRun(t)
}

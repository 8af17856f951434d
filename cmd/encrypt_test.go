package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhubert/enigmavision/internal/enigma"
	"github.com/zhubert/enigmavision/internal/errors"
)

// isolateConfig points config lookup at an empty home directory.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	orig := configPath
	configPath = ""
	t.Cleanup(func() { configPath = orig })
}

func encrypt(t *testing.T, stdin string, args []string, opts encryptOptions) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, runEncryptWith(strings.NewReader(stdin), &out, args, opts))
	return strings.TrimSuffix(out.String(), "\n")
}

func TestEncrypt_Args(t *testing.T) {
	isolateConfig(t)
	assert.Equal(t, "BDZGO", encrypt(t, "", []string{"AAAAA"}, encryptOptions{}))
}

func TestEncrypt_ArgsJoinedWithSpaces(t *testing.T) {
	isolateConfig(t)
	got := encrypt(t, "", []string{"AA", "AAA"}, encryptOptions{})
	assert.Equal(t, "BD ZGO", got)
}

func TestEncrypt_Stdin(t *testing.T) {
	isolateConfig(t)
	assert.Equal(t, "BDZGO", encrypt(t, "aaaaa\n", nil, encryptOptions{}))
}

func TestEncrypt_RoundTrip(t *testing.T) {
	isolateConfig(t)
	opts := encryptOptions{
		rotors:    "III,I,II",
		positions: "qev",
		plugs:     "AB CD EF",
		locks:     "left",
	}

	cipher := encrypt(t, "", []string{"ATTACK AT DAWN"}, opts)
	assert.NotEqual(t, "ATTACK AT DAWN", cipher)
	assert.Equal(t, "ATTACK AT DAWN", encrypt(t, "", []string{cipher}, opts))
}

func TestEncrypt_MatchesMachine(t *testing.T) {
	isolateConfig(t)
	opts := encryptOptions{rotors: "II,III,I", positions: "ADU", plugs: "QW"}

	want := enigma.Encrypt(enigma.NewRegistry(), "HELLO", enigma.Config{
		Rotors: [3]enigma.RotorState{
			{Type: enigma.RotorII, Position: 'A'},
			{Type: enigma.RotorIII, Position: 'D'},
			{Type: enigma.RotorI, Position: 'U'},
		},
		Plugs: []enigma.PlugPair{{A: 'Q', B: 'W'}},
	})
	assert.Equal(t, want, encrypt(t, "", []string{"HELLO"}, opts))
}

func TestEncrypt_UsesConfigFile(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "machine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("plugs: BX\n"), 0o644))
	configPath = path

	// only the B of BDZGO is cabled
	assert.Equal(t, "XDZGO", encrypt(t, "", []string{"AAAAA"}, encryptOptions{}))

	// flags win over the file
	assert.Equal(t, "BDZGO", encrypt(t, "", []string{"AAAAA"}, encryptOptions{plugs: "QW"}))
}

func TestEncrypt_BadFlags(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name string
		opts encryptOptions
	}{
		{"two rotors", encryptOptions{rotors: "I,II"}},
		{"unknown rotor", encryptOptions{rotors: "I,II,IV"}},
		{"short positions", encryptOptions{positions: "AB"}},
		{"digit position", encryptOptions{positions: "A1B"}},
		{"self plug", encryptOptions{plugs: "AA"}},
		{"eleven plugs", encryptOptions{plugs: "AB CD EF GH IJ KL MN OP QR ST UV"}},
		{"unknown lock", encryptOptions{locks: "top"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runEncryptWith(strings.NewReader(""), &out, []string{"A"}, tt.opts)
			require.Error(t, err)
			assert.Empty(t, out.String(), "nothing should be printed on error")
		})
	}
}

func TestEncrypt_BadFlagKinds(t *testing.T) {
	isolateConfig(t)
	err := runEncryptWith(strings.NewReader(""), &bytes.Buffer{}, []string{"A"}, encryptOptions{positions: "A1B"})
	assert.True(t, errors.Is(err, errors.KindInvalid), "got kind %v", errors.GetKind(err))
}

func TestEncryptInput(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"args", "ignored", []string{"A", "B"}, "A B"},
		{"stdin", "HELLO\n", nil, "HELLO"},
		{"crlf", "HELLO\r\n", nil, "HELLO"},
		{"multiline keeps inner newlines", "AB\nCD\n", nil, "AB\nCD"},
		{"empty", "", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encryptInput(strings.NewReader(tt.stdin), tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

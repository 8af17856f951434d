package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zhubert/enigmavision/internal/enigma"
)

func TestPrintTables(t *testing.T) {
	var out bytes.Buffer
	reg := enigma.NewRegistry()
	if err := printTables(&out, reg); err != nil {
		t.Fatalf("printTables() error = %v", err)
	}

	got := out.String()
	want := []string{
		enigma.Alphabet,
		"EKMFLGDQVZNTOWYHXUSPAIBRCJ",
		"AJDKSIRUXBLHWTMCQGZNPYFVOE",
		"BDFHJLCPRTXVZNYEIWGAKMUSQO",
		"YRUHQSLDPXNGOKMIEBFZCWVJAT",
		"UKW-B",
	}
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("expected %q in tables output", w)
		}
	}
	for _, rt := range enigma.RotorTypes {
		if !strings.Contains(got, string(reg.Spec(rt).Notch)) {
			t.Errorf("expected notch of rotor %s in output", rt)
		}
	}
}

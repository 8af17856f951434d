package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindInvalid, "invalid"},
		{KindNotFound, "not found"},
		{KindIO, "I/O error"},
		{KindConfig, "configuration error"},
		{KindClipboard, "clipboard error"},
		{Kind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "config.Load", Context: "reading file", Err: errors.New("boom")},
			expected: "config.Load: reading file: boom",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "config.Load", Err: errors.New("boom")},
			expected: "config.Load: boom",
		},
		{
			name:     "context without op",
			err:      &Error{Context: "reading file", Err: errors.New("boom")},
			expected: "reading file: boom",
		},
		{
			name:     "bare",
			err:      &Error{Err: errors.New("boom")},
			expected: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestE(t *testing.T) {
	tests := []struct {
		name     string
		args     []any
		wantOp   Op
		wantKind Kind
		wantMsg  string
	}{
		{
			name:     "all args",
			args:     []any{Op("config.Load"), KindConfig, "context", errors.New("cause")},
			wantOp:   "config.Load",
			wantKind: KindConfig,
			wantMsg:  "config.Load: context: cause",
		},
		{
			name:     "context becomes the error",
			args:     []any{Op("config.Validate"), KindInvalid, "bad plugs"},
			wantOp:   "config.Validate",
			wantKind: KindInvalid,
			wantMsg:  "config.Validate: bad plugs",
		},
		{
			name:     "just an error",
			args:     []any{errors.New("plain")},
			wantKind: KindUnknown,
			wantMsg:  "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := E(tt.args...)
			e, ok := err.(*Error)
			if !ok {
				t.Fatalf("E() returned %T, want *Error", err)
			}
			if e.Op != tt.wantOp {
				t.Errorf("E().Op = %q, want %q", e.Op, tt.wantOp)
			}
			if e.Kind != tt.wantKind {
				t.Errorf("E().Kind = %v, want %v", e.Kind, tt.wantKind)
			}
			if got := err.Error(); got != tt.wantMsg {
				t.Errorf("E().Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     Kind
		expected bool
	}{
		{"matching kind", ConfigInvalid("x"), KindInvalid, true},
		{"other kind", ConfigInvalid("x"), KindConfig, false},
		{"foreign error", errors.New("x"), KindInvalid, false},
		{"nil error", nil, KindUnknown, false},
		{"wrapped", fmt.Errorf("outer: %w", ClipboardEmpty()), KindNotFound, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.kind); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name   string
		err    error
		kind   Kind
		op     Op
		wraps  bool
		substr string
	}{
		{"ConfigLoadFailed", ConfigLoadFailed("/tmp/c.json", cause), KindConfig, "config.Load", true, "/tmp/c.json"},
		{"ConfigUnsupportedFormat", ConfigUnsupportedFormat("c.ini"), KindConfig, "config.LoadFile", false, "c.ini"},
		{"ConfigInvalid", ConfigInvalid("rotor 2 missing"), KindInvalid, "config.Validate", false, "rotor 2 missing"},
		{"InvalidRotorType", InvalidRotorType("IV"), KindInvalid, "enigma.ParseRotorType", false, `"IV"`},
		{"InvalidPosition", InvalidPosition("7"), KindInvalid, "enigma.ParsePosition", false, `"7"`},
		{"InvalidPlug", InvalidPlug("AA"), KindInvalid, "enigma.ParsePlugboard", false, `"AA"`},
		{"TooManyPlugs", TooManyPlugs(11, 10), KindInvalid, "enigma.ParsePlugboard", false, "11 plug pairs"},
		{"ClipboardUnavailable", ClipboardUnavailable(cause), KindClipboard, "clipboard.Init", true, "unavailable"},
		{"ClipboardEmpty", ClipboardEmpty(), KindNotFound, "clipboard.ReadText", false, "no text"},
		{"LogCleanFailed", LogCleanFailed("/tmp/x.log", cause), KindIO, "logger.ClearLogs", true, "/tmp/x.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Is(tt.err, tt.kind) {
				t.Errorf("kind = %v, want %v", GetKind(tt.err), tt.kind)
			}
			var e *Error
			if !errors.As(tt.err, &e) {
				t.Fatalf("%T is not *Error", tt.err)
			}
			if e.Op != tt.op {
				t.Errorf("Op = %q, want %q", e.Op, tt.op)
			}
			if got := errors.Is(tt.err, cause); got != tt.wraps {
				t.Errorf("errors.Is(cause) = %v, want %v", got, tt.wraps)
			}
			if msg := tt.err.Error(); !strings.Contains(msg, tt.substr) {
				t.Errorf("Error() = %q, want it to contain %q", msg, tt.substr)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	inner := errors.New("original")
	middle := E(Op("middle.Op"), KindIO, inner)
	outer := E(Op("outer.Op"), KindConfig, middle)

	if !errors.Is(outer, inner) {
		t.Error("inner error should be reachable through the chain")
	}
	if GetKind(outer) != KindConfig {
		t.Error("GetKind should return the outer error's kind")
	}
}

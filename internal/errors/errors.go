// Package errors provides structured errors for the configuration, CLI and
// clipboard layers. The cipher core never fails and does not use it.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Op names the operation that failed, usually as "package.Function".
type Op string

// Kind categorizes an error so callers can react without string matching.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalid
	KindNotFound
	KindIO
	KindConfig
	KindClipboard
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNotFound:
		return "not found"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindClipboard:
		return "clipboard error"
	default:
		return "unknown error"
	}
}

// Error carries the failed operation, its kind and an optional detail
// message around the underlying error.
type Error struct {
	Op      Op
	Kind    Kind
	Err     error
	Context string
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(string(e.Op))
		b.WriteString(": ")
	}
	if e.Context != "" {
		b.WriteString(e.Context)
		b.WriteString(": ")
	}
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an *Error from any mix of Op, Kind, string (context) and error
// arguments. With no error argument the context becomes the error text.
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is an *Error (possibly wrapped) of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the kind of the outermost *Error in err's chain.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Config errors

func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigUnsupportedFormat(path string) error {
	return E(Op("config.LoadFile"), KindConfig, fmt.Sprintf("unsupported config format %q", path))
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Machine setting errors, raised while parsing flags or config values.

func InvalidRotorType(value string) error {
	return E(Op("enigma.ParseRotorType"), KindInvalid, fmt.Sprintf("unknown rotor type %q (want I, II or III)", value))
}

func InvalidPosition(value string) error {
	return E(Op("enigma.ParsePosition"), KindInvalid, fmt.Sprintf("invalid rotor position %q (want a single letter A-Z)", value))
}

func InvalidPlug(token string) error {
	return E(Op("enigma.ParsePlugboard"), KindInvalid, fmt.Sprintf("invalid plug pair %q", token))
}

func InvalidSlot(value string) error {
	return E(Op("enigma.ParseSlot"), KindInvalid, fmt.Sprintf("unknown rotor slot %q (want left, middle or right)", value))
}

func TooManyPlugs(n, max int) error {
	return E(Op("enigma.ParsePlugboard"), KindInvalid, fmt.Sprintf("%d plug pairs given, at most %d allowed", n, max))
}

// Clipboard errors

func ClipboardUnavailable(err error) error {
	return E(Op("clipboard.Init"), KindClipboard, "system clipboard unavailable", err)
}

func ClipboardEmpty() error {
	return E(Op("clipboard.ReadText"), KindNotFound, "clipboard has no text")
}

// Log maintenance errors

func LogCleanFailed(path string, err error) error {
	return E(Op("logger.ClearLogs"), KindIO, fmt.Sprintf("failed to remove %s", path), err)
}

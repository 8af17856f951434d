// Package clipboard copies ciphertext to, and pastes plaintext from, the
// system clipboard.
package clipboard

import (
	"log/slog"
	"strings"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/enigmavision/internal/errors"
	"github.com/zhubert/enigmavision/internal/logger"
)

func log() *slog.Logger { return logger.ComponentLogger("Clipboard") }

// The system clipboard calls, swapped out in tests.
var (
	initFn  = clipboard.Init
	readFn  = func() []byte { return clipboard.Read(clipboard.FmtText) }
	writeFn = func(b []byte) { clipboard.Write(clipboard.FmtText, b) }
)

var (
	mu          sync.Mutex
	initialized bool
)

// Init prepares the system clipboard. It is safe to call more than once;
// ReadText and WriteText call it as needed.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}
	if err := initFn(); err != nil {
		log().Warn("failed to initialize", "error", err)
		return errors.ClipboardUnavailable(err)
	}
	initialized = true
	log().Debug("initialized")
	return nil
}

// ReadText returns the clipboard's text. An empty clipboard is reported as
// a KindNotFound error so callers can tell it apart from an empty paste.
func ReadText() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return "", err
	}
	b := readFn()
	if len(b) == 0 {
		return "", errors.ClipboardEmpty()
	}
	text := strings.ReplaceAll(string(b), "\r\n", "\n")
	log().Debug("read text", "bytes", len(text))
	return text, nil
}

// WriteText replaces the clipboard's contents with text.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return err
	}
	writeFn([]byte(text))
	log().Debug("wrote text", "bytes", len(text))
	return nil
}

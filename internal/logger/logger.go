// Package logger writes structured debug logs to a file so that the
// terminal UI never has log output interleaved with its frames.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	slogmulti "github.com/samber/slog-multi"
	"github.com/zhubert/enigmavision/internal/errors"
)

// DefaultLogPath is where logs go when Init is never called.
const DefaultLogPath = "/tmp/enigmavision-debug.log"

// logGlob matches every log file this program may have created.
const logGlob = "/tmp/enigmavision-*.log"

var (
	slogLogger *slog.Logger
	levelVar   = new(slog.LevelVar)
	logFile    *os.File
	mu         sync.Mutex
	initDone   bool
	debug      bool
)

// SetDebug switches between debug and info level.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = enabled
	levelVar.Set(currentLevel())
}

// IsDebug reports whether debug logging is on.
func IsDebug() bool {
	mu.Lock()
	defer mu.Unlock()
	return debug
}

func currentLevel() slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Init opens path for appending and routes all logging to it. Any extra
// handlers receive every record as well (the encrypt command uses this to
// mirror logs to stderr). Calling Init a second time is a no-op until Reset.
func Init(path string, extra ...slog.Handler) error {
	mu.Lock()
	defer mu.Unlock()

	if initDone {
		return nil
	}
	return open(path, extra)
}

// open must be called with mu held.
func open(path string, extra []slog.Handler) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	levelVar.Set(currentLevel())

	var handler slog.Handler = slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar})
	if len(extra) > 0 {
		handler = slogmulti.Fanout(append([]slog.Handler{handler}, extra...)...)
	}
	slogLogger = slog.New(handler)
	initDone = true

	slogLogger.Debug("Logger initialized", "path", path)
	return nil
}

// ensureInit lazily opens DefaultLogPath. Must be called with mu held.
func ensureInit() {
	if initDone {
		return
	}
	if err := open(DefaultLogPath, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		// Don't retry on every call.
		initDone = true
	}
}

func logAt(level slog.Level, msg string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if slogLogger == nil || !slogLogger.Enabled(context.Background(), level) {
		return
	}
	slogLogger.Log(context.Background(), level, msg, args...)
}

// Debug logs msg with key/value attributes at debug level.
func Debug(msg string, args ...any) { logAt(slog.LevelDebug, msg, args...) }

// Info logs at info level.
func Info(msg string, args ...any) { logAt(slog.LevelInfo, msg, args...) }

// Warn logs at warn level.
func Warn(msg string, args ...any) { logAt(slog.LevelWarn, msg, args...) }

// Error logs at error level.
func Error(msg string, args ...any) { logAt(slog.LevelError, msg, args...) }

// ComponentLogger returns a logger tagged with the component name.
//
//	log := logger.ComponentLogger("Session")
//	log.Debug("applied edit", "len", n)
func ComponentLogger(component string) *slog.Logger {
	return with(slog.String("component", component))
}

// WithSession returns a logger tagged with a session ID.
func WithSession(sessionID string) *slog.Logger {
	return with(slog.String("sessionID", sessionID))
}

func with(attr slog.Attr) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if slogLogger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slogLogger.With(attr)
}

// Close closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = nil
}

// Reset drops all state so Init can be called again. Tests use it to point
// the logger at a temp file.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = nil
	initDone = false
	debug = false
	levelVar = new(slog.LevelVar)
}

// ListLogs returns every enigmavision log file in /tmp.
func ListLogs() ([]string, error) {
	return filepath.Glob(logGlob)
}

// ClearLogs removes every enigmavision log file from /tmp and returns how
// many were removed.
func ClearLogs() (int, error) {
	return clearMatching(logGlob)
}

func clearMatching(pattern string) (int, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, p := range paths {
		if err := os.Remove(p); err == nil {
			count++
		} else if !os.IsNotExist(err) {
			return count, errors.LogCleanFailed(p, err)
		}
	}
	return count, nil
}

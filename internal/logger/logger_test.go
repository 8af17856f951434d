package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestLogger points the logger at a temp file for the duration of the test.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(Reset)
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestLevels(t *testing.T) {
	logPath := setupTestLogger(t)

	Debug("hidden-debug")
	Info("visible-info", "key", "value")
	Warn("visible-warn")
	Error("visible-error")

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden-debug") {
		t.Error("debug message should not be logged at info level")
	}
	for _, want := range []string{"visible-info", "key=value", "visible-warn", "visible-error"} {
		if !strings.Contains(content, want) {
			t.Errorf("log should contain %q", want)
		}
	}
}

func TestSetDebug(t *testing.T) {
	logPath := setupTestLogger(t)

	SetDebug(true)
	if !IsDebug() {
		t.Error("IsDebug() should be true after SetDebug(true)")
	}
	Debug("debug-unique-marker")

	if !strings.Contains(readLog(t, logPath), "debug-unique-marker") {
		t.Error("debug message should be logged when debug is enabled")
	}
}

func TestComponentLogger(t *testing.T) {
	logPath := setupTestLogger(t)

	ComponentLogger("Session").Info("component-marker")

	content := readLog(t, logPath)
	if !strings.Contains(content, "component=Session") {
		t.Errorf("log should carry the component attribute, got %q", content)
	}
}

func TestWithSession(t *testing.T) {
	logPath := setupTestLogger(t)

	WithSession("abc-123").Info("session-marker")

	if !strings.Contains(readLog(t, logPath), "sessionID=abc-123") {
		t.Error("log should carry the session attribute")
	}
}

func TestInit_FansOutToExtraHandlers(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	extra := slog.NewTextHandler(&buf, nil)
	logPath := filepath.Join(t.TempDir(), "fanout.log")
	if err := Init(logPath, extra); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	Info("fanout-marker")

	if !strings.Contains(buf.String(), "fanout-marker") {
		t.Error("extra handler should receive the record")
	}
	if !strings.Contains(readLog(t, logPath), "fanout-marker") {
		t.Error("log file should receive the record")
	}
}

func TestInit_SecondCallIsNoop(t *testing.T) {
	logPath := setupTestLogger(t)

	other := filepath.Join(t.TempDir(), "other.log")
	if err := Init(other); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Info("still-first-file")

	if !strings.Contains(readLog(t, logPath), "still-first-file") {
		t.Error("second Init should not redirect logging")
	}
	if _, err := os.Stat(other); !os.IsNotExist(err) {
		t.Error("second Init should not create a file")
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if err := Init("/nonexistent/directory/log.log"); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestClose(t *testing.T) {
	setupTestLogger(t)

	Close()
	// Logging after Close must not panic.
	Info("after close")
}

func TestClearMatching(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"enigmavision-a.log", "enigmavision-b.log", "keep.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	n, err := clearMatching(filepath.Join(dir, "enigmavision-*.log"))
	if err != nil {
		t.Fatalf("clearMatching() error = %v", err)
	}
	if n != 2 {
		t.Errorf("clearMatching() removed %d files, want 2", n)
	}
	if _, err := os.Stat(filepath.Join(dir, "keep.txt")); err != nil {
		t.Error("non-matching file should be kept")
	}
}

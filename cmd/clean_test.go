package cmd

import (
	"io"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase Y", "Y\n", true},
		{"lowercase yes", "yes\n", true},
		{"uppercase YES", "YES\n", true},
		{"mixed case Yes", "Yes\n", true},
		{"lowercase n", "n\n", false},
		{"lowercase no", "no\n", false},
		{"empty input", "\n", false},
		{"random text", "maybe\n", false},
		{"y with spaces", "  y  \n", true},
		{"yes with spaces", "  yes  \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.input)
			result := confirm(reader, "Test?")
			if result != tt.expected {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestConfirm_EOF(t *testing.T) {
	// Test with empty reader (simulates EOF)
	reader := strings.NewReader("")
	result := confirm(reader, "Test?")
	if result != false {
		t.Errorf("confirm(EOF) = %v, want false", result)
	}
}

func TestConfirm_ErrorReader(t *testing.T) {
	// Test with a reader that returns an error
	reader := &errorReader{}
	result := confirm(reader, "Test?")
	if result != false {
		t.Errorf("confirm(error) = %v, want false", result)
	}
}

// errorReader is a reader that always returns an error
type errorReader struct{}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

// stubLogs replaces the log file operations for one test.
func stubLogs(t *testing.T, files []string) *int {
	t.Helper()
	cleared := 0
	origList, origClear := listLogs, clearLogs
	listLogs = func() ([]string, error) { return files, nil }
	clearLogs = func() (int, error) {
		cleared = len(files)
		return cleared, nil
	}
	t.Cleanup(func() { listLogs, clearLogs = origList, origClear })
	return &cleared
}

func TestRunClean_NothingToClean(t *testing.T) {
	cleared := stubLogs(t, nil)
	if err := runCleanWithReader(strings.NewReader("y\n")); err != nil {
		t.Fatalf("runCleanWithReader() error = %v", err)
	}
	if *cleared != 0 {
		t.Error("nothing should be removed when there are no logs")
	}
}

func TestRunClean_Declined(t *testing.T) {
	cleared := stubLogs(t, []string{"/tmp/enigmavision-debug.log"})
	if err := runCleanWithReader(strings.NewReader("n\n")); err != nil {
		t.Fatalf("runCleanWithReader() error = %v", err)
	}
	if *cleared != 0 {
		t.Error("declining should keep the logs")
	}
}

func TestRunClean_Confirmed(t *testing.T) {
	cleared := stubLogs(t, []string{"/tmp/enigmavision-debug.log", "/tmp/enigmavision-old.log"})
	if err := runCleanWithReader(strings.NewReader("yes\n")); err != nil {
		t.Fatalf("runCleanWithReader() error = %v", err)
	}
	if *cleared != 2 {
		t.Errorf("cleared = %d, want 2", *cleared)
	}
}

func TestRunClean_SkipConfirm(t *testing.T) {
	orig := skipConfirm
	skipConfirm = true
	defer func() { skipConfirm = orig }()

	cleared := stubLogs(t, []string{"/tmp/enigmavision-debug.log"})
	if err := runCleanWithReader(strings.NewReader("")); err != nil {
		t.Fatalf("runCleanWithReader() error = %v", err)
	}
	if *cleared != 1 {
		t.Errorf("cleared = %d, want 1", *cleared)
	}
}

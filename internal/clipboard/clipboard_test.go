package clipboard

import (
	stderrors "errors"
	"testing"

	"github.com/zhubert/enigmavision/internal/errors"
)

// fakeClipboard stands in for the system clipboard.
type fakeClipboard struct {
	initErr   error
	initCalls int
	content   []byte
}

func useFake(t *testing.T, f *fakeClipboard) {
	t.Helper()
	oldInit, oldRead, oldWrite := initFn, readFn, writeFn
	initFn = func() error { f.initCalls++; return f.initErr }
	readFn = func() []byte { return f.content }
	writeFn = func(b []byte) { f.content = b }

	mu.Lock()
	initialized = false
	mu.Unlock()

	t.Cleanup(func() {
		initFn, readFn, writeFn = oldInit, oldRead, oldWrite
		mu.Lock()
		initialized = false
		mu.Unlock()
	})
}

func TestWriteThenRead(t *testing.T) {
	f := &fakeClipboard{}
	useFake(t, f)

	if err := WriteText("BDZGO"); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	got, err := ReadText()
	if err != nil {
		t.Fatalf("ReadText() error = %v", err)
	}
	if got != "BDZGO" {
		t.Errorf("ReadText() = %q, want %q", got, "BDZGO")
	}
	if f.initCalls != 1 {
		t.Errorf("init called %d times, want 1", f.initCalls)
	}
}

func TestReadText_NormalizesLineEndings(t *testing.T) {
	useFake(t, &fakeClipboard{content: []byte("AB\r\nCD")})

	got, err := ReadText()
	if err != nil {
		t.Fatalf("ReadText() error = %v", err)
	}
	if got != "AB\nCD" {
		t.Errorf("ReadText() = %q, want %q", got, "AB\nCD")
	}
}

func TestReadText_Empty(t *testing.T) {
	useFake(t, &fakeClipboard{})

	_, err := ReadText()
	if !errors.Is(err, errors.KindNotFound) {
		t.Errorf("ReadText() error = %v, want KindNotFound", err)
	}
}

func TestInitFailure(t *testing.T) {
	cause := stderrors.New("no display")
	f := &fakeClipboard{initErr: cause}
	useFake(t, f)

	err := WriteText("X")
	if !errors.Is(err, errors.KindClipboard) {
		t.Errorf("WriteText() error = %v, want KindClipboard", err)
	}
	if !stderrors.Is(err, cause) {
		t.Error("WriteText() should wrap the init error")
	}

	// A failed init is retried on the next call.
	f.initErr = nil
	if err := Init(); err != nil {
		t.Fatalf("Init() after recovery error = %v", err)
	}
	if f.initCalls != 2 {
		t.Errorf("init called %d times, want 2", f.initCalls)
	}
}

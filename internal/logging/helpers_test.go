package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestHelpersAreNilSafe(t *testing.T) {
	Debug(nil, "debug")
	Info(nil, "info")
	Warn(nil, "warn")
	Error(nil, "error", errors.New("boom"))
}

func TestErrorAppendsErrorAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Output: &buf})

	Error(logger, "load failed", errors.New("boom"), FieldProvider, "sleeper")

	out := buf.String()
	if !strings.Contains(out, "err=boom") || !strings.Contains(out, "provider=sleeper") {
		t.Fatalf("expected error and provider attrs, got %q", out)
	}
}

func TestErrorWithoutErrOmitsAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Output: &buf})

	Error(logger, "no cause", nil)

	if strings.Contains(buf.String(), FieldError+"=") {
		t.Fatalf("expected no err attr, got %q", buf.String())
	}
}

func TestDebugRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	Debug(NewLogger(Config{Output: &buf, Level: "info"}), "hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug suppressed at info, got %q", buf.String())
	}

	Debug(NewLogger(Config{Output: &buf, Level: "debug"}), "shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected debug record, got %q", buf.String())
	}
}

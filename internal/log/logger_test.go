package log

import (
	"bytes"
	"strings"
	"testing"
)

func capture(f func()) string {
	var buf bytes.Buffer

	old := out
	SetOutput(&buf)
	defer SetOutput(old)

	f()
	return buf.String()
}

func TestInfof(t *testing.T) {
	out := capture(func() {
		Infof("hello %s", "world")
	})

	if !strings.Contains(out, "[INF]") {
		t.Errorf("Expected [INF] prefix, got: %q", out)
	}
	if !strings.Contains(out, "hello world") {
		t.Errorf("Expected formatted message, got: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("Expected trailing newline, got: %q", out)
	}
}

func TestDebugf_SuppressedWithoutVerbose(t *testing.T) {
	originalVerbose := verbose
	defer SetVerbose(originalVerbose)

	SetVerbose(false)
	out := capture(func() {
		Debugf("hidden")
	})

	if out != "" {
		t.Errorf("Expected no debug output without verbose, got: %q", out)
	}
}

func TestDebugf_ShownWithVerbose(t *testing.T) {
	originalVerbose := verbose
	defer SetVerbose(originalVerbose)

	SetVerbose(true)
	out := capture(func() {
		Debugf("shown")
	})

	if !strings.Contains(out, "[DBG]") || !strings.Contains(out, "shown") {
		t.Errorf("Expected debug output with verbose, got: %q", out)
	}
}

func TestErrorf(t *testing.T) {
	out := capture(func() {
		Errorf("failed: %v", "reason")
	})

	if !strings.Contains(out, "[ERR]") || !strings.Contains(out, "failed: reason") {
		t.Errorf("Expected error output, got: %q", out)
	}
}

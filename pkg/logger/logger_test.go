package logger

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "warn", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()
	l.Info(ctx, "hidden")
	l.Warn(ctx, "shown", String("key", "value"), Error(errors.New("boom")))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line leaked at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") || !strings.Contains(out, "boom") {
		t.Errorf("missing warn output: %s", out)
	}
}

func TestNamedAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(Options{Level: "debug", JSON: true, Output: &buf})
	l.Named("editor").Debug(context.Background(), "saved")
	if !strings.Contains(buf.String(), `"component":"editor"`) {
		t.Errorf("expected component field, got %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "INFO", "", "warning", "error"} {
		if _, err := ParseLevel(lvl); err != nil {
			t.Errorf("ParseLevel(%q): %v", lvl, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

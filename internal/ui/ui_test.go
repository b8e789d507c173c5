package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		value string
		want  ColorMode
		ok    bool
	}{
		{value: "", want: ColorAuto, ok: true},
		{value: "auto", want: ColorAuto, ok: true},
		{value: "always", want: ColorAlways, ok: true},
		{value: "never", want: ColorNever, ok: true},
		{value: "sometimes", want: ColorAuto, ok: false},
	}
	for _, tt := range tests {
		got, ok := ParseColorMode(tt.value)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseColorMode(%q) = (%v, %v), want (%v, %v)", tt.value, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMessagesWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	u := New(ColorNever, &buf)

	u.Success("rewrote %s", "doc.md")
	u.Warning("reading from stdin")
	u.Error("bad input")
	u.Info("done")

	out := buf.String()
	for _, want := range []string{"✓ rewrote doc.md", "⚠ reading from stdin", "✗ bad input", "ℹ done"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("ColorNever output contains ANSI escapes:\n%s", out)
	}
}

func TestNoColorEnvDisablesColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	u := New(ColorAlways, &buf)
	u.Error("oops")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("NO_COLOR output contains ANSI escapes:\n%s", buf.String())
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	u := New(ColorNever, &buf)
	ctx := WithUI(context.Background(), u)

	if got := FromContext(ctx); got != u {
		t.Error("FromContext should return the attached UI")
	}
	if got := FromContext(context.Background()); got == nil {
		t.Error("FromContext should fall back to a default UI")
	}
}

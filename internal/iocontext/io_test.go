package iocontext

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestEmptyContextReturnsNil(t *testing.T) {
	ctx := context.Background()
	if Stdin(ctx) != nil {
		t.Error("expected nil stdin for empty context")
	}
	if Stdout(ctx) != nil {
		t.Error("expected nil stdout for empty context")
	}
	if Stderr(ctx) != nil {
		t.Error("expected nil stderr for empty context")
	}
}

func TestWithIORoundTrip(t *testing.T) {
	in := strings.NewReader("| h1 |\n")
	var out, errOut bytes.Buffer
	ctx := WithIO(context.Background(), in, &out, &errOut)

	if got := Stdin(ctx); got != in {
		t.Errorf("Stdin = %v, want the injected reader", got)
	}
	if got := Stdout(ctx); got != &out {
		t.Errorf("Stdout = %v, want the injected writer", got)
	}
	if got := Stderr(ctx); got != &errOut {
		t.Errorf("Stderr = %v, want the injected writer", got)
	}
}

func TestWithIONilArgumentsLeaveContextAlone(t *testing.T) {
	ctx := WithIO(context.Background(), nil, nil, nil)
	if Stdin(ctx) != nil || Stdout(ctx) != nil || Stderr(ctx) != nil {
		t.Error("nil streams should not be stored")
	}
}

func TestOrDefaultFallbacks(t *testing.T) {
	ctx := context.Background()
	defIn := strings.NewReader("")
	var defOut, defErr bytes.Buffer

	if got := StdinOrDefault(ctx, defIn); got != defIn {
		t.Error("StdinOrDefault should fall back to the default")
	}
	if got := StdoutOrDefault(ctx, &defOut); got != &defOut {
		t.Error("StdoutOrDefault should fall back to the default")
	}
	if got := StderrOrDefault(ctx, &defErr); got != &defErr {
		t.Error("StderrOrDefault should fall back to the default")
	}

	var out bytes.Buffer
	ctx = WithIO(ctx, nil, &out, nil)
	if got := StdoutOrDefault(ctx, &defOut); got != &out {
		t.Error("StdoutOrDefault should prefer the injected writer")
	}
}

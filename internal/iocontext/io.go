// Package iocontext carries the process streams through context so commands
// and tests can swap stdin, stdout, and stderr without touching globals.
package iocontext

import (
	"context"
	"io"
)

type ctxKey int

const (
	stdinKey ctxKey = iota
	stdoutKey
	stderrKey
)

// WithIO injects the three standard streams into ctx. Any argument may be
// nil; the accessors fall back to their defaults.
func WithIO(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) context.Context {
	if stdin != nil {
		ctx = context.WithValue(ctx, stdinKey, stdin)
	}
	if stdout != nil {
		ctx = context.WithValue(ctx, stdoutKey, stdout)
	}
	if stderr != nil {
		ctx = context.WithValue(ctx, stderrKey, stderr)
	}
	return ctx
}

// Stdin returns the stdin reader from ctx, or nil if not set.
func Stdin(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(stdinKey).(io.Reader); ok {
		return r
	}
	return nil
}

// Stdout returns the stdout writer from ctx, or nil if not set.
func Stdout(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(stdoutKey).(io.Writer); ok {
		return w
	}
	return nil
}

// Stderr returns the stderr writer from ctx, or nil if not set.
func Stderr(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(stderrKey).(io.Writer); ok {
		return w
	}
	return nil
}

// StdinOrDefault returns stdin from ctx or the provided default.
func StdinOrDefault(ctx context.Context, def io.Reader) io.Reader {
	if r := Stdin(ctx); r != nil {
		return r
	}
	return def
}

// StdoutOrDefault returns stdout from ctx or the provided default.
func StdoutOrDefault(ctx context.Context, def io.Writer) io.Writer {
	if w := Stdout(ctx); w != nil {
		return w
	}
	return def
}

// StderrOrDefault returns stderr from ctx or the provided default.
func StderrOrDefault(ctx context.Context, def io.Writer) io.Writer {
	if w := Stderr(ctx); w != nil {
		return w
	}
	return def
}

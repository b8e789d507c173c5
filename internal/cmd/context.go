package cmd

import (
	"context"
	"io"
	"os"

	"github.com/salmonumbrella/ftb/internal/iocontext"
)

type ctxKey int

const errorFormatKey ctxKey = iota

// withErrorFormat records the effective --error-format value in ctx.
func withErrorFormat(ctx context.Context, format string) context.Context {
	return context.WithValue(ctx, errorFormatKey, format)
}

func errorFormatFromContext(ctx context.Context) string {
	if format, ok := ctx.Value(errorFormatKey).(string); ok {
		return format
	}
	return ""
}

func stdinFromContext(ctx context.Context) io.Reader {
	return iocontext.StdinOrDefault(ctx, os.Stdin)
}

func stdoutFromContext(ctx context.Context) io.Writer {
	return iocontext.StdoutOrDefault(ctx, os.Stdout)
}

func stderrFromContext(ctx context.Context) io.Writer {
	return iocontext.StderrOrDefault(ctx, os.Stderr)
}

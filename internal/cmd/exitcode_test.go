package cmd

import (
	"context"
	"errors"
	"fmt"
	"testing"

	clierrors "github.com/salmonumbrella/ftb/internal/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitOK},
		{name: "canceled", err: context.Canceled, want: ExitCanceled},
		{name: "wrapped canceled", err: fmt.Errorf("run: %w", context.Canceled), want: ExitCanceled},
		{name: "check failure", err: &clierrors.CheckError{Source: "doc.md"}, want: ExitCheck},
		{name: "user error", err: clierrors.NewUserError("file not found", ""), want: ExitUser},
		{name: "validation error", err: &clierrors.ValidationError{Field: "--color", Message: "bad"}, want: ExitUser},
		{name: "encoding error", err: &clierrors.EncodingError{Source: "stdin"}, want: ExitUser},
		{name: "plain error", err: errors.New("boom"), want: ExitSystem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

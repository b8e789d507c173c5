package cmd

import (
	"context"
	"errors"

	clierrors "github.com/salmonumbrella/ftb/internal/errors"
)

const (
	ExitOK       = 0
	ExitSystem   = 1
	ExitUser     = 2
	ExitCheck    = 3
	ExitCanceled = 130
)

// ExitCode maps a command error to a stable process exit code for automation.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	if clierrors.IsCheckError(err) {
		return ExitCheck
	}
	if clierrors.IsValidationError(err) || clierrors.IsUserError(err) || clierrors.IsEncodingError(err) {
		return ExitUser
	}
	return ExitSystem
}

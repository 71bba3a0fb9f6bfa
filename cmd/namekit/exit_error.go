// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/namekit/namekit/pkg/names"
	"github.com/namekit/namekit/pkg/types"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCodeFor maps a contract violation to its exit code. A service failure
// wins over the cause it wraps.
func exitCodeFor(err error) types.ExitCode {
	switch {
	case err == nil:
		return types.ExitSuccess
	case errors.Is(err, names.ErrServiceFailure):
		return types.ExitServiceFailure
	case errors.Is(err, names.ErrInvariant):
		return types.ExitInvariant
	case errors.Is(err, names.ErrPostcondition):
		return types.ExitPostcondition
	case errors.Is(err, names.ErrPrecondition):
		return types.ExitPrecondition
	default:
		return types.ExitFailure
	}
}

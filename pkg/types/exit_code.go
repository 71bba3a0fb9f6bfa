// SPDX-License-Identifier: MPL-2.0

// Package types defines cross-cutting value types shared by the names,
// filetree, and config packages. Each type validates itself and reports
// failures through a typed error that wraps a package-level sentinel.
//
// This package is a leaf dependency: it imports only the standard library.
package types

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// ExitSuccess means the command completed normally.
	ExitSuccess ExitCode = 0
	// ExitFailure is the generic failure status.
	ExitFailure ExitCode = 1
	// ExitPrecondition reports that the caller supplied invalid input.
	ExitPrecondition ExitCode = 2
	// ExitPostcondition reports that an operation broke its own guarantee.
	ExitPostcondition ExitCode = 3
	// ExitInvariant reports corrupted name state.
	ExitInvariant ExitCode = 4
	// ExitServiceFailure reports a higher-level operation that failed on a
	// wrapped lower-level cause.
	ExitServiceFailure ExitCode = 5
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode represents a process exit status code.
	// Exit codes are in the range 0-255 on POSIX systems.
	// The zero value (0) means success.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside the
	// valid range (0-255).
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error if the ExitCode is outside the valid range (0-255).
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// IsContractViolation returns true for the codes reserved for name contract
// failures (precondition, postcondition, invariant).
func (c ExitCode) IsContractViolation() bool {
	return c >= ExitPrecondition && c <= ExitInvariant
}

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }

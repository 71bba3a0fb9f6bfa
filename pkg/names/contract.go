// SPDX-License-Identifier: MPL-2.0

package names

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition is wrapped by PreconditionError: the caller supplied an
	// invalid argument.
	ErrPrecondition = errors.New("precondition violated")
	// ErrPostcondition is wrapped by PostconditionError: an operation's result
	// failed its own guarantee.
	ErrPostcondition = errors.New("postcondition violated")
	// ErrInvariant is wrapped by InvariantError: a name's state failed a
	// structural property that must hold at rest.
	ErrInvariant = errors.New("class invariant violated")
	// ErrServiceFailure is matched by ServiceFailureError: a higher-level
	// operation failed because of a lower-level cause.
	ErrServiceFailure = errors.New("service failure")
)

type (
	// PreconditionError reports invalid caller input, detected before any
	// state is touched. Cause carries the underlying validation error, if any.
	PreconditionError struct {
		Op     string
		Reason string
		Cause  error
	}

	// PostconditionError reports an operation whose result does not satisfy
	// its promise. It signals a defect in this package, not a caller error.
	PostconditionError struct {
		Op     string
		Reason string
	}

	// InvariantError reports a name (or node) whose persisted state is
	// structurally inconsistent.
	InvariantError struct {
		Op     string
		Reason string
	}

	// ServiceFailureError wraps the failure that made a composite operation
	// abort. errors.Is matches both ErrServiceFailure and anything in the
	// wrapped chain.
	ServiceFailureError struct {
		Op    string
		Cause error
	}
)

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: precondition violated: %s: %v", e.Op, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: precondition violated: %s", e.Op, e.Reason)
}

// Unwrap returns ErrPrecondition and, when present, the underlying cause.
func (e *PreconditionError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrPrecondition, e.Cause}
	}
	return []error{ErrPrecondition}
}

// Error implements the error interface.
func (e *PostconditionError) Error() string {
	return fmt.Sprintf("%s: postcondition violated: %s", e.Op, e.Reason)
}

// Unwrap returns ErrPostcondition for errors.Is() compatibility.
func (e *PostconditionError) Unwrap() error { return ErrPostcondition }

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: class invariant violated: %s", e.Op, e.Reason)
}

// Unwrap returns ErrInvariant for errors.Is() compatibility.
func (e *InvariantError) Unwrap() error { return ErrInvariant }

// NewServiceFailure wraps cause as the reason op failed. It returns nil when
// cause is nil.
func NewServiceFailure(op string, cause error) *ServiceFailureError {
	if cause == nil {
		return nil
	}
	return &ServiceFailureError{Op: op, Cause: cause}
}

// Error implements the error interface.
func (e *ServiceFailureError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Cause)
}

// Unwrap returns the originating failure.
func (e *ServiceFailureError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrServiceFailure.
func (e *ServiceFailureError) Is(target error) bool { return target == ErrServiceFailure }

func require(ok bool, op, format string, args ...any) error {
	if ok {
		return nil
	}
	return &PreconditionError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

func ensure(ok bool, op, format string, args ...any) error {
	if ok {
		return nil
	}
	return &PostconditionError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// requireIndex checks 0 <= i < limit.
func requireIndex(op string, i, limit int) error {
	return require(i >= 0 && i < limit, op, "index %d out of range [0, %d)", i, limit)
}

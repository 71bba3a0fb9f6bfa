// SPDX-License-Identifier: MPL-2.0

package names

import (
	"errors"
	"strings"
	"testing"

	"github.com/namekit/namekit/pkg/types"
)

func TestContractErrors_Sentinels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
		others   []error
	}{
		{"precondition", &PreconditionError{Op: "Component", Reason: "bad index"}, ErrPrecondition, []error{ErrPostcondition, ErrInvariant}},
		{"postcondition", &PostconditionError{Op: "Append", Reason: "count"}, ErrPostcondition, []error{ErrPrecondition, ErrInvariant}},
		{"invariant", &InvariantError{Op: "Validate", Reason: "count"}, ErrInvariant, []error{ErrPrecondition, ErrPostcondition}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("%T should wrap %v", tt.err, tt.sentinel)
			}
			for _, other := range tt.others {
				if errors.Is(tt.err, other) {
					t.Errorf("%T must not match %v", tt.err, other)
				}
			}
		})
	}
}

func TestPreconditionError_Cause(t *testing.T) {
	t.Parallel()

	cause := &types.InvalidDelimiterCharError{Value: "--"}
	err := error(&PreconditionError{Op: "New", Reason: "delimiter", Cause: cause})

	if !errors.Is(err, ErrPrecondition) {
		t.Error("should match ErrPrecondition")
	}
	if !errors.Is(err, types.ErrInvalidDelimiterChar) {
		t.Error("should match the cause's sentinel")
	}
	if !strings.Contains(err.Error(), "--") {
		t.Errorf("message should mention the cause, got %q", err.Error())
	}
}

func TestServiceFailureError_Chaining(t *testing.T) {
	t.Parallel()

	cause := &InvariantError{Op: "find nodes", Reason: "empty base name"}
	err := error(NewServiceFailure("FindNodes", cause))

	if !errors.Is(err, ErrServiceFailure) {
		t.Error("should match ErrServiceFailure")
	}
	if !errors.Is(err, ErrInvariant) {
		t.Error("should preserve the originating invariant failure")
	}
	var invErr *InvariantError
	if !errors.As(err, &invErr) || invErr != cause {
		t.Errorf("errors.As should find the original cause, got %v", invErr)
	}
	if !strings.HasPrefix(err.Error(), "FindNodes failed: ") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestNewServiceFailure_NilCause(t *testing.T) {
	t.Parallel()

	if err := NewServiceFailure("op", nil); err != nil {
		t.Errorf("NewServiceFailure(nil) = %v, want nil", err)
	}
}

// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{"operation only", &ActionableError{Operation: "parse name"}, "failed to parse name"},
		{"operation with resource", &ActionableError{Operation: "load tree", Resource: "./tree.cue"}, "failed to load tree: ./tree.cue"},
		{"operation with cause", &ActionableError{Operation: "parse name", Cause: errors.New("bad escape")}, "failed to parse name: bad escape"},
		{
			"full context",
			&ActionableError{Operation: "load tree", Resource: "./tree.cue", Cause: errors.New("file not found")},
			"failed to load tree: ./tree.cue: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	err := WrapWithContext(fmt.Errorf("context: %w", sentinel), "edit name", "a.b")
	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should find the sentinel through the chain")
	}
	if WrapWithContext(nil, "edit name", "") != nil {
		t.Error("WrapWithContext(nil) should return nil")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	err := &ActionableError{
		Operation:   "load tree",
		Resource:    "tree.cue",
		Suggestions: []string{"Check the file", "Run with --verbose"},
		Cause:       fmt.Errorf("outer: %w", errors.New("inner")),
	}

	short := err.Format(false)
	if !strings.Contains(short, "  • Check the file") || !strings.Contains(short, "  • Run with --verbose") {
		t.Errorf("Format(false) missing suggestions:\n%s", short)
	}
	if strings.Contains(short, "Error chain") {
		t.Error("Format(false) should not include the error chain")
	}

	long := err.Format(true)
	for _, want := range []string{"Error chain:", "1. outer: inner", "2. inner"} {
		if !strings.Contains(long, want) {
			t.Errorf("Format(true) missing %q:\n%s", want, long)
		}
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	ae := NewErrorContext().
		WithOperation("hash name").
		WithResource("a.b").
		WithSuggestion("one").
		WithSuggestions("two", "three").
		WithIssue(PreconditionViolatedId).
		Wrap(cause).
		Build()

	if ae.Operation != "hash name" || ae.Resource != "a.b" || ae.Cause != cause || ae.Issue != PreconditionViolatedId {
		t.Errorf("Build() = %+v", ae)
	}
	if len(ae.Suggestions) != 3 || !ae.HasSuggestions() {
		t.Errorf("Suggestions = %v", ae.Suggestions)
	}
}

func TestErrorContext_MissingOperation(t *testing.T) {
	t.Parallel()

	ctx := NewErrorContext().WithResource("x")
	if ctx.Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if err := ctx.BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want untyped nil", err)
	}
}

func TestErrorContext_Reuse(t *testing.T) {
	t.Parallel()

	ctx := NewErrorContext().WithOperation("edit name").WithSuggestion("first")
	first := ctx.Build()
	ctx.WithSuggestion("second")
	second := ctx.Build()

	if len(first.Suggestions) != 1 {
		t.Errorf("earlier build changed: %v", first.Suggestions)
	}
	if len(second.Suggestions) != 2 {
		t.Errorf("second build = %v", second.Suggestions)
	}
}

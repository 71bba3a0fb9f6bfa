// SPDX-License-Identifier: MPL-2.0

package names

import (
	"errors"
	"fmt"

	"github.com/namekit/namekit/pkg/types"
)

const (
	// VariantArray selects StringArrayName.
	VariantArray Variant = "array"
	// VariantString selects StringName.
	VariantString Variant = "string"
)

// ErrInvalidVariant is the sentinel error wrapped by InvalidVariantError.
var ErrInvalidVariant = errors.New("invalid name variant")

type (
	// Variant names one of the concrete Name representations.
	Variant string

	// InvalidVariantError is returned when a Variant is not recognized.
	InvalidVariantError struct {
		Value Variant
	}

	// Option configures name construction.
	Option func(*options)

	options struct {
		delimiter types.DelimiterChar
	}
)

// String returns the string representation of the Variant.
func (v Variant) String() string { return string(v) }

// Validate returns nil if v is VariantArray or VariantString.
func (v Variant) Validate() error {
	switch v {
	case VariantArray, VariantString:
		return nil
	default:
		return &InvalidVariantError{Value: v}
	}
}

// Error implements the error interface.
func (e *InvalidVariantError) Error() string {
	return fmt.Sprintf("invalid name variant %q (valid: %s, %s)", e.Value, VariantArray, VariantString)
}

// Unwrap returns ErrInvalidVariant for errors.Is() compatibility.
func (e *InvalidVariantError) Unwrap() error { return ErrInvalidVariant }

// WithDelimiter sets the display delimiter. It must be exactly one character
// and must not be the escape character.
func WithDelimiter(d string) Option {
	return func(o *options) {
		o.delimiter = types.DelimiterChar(d)
	}
}

// resolveDelimiter applies opts and checks the resulting delimiter.
func resolveDelimiter(op string, opts []Option) (rune, error) {
	o := options{delimiter: types.DelimiterChar(string(DefaultDelimiter))}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.delimiter.Validate(); err != nil {
		return 0, &PreconditionError{Op: op, Reason: "delimiter must be a single character", Cause: err}
	}
	d := o.delimiter.Rune()
	if err := require(d != EscapeCharacter, op, "delimiter must differ from the escape character %q", EscapeCharacter); err != nil {
		return 0, err
	}
	return d, nil
}

// New constructs a name of the given variant from components. Components are
// taken verbatim; for VariantString each one must already be masked for the
// delimiter.
func New(variant Variant, components []string, opts ...Option) (Name, error) {
	if err := variant.Validate(); err != nil {
		return nil, &PreconditionError{Op: "New", Reason: "unknown variant", Cause: err}
	}
	if variant == VariantArray {
		return NewStringArrayName(components, opts...)
	}
	d, err := resolveDelimiter("New", opts)
	if err != nil {
		return nil, err
	}
	packed, err := pack("New", components, d)
	if err != nil {
		return nil, err
	}
	return NewStringName(packed, opts...)
}

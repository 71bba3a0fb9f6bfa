// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidDelimiterChar is the sentinel error wrapped by InvalidDelimiterCharError.
var ErrInvalidDelimiterChar = errors.New("invalid delimiter character")

type (
	// DelimiterChar is the separator placed between name components when a
	// name is displayed. A valid delimiter is exactly one character (one
	// Unicode code point). The zero value ("") is invalid.
	DelimiterChar string

	// InvalidDelimiterCharError is returned when a DelimiterChar is empty or
	// longer than one character.
	InvalidDelimiterCharError struct {
		Value DelimiterChar
	}
)

// String returns the string representation of the DelimiterChar.
func (d DelimiterChar) String() string { return string(d) }

// Validate returns nil if the DelimiterChar holds exactly one valid character.
func (d DelimiterChar) Validate() error {
	if !utf8.ValidString(string(d)) || utf8.RuneCountInString(string(d)) != 1 {
		return &InvalidDelimiterCharError{Value: d}
	}
	return nil
}

// Rune returns the delimiter as a rune. The result is only meaningful for a
// valid DelimiterChar; invalid values yield utf8.RuneError.
func (d DelimiterChar) Rune() rune {
	if d.Validate() != nil {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(string(d))
	return r
}

// Error implements the error interface for InvalidDelimiterCharError.
func (e *InvalidDelimiterCharError) Error() string {
	return fmt.Sprintf("invalid delimiter %q: must be exactly one character (got %d)",
		string(e.Value), utf8.RuneCountInString(string(e.Value)))
}

// Unwrap returns ErrInvalidDelimiterChar for errors.Is() compatibility.
func (e *InvalidDelimiterCharError) Unwrap() error { return ErrInvalidDelimiterChar }

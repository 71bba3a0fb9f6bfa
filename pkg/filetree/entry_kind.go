// SPDX-License-Identifier: MPL-2.0

package filetree

import (
	"errors"
	"fmt"
)

const (
	// EntryDirectory describes a Directory.
	EntryDirectory EntryKind = "directory"
	// EntryFile describes a File.
	EntryFile EntryKind = "file"
	// EntryLink describes a Link.
	EntryLink EntryKind = "link"
)

// ErrInvalidEntryKind is the sentinel error wrapped by InvalidEntryKindError.
var ErrInvalidEntryKind = errors.New("invalid entry kind")

type (
	// EntryKind selects the node type an Entry produces.
	EntryKind string

	// InvalidEntryKindError is returned when an EntryKind is not recognized.
	InvalidEntryKindError struct {
		Value EntryKind
	}
)

// String returns the string representation of the EntryKind.
func (k EntryKind) String() string { return string(k) }

// Validate returns nil if k is one of the known kinds.
func (k EntryKind) Validate() error {
	switch k {
	case EntryDirectory, EntryFile, EntryLink:
		return nil
	default:
		return &InvalidEntryKindError{Value: k}
	}
}

// Error implements the error interface.
func (e *InvalidEntryKindError) Error() string {
	return fmt.Sprintf("invalid entry kind %q (valid: %s, %s, %s)", e.Value, EntryDirectory, EntryFile, EntryLink)
}

// Unwrap returns ErrInvalidEntryKind for errors.Is() compatibility.
func (e *InvalidEntryKindError) Unwrap() error { return ErrInvalidEntryKind }

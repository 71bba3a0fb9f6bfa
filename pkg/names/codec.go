// SPDX-License-Identifier: MPL-2.0

package names

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultDelimiter separates components in the data string and is the
	// delimiter a name uses when none is configured.
	DefaultDelimiter = '.'
	// EscapeCharacter masks a delimiter or another escape character inside a
	// component.
	EscapeCharacter = '\\'
)

// ErrMalformedEscape is returned when a data string ends in an escape
// character that does not introduce an escape sequence.
var ErrMalformedEscape = errors.New("malformed escape sequence")

// EscapeComponent returns the machine-readable form of one component: every
// escape character is doubled and every default delimiter is masked.
func EscapeComponent(c string) string {
	return MaskComponent(c, DefaultDelimiter)
}

// MaskComponent doubles every escape character in c and masks every
// occurrence of delimiter with one escape character.
func MaskComponent(c string, delimiter rune) string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, r := range c {
		if r == EscapeCharacter || r == delimiter {
			sb.WriteRune(EscapeCharacter)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// UnescapeComponent removes one level of masking from c: each escape
// character is dropped and the character following it is kept literally.
func UnescapeComponent(c string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(c))
	escaped := false
	for _, r := range c {
		if !escaped && r == EscapeCharacter {
			escaped = true
			continue
		}
		escaped = false
		sb.WriteRune(r)
	}
	if escaped {
		return "", fmt.Errorf("%w: trailing %q in %q", ErrMalformedEscape, EscapeCharacter, c)
	}
	return sb.String(), nil
}

// JoinDisplay joins components with delimiter without masking anything.
func JoinDisplay(components []string, delimiter rune) string {
	return strings.Join(components, string(delimiter))
}

// JoinData returns the data string for components: each component is escaped
// and the results are joined with DefaultDelimiter.
func JoinData(components []string) string {
	escaped := make([]string, len(components))
	for i, c := range components {
		escaped[i] = EscapeComponent(c)
	}
	return strings.Join(escaped, string(DefaultDelimiter))
}

// SplitMasked splits s on every delimiter that is not masked by an escape
// character. Escape sequences are kept verbatim in the returned components.
// The empty string has zero components.
func SplitMasked(s string, delimiter rune) []string {
	if s == "" {
		return nil
	}
	var (
		parts   []string
		current strings.Builder
		escaped bool
	)
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
			current.WriteRune(r)
		case r == EscapeCharacter:
			escaped = true
			current.WriteRune(r)
		case r == delimiter:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	return append(parts, current.String())
}

// IsMasked reports whether c can stand as a single component of a packed
// string using delimiter: it holds no unmasked delimiter and does not end in
// an escape character that would swallow the next delimiter.
func IsMasked(c string, delimiter rune) bool {
	return len(SplitMasked(c, delimiter)) <= 1 && !endsInEscape(c)
}

// endsInEscape reports whether s ends in an escape character that masks
// nothing.
func endsInEscape(s string) bool {
	escaped := false
	for _, r := range s {
		if escaped {
			escaped = false
			continue
		}
		escaped = r == EscapeCharacter
	}
	return escaped
}

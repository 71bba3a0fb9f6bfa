// SPDX-License-Identifier: MPL-2.0

package names

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// StringName packs its components into one string separated by the
// delimiter. Component operations split the packed string, work on the
// parts, and join them back into a new StringName.
//
// The empty string holds zero components, so a StringName cannot represent a
// single empty component. Splitting honors masking: a delimiter preceded by
// the escape character belongs to its component, and escape sequences are
// kept verbatim (components are never unescaped on the way in or out).
type StringName struct {
	delimiter    rune
	name         string
	noComponents int
}

var _ Name = (*StringName)(nil)

// NewStringName creates a name from a packed, pre-masked source string.
func NewStringName(source string, opts ...Option) (*StringName, error) {
	const op = "NewStringName"
	d, err := resolveDelimiter(op, opts)
	if err != nil {
		return nil, err
	}
	if err := require(utf8.ValidString(source), op, "source %q is not valid UTF-8 text", source); err != nil {
		return nil, err
	}
	if err := require(!endsInEscape(source), op, "source %q ends in an unpaired escape character", source); err != nil {
		return nil, err
	}
	return newPacked(op, d, source)
}

func newPacked(op string, delimiter rune, packed string) (*StringName, error) {
	n := &StringName{
		delimiter:    delimiter,
		name:         packed,
		noComponents: len(SplitMasked(packed, delimiter)),
	}
	if err := n.check(op); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *StringName) invariant() string {
	if n.delimiter == 0 || n.delimiter == EscapeCharacter || !utf8.ValidRune(n.delimiter) {
		return "delimiter is not a single valid character"
	}
	if !utf8.ValidString(n.name) {
		return "packed name is not valid UTF-8 text"
	}
	if endsInEscape(n.name) {
		return "packed name ends in an unpaired escape character"
	}
	if recount := len(SplitMasked(n.name, n.delimiter)); n.noComponents != recount {
		return fmt.Sprintf("cached component count %d does not match recount %d", n.noComponents, recount)
	}
	return ""
}

func (n *StringName) check(op string) error {
	if reason := n.invariant(); reason != "" {
		return &InvariantError{Op: op, Reason: reason}
	}
	return nil
}

func (n *StringName) parts() []string {
	return SplitMasked(n.name, n.delimiter)
}

// Delimiter returns the display delimiter.
func (n *StringName) Delimiter() rune { return n.delimiter }

// Validate checks the class invariant.
func (n *StringName) Validate() error { return n.check("Validate") }

// String returns the data string.
func (n *StringName) String() string {
	s, err := n.AsDataString()
	if err != nil {
		return invalidString(err)
	}
	return s
}

// NoComponents returns the cached component count.
func (n *StringName) NoComponents() (int, error) {
	const op = "NoComponents"
	if err := n.check(op); err != nil {
		return 0, err
	}
	result := n.noComponents
	if err := ensure(result >= 0, op, "negative component count %d", result); err != nil {
		return 0, err
	}
	return settle(n.check, op, result)
}

// IsEmpty reports whether the name has no components.
func (n *StringName) IsEmpty() (bool, error) {
	count, err := n.NoComponents()
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// Component returns the component at i, masking included.
func (n *StringName) Component(i int) (string, error) {
	const op = "Component"
	if err := n.check(op); err != nil {
		return "", err
	}
	if err := requireIndex(op, i, n.noComponents); err != nil {
		return "", err
	}

	result := n.parts()[i]

	if err := ensure(IsMasked(result, n.delimiter), op, "component %d (%q) is not masked", i, result); err != nil {
		return "", err
	}
	return settle(n.check, op, result)
}

// SetComponent returns a copy with the component at i replaced by c, which
// must be masked for the delimiter.
func (n *StringName) SetComponent(i int, c string) (Name, error) {
	const op = "SetComponent"
	if err := n.check(op); err != nil {
		return nil, err
	}
	if err := requireIndex(op, i, n.noComponents); err != nil {
		return nil, err
	}

	parts := n.parts()
	parts[i] = c
	result, err := n.repack(op, parts)
	if err != nil {
		return nil, err
	}

	if err := ensure(result.noComponents == n.noComponents && result.parts()[i] == c,
		op, "component %d was not replaced", i); err != nil {
		return nil, err
	}
	return settle[Name](n.check, op, result)
}

// Insert returns a copy with c inserted before position i.
func (n *StringName) Insert(i int, c string) (Name, error) {
	const op = "Insert"
	if err := n.check(op); err != nil {
		return nil, err
	}
	if err := requireIndex(op, i, n.noComponents+1); err != nil {
		return nil, err
	}

	result, err := n.repack(op, slices.Insert(n.parts(), i, c))
	if err != nil {
		return nil, err
	}

	if err := ensure(result.noComponents == n.noComponents+1 && result.parts()[i] == c,
		op, "component count did not grow by one"); err != nil {
		return nil, err
	}
	return settle[Name](n.check, op, result)
}

// Append returns a copy with c added as the last component. On an empty
// name the result is exactly c, with no leading delimiter.
func (n *StringName) Append(c string) (Name, error) {
	const op = "Append"
	if err := n.check(op); err != nil {
		return nil, err
	}
	if err := requireText(op, c); err != nil {
		return nil, err
	}
	if err := require(IsMasked(c, n.delimiter), op, "component %q is not masked for delimiter %q", c, n.delimiter); err != nil {
		return nil, err
	}

	packed := c
	if n.name != "" {
		packed = n.name + string(n.delimiter) + c
	} else if err := require(c != "", op, "a single empty component cannot be represented in a packed string"); err != nil {
		return nil, err
	}
	result, err := newPacked(op, n.delimiter, packed)
	if err != nil {
		return nil, err
	}

	if err := ensure(result.noComponents == n.noComponents+1,
		op, "component count did not grow by one"); err != nil {
		return nil, err
	}
	return settle[Name](n.check, op, result)
}

// Remove returns a copy without the component at i.
func (n *StringName) Remove(i int) (Name, error) {
	const op = "Remove"
	if err := n.check(op); err != nil {
		return nil, err
	}
	if err := requireIndex(op, i, n.noComponents); err != nil {
		return nil, err
	}

	result, err := n.repack(op, slices.Delete(n.parts(), i, i+1))
	if err != nil {
		return nil, err
	}

	if err := ensure(result.noComponents == n.noComponents-1,
		op, "component count did not shrink by one"); err != nil {
		return nil, err
	}
	return settle[Name](n.check, op, result)
}

func (n *StringName) repack(op string, parts []string) (*StringName, error) {
	packed, err := pack(op, parts, n.delimiter)
	if err != nil {
		return nil, err
	}
	return newPacked(op, n.delimiter, packed)
}

// Concat returns a copy with every component of other appended. Components
// coming from other must be masked for this name's delimiter.
func (n *StringName) Concat(other Name) (Name, error) {
	if err := n.check("Concat"); err != nil {
		return nil, err
	}
	result, err := concatNames(n, other)
	if err != nil {
		return nil, err
	}
	return settle(n.check, "Concat", result)
}

// Clone returns an independent copy.
func (n *StringName) Clone() (Name, error) {
	const op = "Clone"
	if err := n.check(op); err != nil {
		return nil, err
	}
	clone, err := newPacked(op, n.delimiter, n.name)
	if err != nil {
		return nil, err
	}

	if err := ensure(clone != n, op, "clone must be a new instance"); err != nil {
		return nil, err
	}
	if err := ensure(clone.noComponents == n.noComponents, op, "clone must copy every component"); err != nil {
		return nil, err
	}
	if err := ensureSameHash(op, n, clone); err != nil {
		return nil, err
	}
	return settle[Name](n.check, op, clone)
}

// AsString joins the components with the instance delimiter.
func (n *StringName) AsString() (string, error) {
	return n.asString("AsString", n.delimiter)
}

// AsStringWith joins the components with delimiter.
func (n *StringName) AsStringWith(delimiter string) (string, error) {
	const op = "AsStringWith"
	if err := n.check(op); err != nil {
		return "", err
	}
	d, err := displayDelimiter(op, delimiter)
	if err != nil {
		return "", err
	}
	return n.asString(op, d)
}

func (n *StringName) asString(op string, d rune) (string, error) {
	if err := n.check(op); err != nil {
		return "", err
	}
	result := JoinDisplay(n.parts(), d)
	return settle(n.check, op, result)
}

// AsDataString returns the machine-readable form. Escape characters already
// present in components are doubled like any other.
func (n *StringName) AsDataString() (string, error) {
	const op = "AsDataString"
	if err := n.check(op); err != nil {
		return "", err
	}
	result := JoinData(n.parts())
	return settle(n.check, op, result)
}

// HashCode fingerprints the data string and the delimiter.
func (n *StringName) HashCode() (uint32, error) {
	data, err := n.AsDataString()
	if err != nil {
		return 0, err
	}
	return HashOf(data, n.delimiter), nil
}

// IsEqual compares hash codes. See Name.IsEqual for the collision caveat.
func (n *StringName) IsEqual(other Name) (bool, error) {
	if err := n.check("IsEqual"); err != nil {
		return false, err
	}
	return equalNames(n, other)
}

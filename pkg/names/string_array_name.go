// SPDX-License-Identifier: MPL-2.0

package names

import (
	"slices"
	"unicode/utf8"
)

// StringArrayName stores its components as an explicit slice. The slice is
// copied on construction and never modified afterwards.
//
// Unlike StringName, a StringArrayName can hold a single empty component.
type StringArrayName struct {
	delimiter  rune
	components []string
}

var _ Name = (*StringArrayName)(nil)

// NewStringArrayName creates a name from raw components. The slice is copied.
func NewStringArrayName(components []string, opts ...Option) (*StringArrayName, error) {
	const op = "NewStringArrayName"
	d, err := resolveDelimiter(op, opts)
	if err != nil {
		return nil, err
	}
	for _, c := range components {
		if err := requireText(op, c); err != nil {
			return nil, err
		}
	}
	return newArray(op, d, slices.Clone(components))
}

// newArray adopts components without copying; callers hand over ownership.
func newArray(op string, delimiter rune, components []string) (*StringArrayName, error) {
	n := &StringArrayName{delimiter: delimiter, components: components}
	if err := n.check(op); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *StringArrayName) invariant() string {
	if n.delimiter == 0 || n.delimiter == EscapeCharacter || !utf8.ValidRune(n.delimiter) {
		return "delimiter is not a single valid character"
	}
	for _, c := range n.components {
		if !utf8.ValidString(c) {
			return "component is not valid UTF-8 text"
		}
	}
	return ""
}

func (n *StringArrayName) check(op string) error {
	if reason := n.invariant(); reason != "" {
		return &InvariantError{Op: op, Reason: reason}
	}
	return nil
}

// Delimiter returns the display delimiter.
func (n *StringArrayName) Delimiter() rune { return n.delimiter }

// Validate checks the class invariant.
func (n *StringArrayName) Validate() error { return n.check("Validate") }

// String returns the data string.
func (n *StringArrayName) String() string {
	s, err := n.AsDataString()
	if err != nil {
		return invalidString(err)
	}
	return s
}

// NoComponents returns the number of components.
func (n *StringArrayName) NoComponents() (int, error) {
	const op = "NoComponents"
	if err := n.check(op); err != nil {
		return 0, err
	}
	result := len(n.components)
	if err := n.check(op); err != nil {
		return 0, err
	}
	return result, nil
}

// IsEmpty reports whether the name has no components.
func (n *StringArrayName) IsEmpty() (bool, error) {
	count, err := n.NoComponents()
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// Component returns the component at i.
func (n *StringArrayName) Component(i int) (string, error) {
	const op = "Component"
	if err := n.check(op); err != nil {
		return "", err
	}
	if err := requireIndex(op, i, len(n.components)); err != nil {
		return "", err
	}
	result := n.components[i]
	if err := n.check(op); err != nil {
		return "", err
	}
	return result, nil
}

// SetComponent returns a copy with the component at i replaced by c.
func (n *StringArrayName) SetComponent(i int, c string) (Name, error) {
	const op = "SetComponent"
	if err := n.check(op); err != nil {
		return nil, err
	}
	if err := requireIndex(op, i, len(n.components)); err != nil {
		return nil, err
	}
	if err := requireText(op, c); err != nil {
		return nil, err
	}

	next := slices.Clone(n.components)
	next[i] = c
	result, err := newArray(op, n.delimiter, next)
	if err != nil {
		return nil, err
	}

	if err := ensure(len(result.components) == len(n.components) && result.components[i] == c,
		op, "component %d was not replaced", i); err != nil {
		return nil, err
	}
	return settle[Name](n.check, op, result)
}

// Insert returns a copy with c inserted before position i.
func (n *StringArrayName) Insert(i int, c string) (Name, error) {
	const op = "Insert"
	if err := n.check(op); err != nil {
		return nil, err
	}
	if err := requireIndex(op, i, len(n.components)+1); err != nil {
		return nil, err
	}
	if err := requireText(op, c); err != nil {
		return nil, err
	}

	result, err := newArray(op, n.delimiter, slices.Insert(slices.Clone(n.components), i, c))
	if err != nil {
		return nil, err
	}

	if err := ensure(len(result.components) == len(n.components)+1 && result.components[i] == c,
		op, "component count did not grow by one"); err != nil {
		return nil, err
	}
	return settle[Name](n.check, op, result)
}

// Append returns a copy with c added as the last component.
func (n *StringArrayName) Append(c string) (Name, error) {
	const op = "Append"
	if err := n.check(op); err != nil {
		return nil, err
	}
	if err := requireText(op, c); err != nil {
		return nil, err
	}

	next := make([]string, len(n.components), len(n.components)+1)
	copy(next, n.components)
	result, err := newArray(op, n.delimiter, append(next, c))
	if err != nil {
		return nil, err
	}

	if err := ensure(len(result.components) == len(n.components)+1,
		op, "component count did not grow by one"); err != nil {
		return nil, err
	}
	return settle[Name](n.check, op, result)
}

// Remove returns a copy without the component at i.
func (n *StringArrayName) Remove(i int) (Name, error) {
	const op = "Remove"
	if err := n.check(op); err != nil {
		return nil, err
	}
	if err := requireIndex(op, i, len(n.components)); err != nil {
		return nil, err
	}

	result, err := newArray(op, n.delimiter, slices.Delete(slices.Clone(n.components), i, i+1))
	if err != nil {
		return nil, err
	}

	if err := ensure(len(result.components) == len(n.components)-1,
		op, "component count did not shrink by one"); err != nil {
		return nil, err
	}
	return settle[Name](n.check, op, result)
}

// Concat returns a copy with every component of other appended.
func (n *StringArrayName) Concat(other Name) (Name, error) {
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
func (n *StringArrayName) Clone() (Name, error) {
	const op = "Clone"
	if err := n.check(op); err != nil {
		return nil, err
	}
	clone, err := newArray(op, n.delimiter, slices.Clone(n.components))
	if err != nil {
		return nil, err
	}

	if err := ensure(clone != n, op, "clone must be a new instance"); err != nil {
		return nil, err
	}
	if err := ensure(len(clone.components) == len(n.components), op, "clone must copy every component"); err != nil {
		return nil, err
	}
	if err := ensureSameHash(op, n, clone); err != nil {
		return nil, err
	}
	return settle[Name](n.check, op, clone)
}

// AsString joins the components with the instance delimiter.
func (n *StringArrayName) AsString() (string, error) {
	return n.asString("AsString", n.delimiter)
}

// AsStringWith joins the components with delimiter.
func (n *StringArrayName) AsStringWith(delimiter string) (string, error) {
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

func (n *StringArrayName) asString(op string, d rune) (string, error) {
	if err := n.check(op); err != nil {
		return "", err
	}
	result := JoinDisplay(n.components, d)
	return settle(n.check, op, result)
}

// AsDataString returns the machine-readable form.
func (n *StringArrayName) AsDataString() (string, error) {
	const op = "AsDataString"
	if err := n.check(op); err != nil {
		return "", err
	}
	result := JoinData(n.components)
	return settle(n.check, op, result)
}

// HashCode fingerprints the data string and the delimiter.
func (n *StringArrayName) HashCode() (uint32, error) {
	data, err := n.AsDataString()
	if err != nil {
		return 0, err
	}
	return HashOf(data, n.delimiter), nil
}

// IsEqual compares hash codes. See Name.IsEqual for the collision caveat.
func (n *StringArrayName) IsEqual(other Name) (bool, error) {
	if err := n.check("IsEqual"); err != nil {
		return false, err
	}
	return equalNames(n, other)
}

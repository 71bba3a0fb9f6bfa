// SPDX-License-Identifier: MPL-2.0

package names

import (
	"fmt"
	"unicode/utf8"
)

// Name is the capability set shared by every name representation.
//
// Implementations are immutable: methods that change structure return a new
// Name and leave the receiver as it was. Every method re-validates the class
// invariant on entry and exit.
type Name interface {
	fmt.Stringer

	// Delimiter returns the display delimiter.
	Delimiter() rune
	// Validate checks the class invariant and returns an *InvariantError if
	// it does not hold.
	Validate() error

	// NoComponents returns the number of components.
	NoComponents() (int, error)
	// IsEmpty reports whether the name has no components.
	IsEmpty() (bool, error)
	// Component returns the component at i, 0 <= i < NoComponents().
	Component(i int) (string, error)

	// SetComponent returns a copy with the component at i replaced by c.
	SetComponent(i int, c string) (Name, error)
	// Insert returns a copy with c inserted before position i,
	// 0 <= i <= NoComponents(). Inserting at NoComponents() appends.
	Insert(i int, c string) (Name, error)
	// Append returns a copy with c added as the last component.
	Append(c string) (Name, error)
	// Remove returns a copy without the component at i.
	Remove(i int) (Name, error)
	// Concat returns a copy with every component of other appended.
	Concat(other Name) (Name, error)
	// Clone returns an independent name with the same components and
	// delimiter.
	Clone() (Name, error)

	// AsString joins the components with the instance delimiter. No masking
	// is added or removed.
	AsString() (string, error)
	// AsStringWith is AsString with a caller-chosen one-character delimiter.
	AsStringWith(delimiter string) (string, error)
	// AsDataString returns the machine-readable form. See JoinData.
	AsDataString() (string, error)

	// HashCode fingerprints the data string and the delimiter.
	HashCode() (uint32, error)
	// IsEqual reports whether other has the same hash code. Equality is hash
	// equality: two different names whose fingerprints collide compare equal.
	IsEqual(other Name) (bool, error)
}

// Components returns every component of n in order, read through the
// public contract.
func Components(n Name) ([]string, error) {
	if n == nil {
		return nil, require(false, "Components", "name must not be nil")
	}
	count, err := n.NoComponents()
	if err != nil {
		return nil, err
	}
	result := make([]string, count)
	for i := range count {
		if result[i], err = n.Component(i); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// concatNames appends every component of other to receiver, one Append at a
// time. It relies only on the Name contract and so works across variants.
func concatNames(receiver, other Name) (Name, error) {
	const op = "Concat"
	if err := require(other != nil, op, "other name must not be nil"); err != nil {
		return nil, err
	}
	before, err := receiver.NoComponents()
	if err != nil {
		return nil, err
	}
	extra, err := other.NoComponents()
	if err != nil {
		return nil, err
	}

	result := receiver
	for i := range extra {
		c, err := other.Component(i)
		if err != nil {
			return nil, err
		}
		if result, err = result.Append(c); err != nil {
			return nil, err
		}
	}

	after, err := result.NoComponents()
	if err != nil {
		return nil, err
	}
	if err := ensure(after == before+extra, op, "got %d components, want %d", after, before+extra); err != nil {
		return nil, err
	}
	return result, nil
}

func equalNames(receiver, other Name) (bool, error) {
	if err := require(other != nil, "IsEqual", "other name must not be nil"); err != nil {
		return false, err
	}
	a, err := receiver.HashCode()
	if err != nil {
		return false, err
	}
	b, err := other.HashCode()
	if err != nil {
		return false, err
	}
	return a == b, nil
}

func ensureSameHash(op string, source, clone Name) error {
	a, err := source.HashCode()
	if err != nil {
		return err
	}
	b, err := clone.HashCode()
	if err != nil {
		return err
	}
	return ensure(a == b, op, "hash code %d differs from source %d", b, a)
}

// displayDelimiter validates a caller-supplied delimiter for AsStringWith.
func displayDelimiter(op, d string) (rune, error) {
	return resolveDelimiter(op, []Option{WithDelimiter(d)})
}

func requireText(op string, c string) error {
	return require(utf8.ValidString(c), op, "component %q is not valid UTF-8 text", c)
}

// pack joins pre-masked components into a packed string for delimiter.
func pack(op string, components []string, delimiter rune) (string, error) {
	for i, c := range components {
		if err := requireText(op, c); err != nil {
			return "", err
		}
		if err := require(IsMasked(c, delimiter), op,
			"component %d (%q) is not masked for delimiter %q", i, c, delimiter); err != nil {
			return "", err
		}
	}
	if err := require(len(components) != 1 || components[0] != "", op,
		"a single empty component cannot be represented in a packed string"); err != nil {
		return "", err
	}
	return JoinDisplay(components, delimiter), nil
}

func invalidString(err error) string {
	return fmt.Sprintf("<invalid name: %v>", err)
}

// settle re-checks the receiver's invariant before handing out v.
func settle[T any](check func(op string) error, op string, v T) (T, error) {
	if err := check(op); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// SPDX-License-Identifier: MPL-2.0

package filetree

import (
	"fmt"

	"github.com/namekit/namekit/pkg/names"
)

// PathDelimiter separates base names in a node's full name.
const PathDelimiter = "/"

// Node is the behavior shared by directories, files, and links.
type Node interface {
	// BaseName returns the node's own name within its parent.
	BaseName() string
	// Rename changes the base name.
	Rename(bn string) error
	// Parent returns the containing directory, or nil for the root.
	Parent() *Directory
	// Move detaches the node from its parent and adds it to to.
	Move(to *Directory) error
	// FullName returns the "/"-delimited name from the root down to the node.
	FullName() (names.Name, error)
	// FindNodes returns every node at or below this one whose base name is
	// bn, in depth-first order. Links are not followed.
	FindNodes(bn string) ([]Node, error)

	base() *node
	collect(bn string, result []Node) ([]Node, error)
}

// node holds the state common to every Node.
type node struct {
	baseName string
	parent   *Directory
}

func (n *node) base() *node { return n }

// BaseName returns the node's own name within its parent.
func (n *node) BaseName() string { return n.baseName }

// Parent returns the containing directory, or nil for the root.
func (n *node) Parent() *Directory { return n.parent }

// Rename changes the base name. bn must be non-empty and must not contain an
// unmasked path delimiter.
func (n *node) Rename(bn string) error {
	if n.parent == nil {
		return &names.PreconditionError{Op: "Rename", Reason: "the root directory cannot be renamed"}
	}
	if err := requireBaseName("Rename", bn); err != nil {
		return err
	}
	n.baseName = bn
	return nil
}

// validate reports an empty base name as an invariant violation.
func (n *node) validate(op string) error {
	if n.baseName == "" {
		return &names.InvariantError{Op: op, Reason: "node has an empty base name"}
	}
	return nil
}

func requireBaseName(op, bn string) error {
	if bn == "" {
		return &names.PreconditionError{Op: op, Reason: "base name must not be empty"}
	}
	if !names.IsMasked(bn, []rune(PathDelimiter)[0]) {
		return &names.PreconditionError{Op: op, Reason: fmt.Sprintf("base name %q contains an unmasked %q", bn, PathDelimiter)}
	}
	return nil
}

// attach creates the parent link for a new child.
func attach(op string, child Node, bn string, parent *Directory) error {
	if parent == nil {
		return &names.PreconditionError{Op: op, Reason: "parent directory must not be nil"}
	}
	if err := requireBaseName(op, bn); err != nil {
		return err
	}
	child.base().baseName = bn
	child.base().parent = parent
	parent.add(child)
	return nil
}

// move re-parents self under to.
func move(self Node, to *Directory) error {
	const op = "Move"
	if to == nil {
		return &names.PreconditionError{Op: op, Reason: "target directory must not be nil"}
	}
	n := self.base()
	if n.parent == nil {
		return &names.PreconditionError{Op: op, Reason: "the root directory cannot be moved"}
	}
	for d := to; d != nil; d = d.parent {
		if Node(d) == self {
			return &names.PreconditionError{Op: op, Reason: fmt.Sprintf("cannot move %q below itself", n.baseName)}
		}
	}
	n.parent.remove(self)
	to.add(self)
	n.parent = to
	return nil
}

// fullName appends one component per ancestor below the root, starting from
// the empty root name.
func fullName(self Node) (names.Name, error) {
	const op = "FullName"
	var chain []string
	for cur := self; cur.base().parent != nil; cur = cur.base().parent {
		if err := cur.base().validate(op); err != nil {
			return nil, err
		}
		chain = append(chain, cur.BaseName())
	}

	result, err := rootName()
	if err != nil {
		return nil, err
	}
	for i := len(chain) - 1; i >= 0; i-- {
		if result, err = result.Append(chain[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func rootName() (names.Name, error) {
	return names.NewStringName("", names.WithDelimiter(PathDelimiter))
}

// findNodes runs collect and wraps any failure as a service failure.
func findNodes(self Node, bn string) ([]Node, error) {
	result, err := self.collect(bn, nil)
	if err != nil {
		return nil, names.NewServiceFailure("FindNodes", err)
	}
	return result, nil
}

// collectLeaf adds self to result when its base name matches.
func collectLeaf(self Node, bn string, result []Node) ([]Node, error) {
	if err := self.base().validate("FindNodes"); err != nil {
		return nil, err
	}
	if self.BaseName() == bn {
		result = append(result, self)
	}
	return result, nil
}

// SPDX-License-Identifier: MPL-2.0

package filetree

import (
	"strings"

	"github.com/namekit/namekit/pkg/names"
)

// RootDirectory is the top of a tree. It has no parent and an empty base
// name, and cannot be renamed or moved.
type RootDirectory struct {
	Directory
}

// NewRoot returns an empty tree.
func NewRoot() *RootDirectory {
	return &RootDirectory{}
}

// Dir returns the root as a parent for new nodes.
func (r *RootDirectory) Dir() *Directory { return &r.Directory }

// FullName returns the empty "/"-delimited name.
func (r *RootDirectory) FullName() (names.Name, error) { return rootName() }

// Lookup finds the node at path, a "/"-separated sequence of base names
// relative to the root. A leading "/" is ignored; "" and "/" name the root.
// Intermediate links are not followed.
func (r *RootDirectory) Lookup(path string) (Node, error) {
	const op = "Lookup"
	p, err := names.NewStringName(strings.TrimPrefix(path, PathDelimiter), names.WithDelimiter(PathDelimiter))
	if err != nil {
		return nil, err
	}
	parts, err := names.Components(p)
	if err != nil {
		return nil, err
	}

	var cur Node = r.Dir()
	for i, bn := range parts {
		dir, ok := cur.(*Directory)
		if !ok {
			return nil, &names.PreconditionError{Op: op, Reason: "not a directory: " + strings.Join(parts[:i], PathDelimiter)}
		}
		if cur, ok = dir.Child(bn); !ok {
			return nil, &names.PreconditionError{Op: op, Reason: "no such node: " + path}
		}
	}
	return cur, nil
}

// Walk visits every node below the root in depth-first order.
func (r *RootDirectory) Walk(fn func(Node) error) error {
	return walk(r.Dir(), fn)
}

func walk(d *Directory, fn func(Node) error) error {
	for _, c := range d.children {
		if err := fn(c); err != nil {
			return err
		}
		if sub, ok := c.(*Directory); ok {
			if err := walk(sub, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

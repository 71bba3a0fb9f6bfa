// SPDX-License-Identifier: MPL-2.0

package filetree

import (
	"slices"

	"github.com/namekit/namekit/pkg/names"
)

// Directory is a node that contains other nodes in insertion order.
type Directory struct {
	node
	children []Node
}

var _ Node = (*Directory)(nil)

// NewDirectory creates a directory named bn inside parent.
func NewDirectory(bn string, parent *Directory) (*Directory, error) {
	d := &Directory{}
	if err := attach("NewDirectory", d, bn, parent); err != nil {
		return nil, err
	}
	return d, nil
}

// Children returns a copy of the directory's children.
func (d *Directory) Children() []Node {
	return slices.Clone(d.children)
}

// Child returns the direct child called bn.
func (d *Directory) Child(bn string) (Node, bool) {
	for _, c := range d.children {
		if c.BaseName() == bn {
			return c, true
		}
	}
	return nil, false
}

func (d *Directory) add(child Node) {
	d.children = append(d.children, child)
}

func (d *Directory) remove(child Node) {
	if i := slices.Index(d.children, child); i >= 0 {
		d.children = slices.Delete(d.children, i, i+1)
	}
}

// Move re-parents the directory and its subtree under to.
func (d *Directory) Move(to *Directory) error { return move(d, to) }

// FullName returns the directory's "/"-delimited full name.
func (d *Directory) FullName() (names.Name, error) { return fullName(d) }

// FindNodes searches the directory and its subtree for nodes named bn.
func (d *Directory) FindNodes(bn string) ([]Node, error) { return findNodes(d, bn) }

func (d *Directory) collect(bn string, result []Node) ([]Node, error) {
	// The root is the only directory allowed an empty base name.
	if d.parent != nil {
		var err error
		if result, err = collectLeaf(d, bn, result); err != nil {
			return nil, err
		}
	}
	for _, c := range d.children {
		var err error
		if result, err = c.collect(bn, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

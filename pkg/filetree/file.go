// SPDX-License-Identifier: MPL-2.0

package filetree

import "github.com/namekit/namekit/pkg/names"

// File is a leaf node.
type File struct {
	node
}

var _ Node = (*File)(nil)

// NewFile creates a file named bn inside parent.
func NewFile(bn string, parent *Directory) (*File, error) {
	f := &File{}
	if err := attach("NewFile", f, bn, parent); err != nil {
		return nil, err
	}
	return f, nil
}

// Move re-parents the file under to.
func (f *File) Move(to *Directory) error { return move(f, to) }

// FullName returns the file's "/"-delimited full name.
func (f *File) FullName() (names.Name, error) { return fullName(f) }

// FindNodes returns the file itself if it is named bn.
func (f *File) FindNodes(bn string) ([]Node, error) { return findNodes(f, bn) }

func (f *File) collect(bn string, result []Node) ([]Node, error) {
	return collectLeaf(f, bn, result)
}

// SPDX-License-Identifier: MPL-2.0

package filetree

import "github.com/namekit/namekit/pkg/names"

// Link is a node that refers to another node. Searches do not descend into
// the target.
type Link struct {
	node
	target Node
}

var _ Node = (*Link)(nil)

// NewLink creates a link named bn inside parent. target may be nil and set
// later with SetTarget.
func NewLink(bn string, parent *Directory, target Node) (*Link, error) {
	l := &Link{target: target}
	if err := attach("NewLink", l, bn, parent); err != nil {
		return nil, err
	}
	return l, nil
}

// Target returns the linked node, or nil if unset.
func (l *Link) Target() Node { return l.target }

// SetTarget points the link at target.
func (l *Link) SetTarget(target Node) { l.target = target }

// Resolve follows the link, and any links it points at, to a non-link node.
func (l *Link) Resolve() (Node, error) {
	const op = "Resolve"
	seen := map[*Link]bool{}
	var cur Node = l
	for {
		link, ok := cur.(*Link)
		if !ok {
			return cur, nil
		}
		if seen[link] {
			return nil, &names.InvariantError{Op: op, Reason: "link cycle at " + link.BaseName()}
		}
		seen[link] = true
		if link.target == nil {
			return nil, &names.PreconditionError{Op: op, Reason: "link " + link.BaseName() + " has no target"}
		}
		cur = link.target
	}
}

// Move re-parents the link under to. The target is unaffected.
func (l *Link) Move(to *Directory) error { return move(l, to) }

// FullName returns the link's own full name, not the target's.
func (l *Link) FullName() (names.Name, error) { return fullName(l) }

// FindNodes returns the link itself if it is named bn.
func (l *Link) FindNodes(bn string) ([]Node, error) { return findNodes(l, bn) }

func (l *Link) collect(bn string, result []Node) ([]Node, error) {
	return collectLeaf(l, bn, result)
}

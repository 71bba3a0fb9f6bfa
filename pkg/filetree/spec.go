// SPDX-License-Identifier: MPL-2.0

package filetree

import (
	"context"
	"fmt"

	"github.com/namekit/namekit/pkg/names"
)

type (
	// Spec describes a whole tree.
	Spec struct {
		Entries []Entry `json:"entries" toml:"entries"`
	}

	// Entry describes one node. Target is the root-relative path of a link's
	// target; Children only applies to directories.
	Entry struct {
		Name     string    `json:"name" toml:"name"`
		Kind     EntryKind `json:"kind" toml:"kind"`
		Target   string    `json:"target,omitempty" toml:"target,omitempty"`
		Children []Entry   `json:"children,omitempty" toml:"children,omitempty"`
	}

	pendingLink struct {
		link   *Link
		target string
	}
)

// Build creates the tree described by s. Link targets are resolved once every
// node exists, so a link may point at a node declared after it.
func (s *Spec) Build(ctx context.Context) (*RootDirectory, error) {
	root := NewRoot()
	var links []pendingLink
	if err := buildEntries(ctx, root.Dir(), s.Entries, &links); err != nil {
		return nil, err
	}
	for _, pl := range links {
		target, err := root.Lookup(pl.target)
		if err != nil {
			return nil, names.NewServiceFailure("Build", fmt.Errorf("link %q: %w", pl.link.BaseName(), err))
		}
		pl.link.SetTarget(target)
	}
	return root, nil
}

func buildEntries(ctx context.Context, parent *Directory, entries []Entry, links *[]pendingLink) error {
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		kind := e.Kind
		if kind == "" {
			kind = EntryDirectory
		}
		if err := kind.Validate(); err != nil {
			return &names.PreconditionError{Op: "Build", Reason: "entry " + e.Name, Cause: err}
		}

		switch kind {
		case EntryDirectory:
			d, err := NewDirectory(e.Name, parent)
			if err != nil {
				return err
			}
			if err := buildEntries(ctx, d, e.Children, links); err != nil {
				return err
			}
		case EntryFile:
			if _, err := NewFile(e.Name, parent); err != nil {
				return err
			}
		case EntryLink:
			l, err := NewLink(e.Name, parent, nil)
			if err != nil {
				return err
			}
			*links = append(*links, pendingLink{link: l, target: e.Target})
		}
	}
	return nil
}

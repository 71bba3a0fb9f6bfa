// SPDX-License-Identifier: MPL-2.0

package names

import "slices"

// Builder accumulates components in place and produces immutable names.
// It is the mutable counterpart of Name and is not safe for concurrent use.
// Components are stored verbatim; Build applies the target variant's
// preconditions.
type Builder struct {
	opts       []Option
	components []string
}

// NewBuilder returns an empty Builder. opts are passed to every Build call.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{opts: opts}
}

// BuilderFrom returns a Builder seeded with the components of n and its
// delimiter.
func BuilderFrom(n Name) (*Builder, error) {
	components, err := Components(n)
	if err != nil {
		return nil, err
	}
	return &Builder{
		opts:       []Option{WithDelimiter(string(n.Delimiter()))},
		components: components,
	}, nil
}

// Len returns the number of components collected so far.
func (b *Builder) Len() int { return len(b.components) }

// Append adds c as the last component.
func (b *Builder) Append(c ...string) *Builder {
	b.components = append(b.components, c...)
	return b
}

// Insert places c before position i, 0 <= i <= Len().
func (b *Builder) Insert(i int, c string) error {
	if err := requireIndex("Builder.Insert", i, len(b.components)+1); err != nil {
		return err
	}
	b.components = slices.Insert(b.components, i, c)
	return nil
}

// Set replaces the component at i.
func (b *Builder) Set(i int, c string) error {
	if err := requireIndex("Builder.Set", i, len(b.components)); err != nil {
		return err
	}
	b.components[i] = c
	return nil
}

// Remove drops the component at i.
func (b *Builder) Remove(i int) error {
	if err := requireIndex("Builder.Remove", i, len(b.components)); err != nil {
		return err
	}
	b.components = slices.Delete(b.components, i, i+1)
	return nil
}

// Reset discards all components.
func (b *Builder) Reset() {
	b.components = nil
}

// Build returns an immutable name of the given variant. The Builder can be
// reused afterwards; later changes do not affect the built name.
func (b *Builder) Build(variant Variant) (Name, error) {
	return New(variant, b.components, b.opts...)
}

// SPDX-License-Identifier: MPL-2.0

package names

import (
	"errors"
	"slices"
	"testing"
)

func mustStringName(t *testing.T, source string, opts ...Option) *StringName {
	t.Helper()
	n, err := NewStringName(source, opts...)
	if err != nil {
		t.Fatalf("NewStringName(%q) error = %v", source, err)
	}
	return n
}

func TestStringName_Basics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		opts   []Option
		apply  func(Name) (Name, error)
		want   string
	}{
		{"insert", "oss.fau.de", nil, func(n Name) (Name, error) { return n.Insert(1, "cs") }, "oss.cs.fau.de"},
		{"append", "oss.cs.fau", nil, func(n Name) (Name, error) { return n.Append("de") }, "oss.cs.fau.de"},
		{"remove", "oss.cs.fau.de", nil, func(n Name) (Name, error) { return n.Remove(0) }, "cs.fau.de"},
		{"set component", "a.b.c", nil, func(n Name) (Name, error) { return n.SetComponent(1, "x") }, "a.x.c"},
		{"insert with hash delimiter", "oss#fau#de", []Option{WithDelimiter("#")}, func(n Name) (Name, error) { return n.Insert(1, "cs") }, "oss#cs#fau#de"},
		{"insert at end appends", "a.b", nil, func(n Name) (Name, error) { return n.Insert(2, "c") }, "a.b.c"},
		{"remove last", "a.b", nil, func(n Name) (Name, error) { return n.Remove(1) }, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.apply(mustStringName(t, tt.source, tt.opts...))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s := mustAsString(t, got); s != tt.want {
				t.Errorf("AsString() = %q, want %q", s, tt.want)
			}
		})
	}
}

func TestStringName_DelimiterBoundaries(t *testing.T) {
	t.Parallel()

	n := mustStringName(t, "oss.cs.fau.de", WithDelimiter("#"))
	if count, _ := n.NoComponents(); count != 1 {
		t.Errorf("NoComponents() = %d, want 1", count)
	}
	if s := mustAsString(t, n); s != "oss.cs.fau.de" {
		t.Errorf("AsString() = %q", s)
	}
	appended, err := n.Append("people")
	if err != nil {
		t.Fatal(err)
	}
	if s := mustAsString(t, appended); s != "oss.cs.fau.de#people" {
		t.Errorf("AsString() = %q, want %q", s, "oss.cs.fau.de#people")
	}
}

func TestStringName_EmptyString(t *testing.T) {
	t.Parallel()

	n := mustStringName(t, "")
	empty, err := n.IsEmpty()
	if err != nil || !empty {
		t.Fatalf("IsEmpty() = %v, %v; want true", empty, err)
	}

	appended, err := n.Append("de")
	if err != nil {
		t.Fatal(err)
	}
	if s := mustAsString(t, appended); s != "de" {
		t.Errorf("Append on empty = %q, want %q (no leading delimiter)", s, "de")
	}

	if _, err := n.Append(""); !errors.Is(err, ErrPrecondition) {
		t.Errorf("Append(\"\") on empty name error = %v, want ErrPrecondition", err)
	}
	if _, err := n.Insert(0, ""); !errors.Is(err, ErrPrecondition) {
		t.Errorf("Insert(0, \"\") on empty name error = %v, want ErrPrecondition", err)
	}
}

func TestStringName_MaskedComponents(t *testing.T) {
	t.Parallel()

	n := mustStringName(t, `a\.b.c\\d`)
	got := mustComponents(t, n)
	if want := []string{`a\.b`, `c\\d`}; !slices.Equal(got, want) {
		t.Fatalf("components = %q, want %q", got, want)
	}

	// Escapes already present are doubled in the data string.
	if s := mustDataString(t, n); s != `a\\\.b.c\\\\d` {
		t.Errorf("AsDataString() = %q", s)
	}

	inserted, err := n.Insert(1, `x\.y`)
	if err != nil {
		t.Fatal(err)
	}
	if count, _ := inserted.NoComponents(); count != 3 {
		t.Errorf("NoComponents() after masked insert = %d, want 3", count)
	}
}

func TestStringName_Preconditions(t *testing.T) {
	t.Parallel()

	n := mustStringName(t, "a.b.c")
	trailing := mustStringName(t, "a.")

	tests := []struct {
		name string
		call func() error
	}{
		{"multi-char delimiter", func() error { _, err := NewStringName("a.b", WithDelimiter("--")); return err }},
		{"unpaired trailing escape", func() error { _, err := NewStringName(`abc\`); return err }},
		{"invalid utf-8 source", func() error { _, err := NewStringName("a\xff"); return err }},
		{"component out of range", func() error { _, err := n.Component(3); return err }},
		{"set out of range", func() error { _, err := n.SetComponent(5, "x"); return err }},
		{"insert out of range", func() error { _, err := n.Insert(4, "x"); return err }},
		{"remove out of range", func() error { _, err := n.Remove(-1); return err }},
		{"unmasked delimiter in component", func() error { _, err := n.Append("x.y"); return err }},
		{"unmasked delimiter on insert", func() error { _, err := n.Insert(0, "x.y"); return err }},
		{"unmasked delimiter on set", func() error { _, err := n.SetComponent(0, "x.y"); return err }},
		{"dangling escape component", func() error { _, err := n.Append(`x\`); return err }},
		{"result is a lone empty component", func() error { _, err := trailing.Remove(0); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.call(); !errors.Is(err, ErrPrecondition) {
				t.Fatalf("error = %v, want ErrPrecondition", err)
			}
		})
	}
}

func TestStringName_Immutable(t *testing.T) {
	t.Parallel()

	n := mustStringName(t, "a.b.c")
	for _, apply := range []func() (Name, error){
		func() (Name, error) { return n.SetComponent(0, "x") },
		func() (Name, error) { return n.Insert(1, "y") },
		func() (Name, error) { return n.Append("z") },
		func() (Name, error) { return n.Remove(2) },
	} {
		if _, err := apply(); err != nil {
			t.Fatal(err)
		}
	}
	if s := mustAsString(t, n); s != "a.b.c" {
		t.Errorf("receiver changed to %q", s)
	}
}

func TestStringName_InvariantViolation(t *testing.T) {
	t.Parallel()

	t.Run("stale component count", func(t *testing.T) {
		t.Parallel()
		n := mustStringName(t, "a.b")
		n.noComponents = 7
		assertInvariantFailure(t, n)
	})

	t.Run("tampered packed string", func(t *testing.T) {
		t.Parallel()
		n := mustStringName(t, "a.b")
		n.name = "a.b.c"
		assertInvariantFailure(t, n)
	})

	t.Run("dangling escape", func(t *testing.T) {
		t.Parallel()
		n := mustStringName(t, "a.b")
		n.name = `a.b\`
		assertInvariantFailure(t, n)
	})
}

func TestStringName_AsStringWith(t *testing.T) {
	t.Parallel()

	n := mustStringName(t, "a.b.c")
	got, err := n.AsStringWith("/")
	if err != nil {
		t.Fatal(err)
	}
	if got != "a/b/c" {
		t.Errorf("AsStringWith(\"/\") = %q, want %q", got, "a/b/c")
	}
}

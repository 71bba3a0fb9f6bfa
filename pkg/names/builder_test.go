// SPDX-License-Identifier: MPL-2.0

package names

import (
	"errors"
	"testing"
)

func TestBuilder(t *testing.T) {
	t.Parallel()

	b := NewBuilder(WithDelimiter("/")).Append("usr", "bin")
	if err := b.Insert(1, "local"); err != nil {
		t.Fatal(err)
	}
	if err := b.Set(2, "sbin"); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}

	for _, v := range []Variant{VariantArray, VariantString} {
		n, err := b.Build(v)
		if err != nil {
			t.Fatalf("Build(%s) error = %v", v, err)
		}
		if s := mustAsString(t, n); s != "usr/local/sbin" {
			t.Errorf("Build(%s).AsString() = %q", v, s)
		}
	}

	built, err := b.Build(VariantArray)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Remove(0); err != nil {
		t.Fatal(err)
	}
	if count, _ := built.NoComponents(); count != 3 {
		t.Errorf("built name changed with the builder: %d components", count)
	}

	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len() after Reset = %d", b.Len())
	}
}

func TestBuilder_IndexErrors(t *testing.T) {
	t.Parallel()

	b := NewBuilder().Append("a")
	for name, err := range map[string]error{
		"insert": b.Insert(2, "x"),
		"set":    b.Set(1, "x"),
		"remove": b.Remove(-1),
	} {
		if !errors.Is(err, ErrPrecondition) {
			t.Errorf("%s error = %v, want ErrPrecondition", name, err)
		}
	}
	if b.Len() != 1 {
		t.Errorf("failed edits changed the builder: Len() = %d", b.Len())
	}
}

func TestBuilderFrom(t *testing.T) {
	t.Parallel()

	source := mustStringName(t, "oss#fau#de", WithDelimiter("#"))
	b, err := BuilderFrom(source)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Insert(1, "cs"); err != nil {
		t.Fatal(err)
	}
	n, err := b.Build(VariantString)
	if err != nil {
		t.Fatal(err)
	}
	if s := mustAsString(t, n); s != "oss#cs#fau#de" {
		t.Errorf("AsString() = %q", s)
	}
	if s := mustAsString(t, source); s != "oss#fau#de" {
		t.Errorf("source changed to %q", s)
	}
}

func TestBuilder_BuildStringRejectsUnmasked(t *testing.T) {
	t.Parallel()

	b := NewBuilder().Append("a.b")
	if _, err := b.Build(VariantString); !errors.Is(err, ErrPrecondition) {
		t.Errorf("Build(VariantString) error = %v, want ErrPrecondition", err)
	}
	n, err := b.Build(VariantArray)
	if err != nil {
		t.Fatal(err)
	}
	if count, _ := n.NoComponents(); count != 1 {
		t.Errorf("NoComponents() = %d, want 1", count)
	}
}

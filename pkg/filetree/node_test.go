// SPDX-License-Identifier: MPL-2.0

package filetree

import (
	"errors"
	"testing"

	"github.com/namekit/namekit/pkg/names"
)

// sampleTree builds /usr/bin/ls, /usr/lib, /home/ls and /home/bin -> /usr/bin.
func sampleTree(t *testing.T) (*RootDirectory, map[string]Node) {
	t.Helper()
	must := func(n Node, err error) Node {
		t.Helper()
		if err != nil {
			t.Fatalf("building sample tree: %v", err)
		}
		return n
	}

	root := NewRoot()
	usr := must(NewDirectory("usr", root.Dir())).(*Directory)
	bin := must(NewDirectory("bin", usr)).(*Directory)
	ls := must(NewFile("ls", bin))
	lib := must(NewDirectory("lib", usr))
	home := must(NewDirectory("home", root.Dir())).(*Directory)
	homeLs := must(NewFile("ls", home))
	link := must(NewLink("bin", home, bin))

	return root, map[string]Node{
		"usr": usr, "bin": bin, "ls": ls, "lib": lib,
		"home": home, "home/ls": homeLs, "home/bin": link,
	}
}

func fullNameString(t *testing.T, n Node) string {
	t.Helper()
	fn, err := n.FullName()
	if err != nil {
		t.Fatalf("FullName() error = %v", err)
	}
	s, err := fn.AsString()
	if err != nil {
		t.Fatalf("AsString() error = %v", err)
	}
	return s
}

func TestFullName(t *testing.T) {
	t.Parallel()

	root, nodes := sampleTree(t)

	tests := []struct {
		node string
		want string
	}{
		{"usr", "usr"},
		{"bin", "usr/bin"},
		{"ls", "usr/bin/ls"},
		{"home/bin", "home/bin"},
	}
	for _, tt := range tests {
		if got := fullNameString(t, nodes[tt.node]); got != tt.want {
			t.Errorf("FullName(%s) = %q, want %q", tt.node, got, tt.want)
		}
	}

	rn, err := root.FullName()
	if err != nil {
		t.Fatal(err)
	}
	if empty, _ := rn.IsEmpty(); !empty {
		t.Errorf("root full name should be empty, got %v", rn)
	}
	if rn.Delimiter() != '/' {
		t.Errorf("root delimiter = %q, want '/'", rn.Delimiter())
	}

	fn, err := nodes["ls"].FullName()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := fn.(*names.StringName); !ok {
		t.Errorf("FullName() returned %T, want *names.StringName", fn)
	}
}

func TestNewNode_Preconditions(t *testing.T) {
	t.Parallel()

	root := NewRoot()
	tests := []struct {
		name string
		call func() error
	}{
		{"empty base name", func() error { _, err := NewFile("", root.Dir()); return err }},
		{"unmasked delimiter", func() error { _, err := NewDirectory("a/b", root.Dir()); return err }},
		{"nil parent", func() error { _, err := NewLink("x", nil, nil); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.call(); !errors.Is(err, names.ErrPrecondition) {
				t.Errorf("error = %v, want ErrPrecondition", err)
			}
		})
	}

	if _, err := NewFile(`a\/b`, root.Dir()); err != nil {
		t.Errorf("masked delimiter should be accepted: %v", err)
	}
}

func TestFindNodes(t *testing.T) {
	t.Parallel()

	root, nodes := sampleTree(t)

	got, err := root.FindNodes("ls")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != nodes["ls"] || got[1] != nodes["home/ls"] {
		t.Errorf("FindNodes(ls) = %v, want [usr/bin/ls home/ls] in order", got)
	}

	// The link named bin matches itself but is not followed.
	got, err = root.FindNodes("bin")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != nodes["bin"] || got[1] != nodes["home/bin"] {
		t.Errorf("FindNodes(bin) = %v", got)
	}

	got, err = nodes["home"].FindNodes("lib")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("FindNodes below home found %d nodes, want 0", len(got))
	}

	got, err = nodes["ls"].FindNodes("ls")
	if err != nil || len(got) != 1 {
		t.Errorf("FindNodes on a file = %v, %v", got, err)
	}
}

func TestFindNodes_EmptyBaseNameIsServiceFailure(t *testing.T) {
	t.Parallel()

	root, nodes := sampleTree(t)
	nodes["lib"].base().baseName = ""

	_, err := root.FindNodes("ls")
	if !errors.Is(err, names.ErrServiceFailure) {
		t.Fatalf("error = %v, want ErrServiceFailure", err)
	}
	if !errors.Is(err, names.ErrInvariant) {
		t.Errorf("error = %v, want the invariant violation as cause", err)
	}
	var sf *names.ServiceFailureError
	if !errors.As(err, &sf) {
		t.Fatalf("errors.As(*ServiceFailureError) failed for %v", err)
	}
	var inv *names.InvariantError
	if !errors.As(sf.Cause, &inv) {
		t.Errorf("cause = %v, want *InvariantError", sf.Cause)
	}

	if _, err := nodes["lib"].FullName(); !errors.Is(err, names.ErrInvariant) {
		t.Errorf("FullName() error = %v, want ErrInvariant", err)
	}
}

func TestMove(t *testing.T) {
	t.Parallel()

	root, nodes := sampleTree(t)
	bin := nodes["bin"].(*Directory)
	home := nodes["home"].(*Directory)

	if err := bin.Move(home); err != nil {
		t.Fatal(err)
	}
	if got := fullNameString(t, nodes["ls"]); got != "home/bin/ls" {
		t.Errorf("FullName after move = %q", got)
	}
	if bin.Parent() != home {
		t.Error("Parent() not updated")
	}
	if _, ok := nodes["usr"].(*Directory).Child("bin"); ok {
		t.Error("old parent still lists the moved directory")
	}
	children := home.Children()
	if children[len(children)-1] != Node(bin) {
		t.Error("moved directory should be appended to the new parent's children")
	}

	t.Run("into own subtree", func(t *testing.T) {
		usr := nodes["usr"].(*Directory)
		lib := nodes["lib"].(*Directory)
		if err := usr.Move(lib); !errors.Is(err, names.ErrPrecondition) {
			t.Errorf("error = %v, want ErrPrecondition", err)
		}
		if err := usr.Move(usr); !errors.Is(err, names.ErrPrecondition) {
			t.Errorf("error = %v, want ErrPrecondition", err)
		}
	})

	t.Run("root and nil target", func(t *testing.T) {
		if err := root.Move(home); !errors.Is(err, names.ErrPrecondition) {
			t.Errorf("root Move error = %v, want ErrPrecondition", err)
		}
		if err := nodes["ls"].Move(nil); !errors.Is(err, names.ErrPrecondition) {
			t.Errorf("Move(nil) error = %v, want ErrPrecondition", err)
		}
	})
}

func TestRename(t *testing.T) {
	t.Parallel()

	root, nodes := sampleTree(t)
	if err := nodes["usr"].Rename("opt"); err != nil {
		t.Fatal(err)
	}
	if got := fullNameString(t, nodes["ls"]); got != "opt/bin/ls" {
		t.Errorf("FullName after rename = %q", got)
	}
	if err := nodes["ls"].Rename(""); !errors.Is(err, names.ErrPrecondition) {
		t.Errorf("Rename(\"\") error = %v, want ErrPrecondition", err)
	}
	if err := root.Rename("top"); !errors.Is(err, names.ErrPrecondition) {
		t.Errorf("root Rename error = %v, want ErrPrecondition", err)
	}
}

func TestLink_Resolve(t *testing.T) {
	t.Parallel()

	root, nodes := sampleTree(t)
	link := nodes["home/bin"].(*Link)

	target, err := link.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if target != nodes["bin"] {
		t.Errorf("Resolve() = %v, want usr/bin", target)
	}

	other, err := NewLink("other", root.Dir(), link)
	if err != nil {
		t.Fatal(err)
	}
	if target, err := other.Resolve(); err != nil || target != nodes["bin"] {
		t.Errorf("chained Resolve() = %v, %v", target, err)
	}

	link.SetTarget(other)
	if _, err := other.Resolve(); !errors.Is(err, names.ErrInvariant) {
		t.Errorf("cyclic Resolve() error = %v, want ErrInvariant", err)
	}

	dangling, err := NewLink("dangling", root.Dir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := dangling.Resolve(); !errors.Is(err, names.ErrPrecondition) {
		t.Errorf("dangling Resolve() error = %v, want ErrPrecondition", err)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	root, nodes := sampleTree(t)

	for path, want := range map[string]Node{
		"/usr/bin/ls": nodes["ls"],
		"home/bin":    nodes["home/bin"],
	} {
		got, err := root.Lookup(path)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", path, err)
		}
		if got != want {
			t.Errorf("Lookup(%q) = %v", path, got)
		}
	}

	if got, err := root.Lookup("/"); err != nil || got != Node(root.Dir()) {
		t.Errorf("Lookup(/) = %v, %v", got, err)
	}
	for _, path := range []string{"/usr/sbin", "/usr/bin/ls/x", "/home/bin/ls"} {
		if _, err := root.Lookup(path); !errors.Is(err, names.ErrPrecondition) {
			t.Errorf("Lookup(%q) error = %v, want ErrPrecondition", path, err)
		}
	}
}

func TestEntryKind_Validate(t *testing.T) {
	t.Parallel()

	for _, k := range []EntryKind{EntryDirectory, EntryFile, EntryLink} {
		if err := k.Validate(); err != nil {
			t.Errorf("%s.Validate() = %v", k, err)
		}
	}
	err := EntryKind("socket").Validate()
	if !errors.Is(err, ErrInvalidEntryKind) {
		t.Errorf("Validate() error = %v, want ErrInvalidEntryKind", err)
	}
}

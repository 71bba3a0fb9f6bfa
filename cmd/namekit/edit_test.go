// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/namekit/namekit/pkg/names"
	"github.com/namekit/namekit/pkg/types"
)

func TestParseEditOp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    editKind
		value   string
		want    editOp
		wantErr bool
	}{
		{"append", editAppend, "c.d", editOp{kind: editAppend, component: "c.d"}, false},
		{"append empty", editAppend, "", editOp{kind: editAppend}, false},
		{"remove", editRemove, "2", editOp{kind: editRemove, index: 2}, false},
		{"remove negative", editRemove, "-1", editOp{kind: editRemove, index: -1}, false},
		{"insert", editInsert, "1=cs", editOp{kind: editInsert, index: 1, component: "cs"}, false},
		{"set keeps later equals", editSet, "0=a=b", editOp{kind: editSet, component: "a=b"}, false},
		{"set empty component", editSet, "0=", editOp{kind: editSet}, false},
		{"remove not a number", editRemove, "x", editOp{}, true},
		{"insert missing equals", editInsert, "1", editOp{}, true},
		{"insert bad index", editInsert, "one=c", editOp{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseEditOp(tt.kind, tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidEditOp) {
					t.Errorf("parseEditOp(%s, %q) error = %v, want ErrInvalidEditOp", tt.kind, tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseEditOp(%s, %q) error = %v", tt.kind, tt.value, err)
			}
			if got != tt.want {
				t.Errorf("parseEditOp(%s, %q) = %+v, want %+v", tt.kind, tt.value, got, tt.want)
			}
		})
	}
}

func TestApplyEdits(t *testing.T) {
	t.Parallel()

	start, err := names.NewStringArrayName([]string{"a", "b", "c"})
	if err != nil {
		t.Fatal(err)
	}
	ops := []editOp{
		{kind: editRemove, index: 0},
		{kind: editSet, index: 0, component: "x"},
		{kind: editInsert, index: 2, component: "y"},
		{kind: editAppend, component: "z"},
	}

	var steps []string
	result, err := applyEdits(start, ops, func(step int, op editOp, n names.Name) {
		steps = append(steps, n.String())
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := result.String(); got != "x.c.y.z" {
		t.Errorf("result = %q, want x.c.y.z", got)
	}
	if want := []string{"b.c", "x.c", "x.c.y", "x.c.y.z"}; strings.Join(steps, " ") != strings.Join(want, " ") {
		t.Errorf("steps = %v, want %v", steps, want)
	}
	if start.String() != "a.b.c" {
		t.Errorf("original name changed to %q", start.String())
	}
}

func TestApplyEdits_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	start, err := names.NewStringArrayName([]string{"a"})
	if err != nil {
		t.Fatal(err)
	}
	calls := 0
	_, err = applyEdits(start, []editOp{
		{kind: editAppend, component: "b"},
		{kind: editRemove, index: 7},
		{kind: editAppend, component: "never"},
	}, func(int, editOp, names.Name) { calls++ })

	if !errors.Is(err, names.ErrPrecondition) {
		t.Fatalf("error = %v, want ErrPrecondition", err)
	}
	if !strings.Contains(err.Error(), "edit step 2 (remove 7)") {
		t.Errorf("error %q should name the failing step", err)
	}
	if calls != 1 {
		t.Errorf("observer called %d times, want 1", calls)
	}
}

func TestEditCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"insert", []string{"edit", "oss.fau.de", "--insert", "1=cs"}, "oss.cs.fau.de\n"},
		{"flag order", []string{"edit", "a.b", "--append", "y", "--remove", "0"}, "b.y\n"},
		{"reverse order", []string{"edit", "a.b", "--remove", "0", "--append", "y"}, "b.y\n"},
		{"set then insert", []string{"edit", "a.b", "--set", "1=x", "--insert", "0=w"}, "w.a.x\n"},
		{"data string", []string{"edit", "a", "--append", "b.c", "--data"}, `a.b\.c` + "\n"},
		{"no edits", []string{"edit", "a.b"}, "a.b\n"},
		{"string variant masked", []string{"--variant", "string", "edit", "a", "--append", `b\.c`}, `a.b\.c` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			stdout, stderr, err := runCLI(t, defaultsProvider(), tt.args...)
			if err != nil {
				t.Fatalf("%v failed: %v\n%s", tt.args, err, stderr)
			}
			if stdout != tt.want {
				t.Errorf("%v stdout = %q, want %q", tt.args, stdout, tt.want)
			}
		})
	}
}

func TestEditCommand_Failures(t *testing.T) {
	t.Parallel()

	_, stderr, err := runCLI(t, defaultsProvider(), "edit", "a.b", "--remove", "5")
	wantExitCode(t, err, types.ExitPrecondition)
	if !strings.Contains(stderr, "edit step 1 (remove 5)") {
		t.Errorf("stderr = %q", stderr)
	}

	_, stderr, err = runCLI(t, defaultsProvider(), "--variant", "string", "edit", "a", "--append", "b.c")
	wantExitCode(t, err, types.ExitPrecondition)
	if !strings.Contains(stderr, "not masked") {
		t.Errorf("stderr = %q", stderr)
	}

	if _, _, err := runCLI(t, defaultsProvider(), "edit", "a", "--insert", "nope"); err == nil || !strings.Contains(err.Error(), `invalid --insert value "nope"`) {
		t.Errorf("bad flag value error = %v", err)
	}
}

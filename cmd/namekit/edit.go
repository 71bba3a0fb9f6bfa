// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/namekit/namekit/pkg/names"

	"github.com/spf13/cobra"
)

const (
	editInsert editKind = "insert"
	editAppend editKind = "append"
	editRemove editKind = "remove"
	editSet    editKind = "set"
)

// ErrInvalidEditOp is the sentinel error wrapped by InvalidEditOpError.
var ErrInvalidEditOp = errors.New("invalid edit operation")

type (
	editKind string

	// editOp is one --insert, --append, --remove or --set flag occurrence.
	editOp struct {
		kind      editKind
		index     int
		component string
	}

	// InvalidEditOpError is returned when an edit flag value cannot be parsed.
	InvalidEditOpError struct {
		Kind  string
		Value string
	}

	// editOpsValue is a pflag.Value shared by all edit flags so that the
	// operations keep their command-line order.
	editOpsValue struct {
		kind editKind
		ops  *[]editOp
	}
)

// Error implements the error interface.
func (e *InvalidEditOpError) Error() string {
	return fmt.Sprintf("invalid --%s value %q", e.Kind, e.Value)
}

// Unwrap returns ErrInvalidEditOp for errors.Is() compatibility.
func (e *InvalidEditOpError) Unwrap() error { return ErrInvalidEditOp }

func (v *editOpsValue) String() string { return "" }

func (v *editOpsValue) Type() string {
	switch v.kind {
	case editAppend:
		return "component"
	case editRemove:
		return "index"
	default:
		return "index=component"
	}
}

func (v *editOpsValue) Set(s string) error {
	op, err := parseEditOp(v.kind, s)
	if err != nil {
		return err
	}
	*v.ops = append(*v.ops, op)
	return nil
}

// parseEditOp reads "i=c" for insert and set, "i" for remove, and a bare
// component for append. Only the first '=' separates index and component.
func parseEditOp(kind editKind, s string) (editOp, error) {
	invalid := &InvalidEditOpError{Kind: string(kind), Value: s}
	switch kind {
	case editAppend:
		return editOp{kind: kind, component: s}, nil
	case editRemove:
		i, err := strconv.Atoi(s)
		if err != nil {
			return editOp{}, invalid
		}
		return editOp{kind: kind, index: i}, nil
	case editInsert, editSet:
		idx, c, ok := strings.Cut(s, "=")
		if !ok {
			return editOp{}, invalid
		}
		i, err := strconv.Atoi(idx)
		if err != nil {
			return editOp{}, invalid
		}
		return editOp{kind: kind, index: i, component: c}, nil
	default:
		return editOp{}, invalid
	}
}

// apply runs op against n and returns the new name.
func (op editOp) apply(n names.Name) (names.Name, error) {
	switch op.kind {
	case editInsert:
		return n.Insert(op.index, op.component)
	case editAppend:
		return n.Append(op.component)
	case editRemove:
		return n.Remove(op.index)
	case editSet:
		return n.SetComponent(op.index, op.component)
	default:
		return nil, &InvalidEditOpError{Kind: string(op.kind)}
	}
}

func (op editOp) String() string {
	switch op.kind {
	case editAppend:
		return fmt.Sprintf("append %q", op.component)
	case editRemove:
		return fmt.Sprintf("remove %d", op.index)
	default:
		return fmt.Sprintf("%s %d=%q", op.kind, op.index, op.component)
	}
}

// applyEdits runs ops in order and stops at the first failing step.
func applyEdits(n names.Name, ops []editOp, observe func(step int, op editOp, result names.Name)) (names.Name, error) {
	for i, op := range ops {
		next, err := op.apply(n)
		if err != nil {
			return nil, fmt.Errorf("edit step %d (%s): %w", i+1, op, err)
		}
		if observe != nil {
			observe(i+1, op, next)
		}
		n = next
	}
	return n, nil
}

func newEditCommand(app *App) *cobra.Command {
	var (
		ops  []editOp
		data bool
	)

	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Apply insert, append, remove and set operations in order",
		Long: `Apply a sequence of edits to a name and print the result. The original
name is never modified; each step produces a new name.

Edits run in the order the flags appear on the command line. Components
are taken verbatim: with the string variant they must already be masked
for the delimiter.`,
		Example: `  namekit edit oss.fau.de --insert 1=cs
  namekit edit a.b.c --remove 0 --set 0=x --append y`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.parseName(args[0])
			if err != nil {
				return app.fail(cmd, err)
			}
			result, err := applyEdits(n, ops, func(step int, op editOp, next names.Name) {
				app.logger.Debug("applied edit", "step", step, "op", op.String(), "name", next.String())
			})
			if err != nil {
				return app.fail(cmd, err)
			}

			var out string
			if data {
				out, err = result.AsDataString()
			} else {
				out, err = result.AsString()
			}
			if err != nil {
				return app.fail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	f := cmd.Flags()
	f.Var(&editOpsValue{kind: editInsert, ops: &ops}, string(editInsert), "insert a component before index (i=c)")
	f.Var(&editOpsValue{kind: editAppend, ops: &ops}, string(editAppend), "append a component")
	f.Var(&editOpsValue{kind: editRemove, ops: &ops}, string(editRemove), "remove the component at index")
	f.Var(&editOpsValue{kind: editSet, ops: &ops}, string(editSet), "replace the component at index (i=c)")
	f.BoolVar(&data, "data", false, "print the data string instead of the display string")
	return cmd
}

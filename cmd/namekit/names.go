// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/namekit/namekit/pkg/names"

	"github.com/spf13/cobra"
)

func newInspectCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <name>",
		Short: "Show the components, data string and hash of a name",
		Long: `Parse a packed name with the configured variant and delimiter and show
how it is represented.

With the array variant each field is unescaped into a raw component; with
the string variant the masking is kept inside the components.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.parseName(args[0])
			if err != nil {
				return app.fail(cmd, err)
			}
			if err := app.printInspection(cmd.OutOrStdout(), n); err != nil {
				return app.fail(cmd, err)
			}
			return nil
		},
	}
}

func newEscapeCommand(app *App) *cobra.Command {
	var packed bool

	cmd := &cobra.Command{
		Use:   "escape <component>...",
		Short: "Print the data string for raw components",
		Long: `Build a name from raw components and print its data string. Escape
characters are doubled and '.' is masked in every component.

With --packed the components are instead masked for the configured
delimiter and joined with it, producing input for the string variant.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := names.NewStringArrayName(args, app.nameOptions()...)
			if err != nil {
				return app.fail(cmd, err)
			}
			var out string
			if packed {
				masked := make([]string, len(args))
				for i, c := range args {
					masked[i] = names.MaskComponent(c, n.Delimiter())
				}
				out = names.JoinDisplay(masked, n.Delimiter())
			} else if out, err = n.AsDataString(); err != nil {
				return app.fail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&packed, "packed", false, "mask for the configured delimiter instead of printing the data string")
	return cmd
}

func newParseCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <data-string>",
		Short: "Split a data string into raw components",
		Long: `Read the machine-readable form printed by 'inspect' or 'escape' and print
the unescaped components, one per line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := names.ParseDataString(args[0], app.nameOptions()...)
			if err != nil {
				return app.fail(cmd, err)
			}
			components, err := names.Components(n)
			if err != nil {
				return app.fail(cmd, err)
			}
			app.logger.Debug("parsed data string", "components", len(components))
			for _, c := range components {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func newHashCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "hash <name>",
		Short: "Print the hash code of a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.parseName(args[0])
			if err != nil {
				return app.fail(cmd, err)
			}
			h, err := n.HashCode()
			if err != nil {
				return app.fail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}
}

func newEqualCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "equal <a> <b>",
		Short: "Report whether two names are equal",
		Long: `Compare two names by hash code and print true or false.

Equality is hash equality: two different names whose hash codes collide
are reported as equal.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.parseName(args[0])
			if err != nil {
				return app.fail(cmd, err)
			}
			b, err := app.parseName(args[1])
			if err != nil {
				return app.fail(cmd, err)
			}
			eq, err := a.IsEqual(b)
			if err != nil {
				return app.fail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(eq))
			return nil
		},
	}
}

func newConcatCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "concat <a> <b>",
		Short: "Append every component of b to a",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.parseName(args[0])
			if err != nil {
				return app.fail(cmd, err)
			}
			b, err := app.parseName(args[1])
			if err != nil {
				return app.fail(cmd, err)
			}
			result, err := a.Concat(b)
			if err != nil {
				return app.fail(cmd, err)
			}
			s, err := result.AsString()
			if err != nil {
				return app.fail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

// printInspection writes the inspect report for n.
func (a *App) printInspection(w io.Writer, n names.Name) error {
	display, err := n.AsString()
	if err != nil {
		return err
	}
	data, err := n.AsDataString()
	if err != nil {
		return err
	}
	hash, err := n.HashCode()
	if err != nil {
		return err
	}
	components, err := names.Components(n)
	if err != nil {
		return err
	}

	label := func(s string) string { return CmdStyle.Render(fmt.Sprintf("%-12s", s)) }
	fmt.Fprintf(w, "%s %s\n", label("Name:"), SuccessStyle.Render(display))
	fmt.Fprintf(w, "%s %s\n", label("Variant:"), a.settings.Variant)
	fmt.Fprintf(w, "%s %s\n", label("Delimiter:"), string(n.Delimiter()))
	fmt.Fprintf(w, "%s %d\n", label("Components:"), len(components))
	for i, c := range components {
		fmt.Fprintf(w, "%s %s\n", indexStyle.Render(strconv.Itoa(i)), c)
	}
	fmt.Fprintf(w, "%s %s\n", label("Data string:"), data)
	fmt.Fprintf(w, "%s %d\n", label("Hash:"), hash)
	return nil
}

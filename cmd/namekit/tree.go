// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/namekit/namekit/internal/issue"
	"github.com/namekit/namekit/pkg/filetree"

	"github.com/spf13/cobra"
)

func newTreeCommand(app *App) *cobra.Command {
	var find string

	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the full names of a file tree",
		Long: `Load a tree description and print the full name of every node, one per
line in depth-first order. Links are followed by "->" and their target.

Files ending in .toml are read as TOML; anything else is read as CUE and
validated against the tree schema:

  entries: [
    {name: "usr", children: [
      {name: "bin", children: [{name: "ls", kind: "file"}]},
    ]},
    {name: "home", children: [
      {name: "bin", kind: "link", target: "usr/bin"},
    ]},
  ]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := filetree.Load(cmd.Context(), args[0], filetree.WithLogger(app.logger))
			if err != nil {
				return app.fail(cmd, issue.NewErrorContext().
					WithOperation("load tree").
					WithResource(args[0]).
					WithIssue(issue.TreeParseErrorId).
					WithSuggestion("Run 'namekit tree --help' for the file format").
					Wrap(err).
					BuildError())
			}

			if cmd.Flags().Changed("find") {
				matches, err := root.FindNodes(find)
				if err != nil {
					return app.fail(cmd, err)
				}
				app.logger.Debug("searched tree", "basename", find, "matches", len(matches))
				for _, n := range matches {
					if err := printNode(cmd.OutOrStdout(), n); err != nil {
						return app.fail(cmd, err)
					}
				}
				return nil
			}

			err = root.Walk(func(n filetree.Node) error {
				return printNode(cmd.OutOrStdout(), n)
			})
			if err != nil {
				return app.fail(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&find, "find", "", "only print nodes with this base name")
	return cmd
}

// printNode writes "/<full name>" and, for links, the full name of the
// immediate target.
func printNode(w io.Writer, n filetree.Node) error {
	path, err := absolutePath(n)
	if err != nil {
		return err
	}
	link, ok := n.(*filetree.Link)
	if !ok {
		fmt.Fprintln(w, path)
		return nil
	}
	if link.Target() == nil {
		fmt.Fprintf(w, "%s -> %s\n", path, SubtitleStyle.Render("(dangling)"))
		return nil
	}
	targetPath, err := absolutePath(link.Target())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s -> %s\n", path, targetPath)
	return nil
}

func absolutePath(n filetree.Node) (string, error) {
	fn, err := n.FullName()
	if err != nil {
		return "", err
	}
	s, err := fn.AsString()
	if err != nil {
		return "", err
	}
	return filetree.PathDelimiter + s, nil
}

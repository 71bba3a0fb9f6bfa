// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/namekit/namekit/internal/config"
	"github.com/namekit/namekit/internal/issue"
	"github.com/namekit/namekit/pkg/names"
	"github.com/namekit/namekit/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	verbose    bool
	configPath string
	delimiter  string
	variant    string
}

// NewRootCommand builds the namekit command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "namekit",
		Short: "Inspect and edit escape-aware hierarchical names",
		Long: TitleStyle.Render("namekit") + SubtitleStyle.Render(" - escape-aware hierarchical names") + `

namekit parses names such as "oss.cs.fau.de" into components, edits them
without mutating the original, and renders both the human-readable form
and the machine-readable data string. A delimiter inside a component is
masked with a backslash: "a\.b.c" has the components "a\.b" and "c".

` + SubtitleStyle.Render("Examples:") + `
  namekit inspect oss.cs.fau.de          Show components, data string and hash
  namekit escape "a.b" c                 Print the data string of raw components
  namekit edit a.b --append c --remove 0 Apply edits in order
  namekit tree tree.cue --find ls        Print full names of a tree`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.loadSettings(cmd, flags)
		},
	}
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	pf.StringVar(&flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/namekit/config.cue)")
	pf.StringVarP(&flags.delimiter, "delimiter", "d", "", "display delimiter (overrides config)")
	pf.StringVar(&flags.variant, "variant", "", "name representation: array or string (overrides config)")

	rootCmd.AddCommand(
		newInspectCommand(app),
		newEscapeCommand(app),
		newParseCommand(app),
		newHashCommand(app),
		newEqualCommand(app),
		newConcatCommand(app),
		newEditCommand(app),
		newTreeCommand(app),
		newConfigCommand(app, flags),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits with the code of the first failure.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(int(types.ExitFailure))
	}
}

// loadSettings resolves the configuration for this invocation and applies
// flag overrides on top of it.
func (a *App) loadSettings(cmd *cobra.Command, flags *rootFlags) error {
	a.applyVerbose(flags.verbose)

	cfg, err := a.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		return a.fail(cmd, err)
	}
	if cmd.Flags().Changed("delimiter") {
		cfg.Delimiter = types.DelimiterChar(flags.delimiter)
	}
	if cmd.Flags().Changed("variant") {
		cfg.Variant = names.Variant(flags.variant)
	}
	if err := cfg.Validate(); err != nil {
		ectx := issue.NewErrorContext().
			WithOperation("apply command-line overrides").
			WithSuggestions(
				"--delimiter takes exactly one character other than '\\'",
				"--variant takes 'array' or 'string'",
			)
		if errors.Is(err, types.ErrInvalidDelimiterChar) {
			ectx.WithIssue(issue.InvalidDelimiterId)
		}
		return a.fail(cmd, ectx.Wrap(err).BuildError())
	}

	a.settings = cfg
	a.applyVerbose(flags.verbose || cfg.UI.Verbose)
	a.logger.Debug("resolved settings", "delimiter", cfg.Delimiter, "variant", cfg.Variant)
	return nil
}

func (a *App) applyVerbose(verbose bool) {
	a.verbose = verbose
	a.logger = newLogger(a.stderr, verbose)
}

// nameOptions returns the construction options for the resolved settings.
func (a *App) nameOptions() []names.Option {
	return a.settings.NameOptions()
}

// parseName reads a packed name argument with the resolved variant.
func (a *App) parseName(arg string) (names.Name, error) {
	n, err := names.Parse(a.settings.Variant, arg, a.nameOptions()...)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("parse name").
			WithResource(arg).
			WithSuggestion(fmt.Sprintf("Mask a literal %q or '\\' inside a component with '\\'", a.settings.Delimiter)).
			Wrap(err).
			BuildError()
	}
	return n, nil
}

// fail renders err on stderr and converts it into an ExitError carrying the
// matching exit code. In verbose mode the catalog guidance for the error is
// rendered below the message.
func (a *App) fail(cmd *cobra.Command, err error) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	fmt.Fprintln(a.stderr, ErrorStyle.Render("Error:"), formatErrorForDisplay(err, a.verbose))
	if a.verbose {
		renderIssue(a.stderr, issue.ForError(err), a.glamourStyle(), a.logger)
	}
	return &ExitError{Code: exitCodeFor(err)}
}

// glamourStyle picks the markdown style for the configured color scheme.
func (a *App) glamourStyle() string {
	if a.settings != nil && a.settings.UI.ColorScheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// renderIssue prints the catalog entry for an error, if there is one.
func renderIssue(w io.Writer, entry *issue.Issue, style string, logger *log.Logger) {
	if entry == nil {
		return
	}
	rendered, err := entry.Render(style)
	if err != nil {
		logger.Warn("failed to render issue catalog entry", "issueID", entry.Id(), "error", err)
		return
	}
	fmt.Fprint(w, rendered)
}

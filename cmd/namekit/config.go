// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/namekit/namekit/internal/config"
	"github.com/namekit/namekit/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `namekit config` command tree. Its
// subcommands load configuration themselves so that a broken config file
// can still be inspected and replaced.
func newConfigCommand(app *App, flags *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage namekit configuration",
		Long: `Manage namekit configuration.

Configuration is stored in:
  - Linux: $XDG_CONFIG_HOME/namekit/config.cue (default ~/.config)
  - macOS: ~/Library/Application Support/namekit/config.cue
  - Windows: %APPDATA%\namekit\config.cue

A config.cue in the working directory is used when none exists there.
Every value can be overridden with NAMEKIT_* environment variables, for
example NAMEKIT_DELIMITER=/ or NAMEKIT_UI_VERBOSE=true.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.applyVerbose(flags.verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, app, flags)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, created, err := config.CreateDefaultConfig("")
			if err != nil {
				return app.fail(cmd, err)
			}
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration already exists at %s\n", WarningStyle.Render("!"), path)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgDir, err := config.ConfigDir()
			if err != nil {
				return app.fail(cmd, err)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Config directory: %s\n", cfgDir)
			fmt.Fprintf(w, "Config file: %s\n", filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
			return nil
		},
	})

	var format string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE or TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: flags.configPath})
			if err != nil {
				return app.fail(cmd, err)
			}

			switch format {
			case "cue":
				fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(cfg))
			case "toml":
				out, err := config.GenerateTOML(cfg)
				if err != nil {
					return app.fail(cmd, err)
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
			default:
				return app.fail(cmd, issue.NewErrorContext().
					WithOperation("dump configuration").
					WithSuggestion("Use --format cue or --format toml").
					Wrap(fmt.Errorf("unknown format %q", format)).
					BuildError())
			}
			return nil
		},
	}
	dumpCmd.Flags().StringVar(&format, "format", "cue", "output format: cue or toml")
	cfgCmd.AddCommand(dumpCmd)

	return cfgCmd
}

func showConfig(cmd *cobra.Command, app *App, flags *rootFlags) error {
	opts := config.LoadOptions{ConfigFilePath: flags.configPath}
	cfg, err := app.Config.Load(cmd.Context(), opts)
	if err != nil {
		fmt.Fprintln(app.stderr, ErrorStyle.Render("Error:"), formatErrorForDisplay(err, app.verbose))
		renderIssue(app.stderr, issue.Get(issue.ConfigLoadFailedId), app.glamourStyle(), app.logger)
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: exitCodeFor(err)}
	}

	w := cmd.OutOrStdout()
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	path, pathErr := config.ResolvePath(opts)
	switch {
	case pathErr != nil:
		app.logger.Warn("failed to resolve config path", "error", pathErr)
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(unknown)"))
	case path == "":
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	default:
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), path)
	}
	fmt.Fprintln(w)

	printConfigValues(w, cfg, keyStyle.Render, valueStyle.Render)
	return nil
}

func printConfigValues(w io.Writer, cfg *config.Config, key, value func(...string) string) {
	fmt.Fprintf(w, "%s: %s\n", key("delimiter"), value(cfg.Delimiter.String()))
	fmt.Fprintf(w, "%s: %s\n", key("variant"), value(cfg.Variant.String()))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", key("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", value(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "  verbose: %s\n", value(fmt.Sprintf("%v", cfg.UI.Verbose)))
}

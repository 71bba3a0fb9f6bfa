// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"os"

	"github.com/namekit/namekit/internal/config"

	"github.com/charmbracelet/log"
)

type (
	// Dependencies holds the collaborators NewApp wires into an App. Nil
	// fields are replaced by production defaults.
	Dependencies struct {
		Config config.Provider
		Stdout io.Writer
		Stderr io.Writer
	}

	// App carries the CLI's collaborators and the settings resolved for the
	// current invocation.
	App struct {
		Config config.Provider

		stdout io.Writer
		stderr io.Writer

		// Populated by the root command's PersistentPreRunE.
		settings *config.Config
		verbose  bool
		logger   *log.Logger
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config:   deps.Config,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
		settings: config.DefaultConfig(),
		logger:   newLogger(deps.Stderr, false),
	}
}

// newLogger builds the CLI logger: Debug when verbose, Warn otherwise.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "namekit",
		Level:  level,
	})
}

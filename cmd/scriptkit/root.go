// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/invowk/scriptkit/internal/issue"
	"github.com/invowk/scriptkit/pkg/printout"
	"github.com/invowk/scriptkit/pkg/types"

	"github.com/charmbracelet/fang"
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

// NewRootCommand creates the scriptkit command tree bound to app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scriptkit",
		Short: "Helpers for writing task scripts",
		Long: `scriptkit bundles the helpers task scripts are built from: styled
terminal output, task contexts rendered into command templates, and
validators for path arguments.

Examples:
  scriptkit styleguide                       Show every output style
  scriptkit context --preset venv            Show the virtualenv context
  scriptkit run "ls {BASE_DIR}"              Run a command template
  scriptkit check dir ./build --name dest    Validate a directory argument
  scriptkit config show                      Show current configuration`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd.Context())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.flags.configPath, "config", "", "config file (default is config.cue in the user config dir, then ./scriptkit.cue)")
	flags.BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output")
	flags.StringVar(&app.flags.color, "color", "", "color output: auto, always or never (default from config)")

	rootCmd.AddCommand(
		newStyleguideCommand(app),
		newContextCommand(app),
		newRunCommand(app),
		newCheckCommand(app),
		newConfigCommand(app),
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

// Execute runs the CLI and exits the process on failure. This is called by
// main.main().
func Execute() {
	app := NewApp(Dependencies{})
	if err := run(context.Background(), app, NewRootCommand(app)); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(int(types.ExitFailure))
	}
}

func run(ctx context.Context, app *App, rootCmd *cobra.Command) error {
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)
	//nolint:wrapcheck
	return fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(errorHandler(app)),
	)
}

// errorHandler renders command errors. Aborts and already-reported failures
// print nothing; configuration errors are rendered with their suggestions.
func errorHandler(app *App) fang.ErrorHandler {
	return func(w io.Writer, styles fang.Styles, err error) {
		if printout.IsAbort(err) {
			return
		}
		var exitErr *ExitError
		if errors.As(err, &exitErr) && exitErr.Err == nil {
			return
		}
		var ae *issue.ActionableError
		if errors.As(err, &ae) {
			ae.Render(app.printer(app.stderr), app.flags.verbose)
			return
		}
		fang.DefaultErrorHandler(w, styles, err)
	}
}

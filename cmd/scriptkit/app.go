// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/invowk/scriptkit/internal/config"
	"github.com/invowk/scriptkit/pkg/printout"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. Command handlers
	// receive an App and read the configuration loaded for the invocation.
	App struct {
		Config config.Provider
		stdout io.Writer
		stderr io.Writer

		flags  rootFlags
		loaded *config.Loaded
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdout io.Writer
		Stderr io.Writer
	}

	// rootFlags holds the persistent flag values.
	rootFlags struct {
		configPath string
		verbose    bool
		color      string
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
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
}

// setup loads the configuration, applies the global flag overrides and
// installs the diagnostic logger. It runs before every command.
func (a *App) setup(ctx context.Context) error {
	loaded, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.flags.configPath})
	if err != nil {
		return err
	}
	if a.flags.color != "" {
		mode := printout.ColorMode(a.flags.color)
		if err := mode.Validate(); err != nil {
			return err
		}
		loaded.Output.Color = mode
	}
	a.loaded = loaded

	level := loaded.Log.Level.SlogLevel()
	if a.flags.verbose {
		level = slog.LevelDebug
	}
	a.installLogger(level)
	return nil
}

func (a *App) installLogger(level slog.Level) {
	logger := log.NewWithOptions(a.stderr, log.Options{
		Prefix: "scriptkit",
		Level:  log.Level(level),
	})
	slog.SetDefault(slog.New(logger))
}

// currentConfig returns the configuration loaded by setup, or the defaults when
// setup did not run.
func (a *App) currentConfig() *config.Config {
	if a.loaded == nil {
		return config.DefaultConfig()
	}
	return a.loaded.Config
}

// printer returns a Printer writing to w with the configured theme.
func (a *App) printer(w io.Writer) *printout.Printer {
	return printout.New(w, a.currentConfig().PrinterOptions()...)
}

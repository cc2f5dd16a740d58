// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/invowk/scriptkit/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `scriptkit config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage scriptkit configuration",
		Long: `Manage scriptkit configuration.

Configuration is read from the --config file, else from:
  - Linux: ~/.config/scriptkit/config.cue
  - macOS: ~/Library/Application Support/scriptkit/config.cue
  - Windows: %APPDATA%\scriptkit\config.cue
else from ./scriptkit.cue. SCRIPTKIT_* environment variables override file
values (SCRIPTKIT_OUTPUT_COLOR for output.color).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if app.loaded != nil && app.loaded.Path != "" {
				fmt.Fprintf(w, "// source: %s\n", app.loaded.Path)
			}
			_, err := fmt.Fprint(w, config.GenerateCUE(app.currentConfig()))
			return err
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the user configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt))
			return err
		},
	})

	return cfgCmd
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/spf13/cobra"

func newStyleguideCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "styleguide",
		Short: "Print a sample of every output style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.printer(cmd.OutOrStdout()).Styleguide()
			return nil
		},
	}
}

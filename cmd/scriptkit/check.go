// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/scriptkit/pkg/pathcheck"
	"github.com/invowk/scriptkit/pkg/printout"
	"github.com/invowk/scriptkit/pkg/types"

	"github.com/spf13/cobra"
)

type checkFunc func(v *pathcheck.Validator, value string, opts ...pathcheck.CheckOption) (pathcheck.Outcome, error)

func newCheckCommand(app *App) *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a path argument",
		Long: `Validate a path argument the way task scripts do.

The check fails with exit status 1 when the value is empty, does not exist or
has the wrong type. With --severity critical (the default) the failure is
rendered as an error block; other severities report the message and the
check still exits with status 1.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	checkCmd.AddCommand(
		newCheckSubcommand(app, "path", "Check that a path exists", (*pathcheck.Validator).ValidatePath),
		newCheckSubcommand(app, "dir", "Check that a path exists and is not a file", (*pathcheck.Validator).ValidateDirPath),
		newCheckSubcommand(app, "file", "Check that a path exists and is not a directory", (*pathcheck.Validator).ValidateFilePath),
	)
	return checkCmd
}

func newCheckSubcommand(app *App, use, short string, check checkFunc) *cobra.Command {
	var (
		name     string
		severity = printout.SeverityCritical
	)

	cmd := &cobra.Command{
		Use:   use + " [VALUE]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var value string
			if len(args) > 0 {
				value = args[0]
			}

			p := app.printer(cmd.OutOrStdout())
			v := pathcheck.New(p, pathcheck.WithName(name), pathcheck.WithSeverity(severity))
			out, err := check(v, value)
			if err != nil {
				return err
			}
			if !out.Valid() {
				return &ExitError{Code: types.ExitFailure}
			}
			p.Success(out.Path)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", pathcheck.DefaultName, "argument name used in messages")
	cmd.Flags().Var(&severity, "severity", "severity of failure reports (info, warning, error, critical, ...)")
	return cmd
}

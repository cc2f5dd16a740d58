// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"github.com/invowk/scriptkit/pkg/runtime"
	"github.com/invowk/scriptkit/pkg/taskctx"

	"github.com/spf13/cobra"
)

func newRunCommand(app *App) *cobra.Command {
	var (
		flags       contextFlags
		runtimeName string
		echo        bool
		warn        bool
		hide        bool
	)

	cmd := &cobra.Command{
		Use:   "run TEMPLATE",
		Short: "Render a command template against a context and run it",
		Long: `Render a command template against the context of a preset component and
run it. {NAME} fields are replaced by context values; {{ and }} produce
literal braces.

The command runs on the native shell unless --runtime virtual selects the
embedded POSIX interpreter. A non-zero exit status fails the command unless
--warn is set.`,
		Example: `  scriptkit run "ls {BASE_DIR}"
  scriptkit run --preset venv "{PYTHON_BIN} -m pip install -e {BASE_DIR}"
  scriptkit run --set ARGS=-l "ls {ARGS}"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.currentConfig()

			typ := cfg.Runner.Runtime
			if cmd.Flags().Changed("runtime") {
				typ = runtime.Type(runtimeName)
			}
			if err := typ.Validate(); err != nil {
				return err
			}
			exec, err := runtime.NewRegistry(cfg.Runner.Shell).Get(typ)
			if err != nil {
				return err
			}

			c, err := flags.component()
			if err != nil {
				return err
			}
			extra, err := flags.extra()
			if err != nil {
				return err
			}

			p := app.printer(cmd.OutOrStdout())
			opts := []runtime.Option{
				runtime.WithStdout(cmd.OutOrStdout()),
				runtime.WithStderr(cmd.ErrOrStderr()),
				runtime.WithHide(hide),
				runtime.WithWarn(warn),
			}
			if cfg.Runner.Dir != "" {
				opts = append(opts, runtime.WithDir(cfg.Runner.Dir))
			}
			if echo || cfg.Runner.Echo {
				opts = append(opts, runtime.WithEcho(func(command string) { p.Info(command) }))
			}

			_, err = taskctx.Run(cmd.Context(), exec, c, args[0], extra, opts...)
			var exitErr *runtime.ExitStatusError
			if errors.As(err, &exitErr) {
				return &ExitError{Code: exitErr.ExitCode, Err: err}
			}
			return err
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&runtimeName, "runtime", string(runtime.TypeNative), "executor: native or virtual (default from config)")
	cmd.Flags().BoolVar(&echo, "echo", false, "print the command before running it")
	cmd.Flags().BoolVar(&warn, "warn", false, "do not fail on a non-zero exit status")
	cmd.Flags().BoolVar(&hide, "hide", false, "do not print the command output")
	return cmd
}

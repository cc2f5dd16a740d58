// SPDX-License-Identifier: MPL-2.0

package taskctx

import (
	"context"
	"log/slog"

	"github.com/invowk/scriptkit/pkg/runtime"
)

// Run formats template with the context of c plus extra, then runs the
// resulting command once with exec. opts are passed to the executor.
//
// Build and Format errors are returned without running anything. Otherwise
// the executor's result is returned along with its Error, which is set when
// the command could not run or exited non-zero without runtime.WithWarn.
func Run(ctx context.Context, exec runtime.Executor, c Component, template string, extra map[string]any, opts ...runtime.Option) (*runtime.Result, error) {
	vars, err := Build(c, extra)
	if err != nil {
		return nil, err
	}
	command, err := Format(template, vars)
	if err != nil {
		return nil, err
	}

	slog.Debug("running task command", "runtime", exec.Name(), "command", command)
	res := exec.Run(ctx, command, opts...)
	return res, res.Error
}

// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/invowk/scriptkit/pkg/types"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualRuntime executes commands with the embedded mvdan/sh interpreter,
// so they behave the same on every platform.
type VirtualRuntime struct{}

// NewVirtualRuntime creates a new virtual runtime.
func NewVirtualRuntime() *VirtualRuntime {
	return &VirtualRuntime{}
}

// Name returns the runtime name.
func (r *VirtualRuntime) Name() string { return string(TypeVirtual) }

// Parse checks command for shell syntax errors.
func (r *VirtualRuntime) Parse(command string) (*syntax.File, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(command), "command")
	if err != nil {
		return nil, fmt.Errorf("command syntax error: %w", err)
	}
	return prog, nil
}

// Run interprets command in-process.
func (r *VirtualRuntime) Run(ctx context.Context, command string, opts ...Option) *Result {
	o := newRunOptions(opts)
	if o.echo != nil {
		o.echo(command)
	}

	prog, err := r.Parse(command)
	if err != nil {
		return newErrorResult(command, err)
	}
	workDir, err := o.workDir()
	if err != nil {
		return newErrorResult(command, fmt.Errorf("failed to resolve working directory: %w", err))
	}

	var captured capturedOutput
	stdout, stderr := captured.writers(o)
	runner, err := interp.New(
		interp.Dir(workDir),
		interp.Env(expand.ListEnviron(o.environ()...)),
		interp.StdIO(nil, stdout, stderr),
	)
	if err != nil {
		return newErrorResult(command, fmt.Errorf("failed to create interpreter: %w", err))
	}

	slog.Debug("running command", "runtime", r.Name(), "command", command)
	result := &Result{Command: command}
	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			result.ExitCode = types.ExitCode(status)
		} else {
			result.ExitCode = types.ExitFailure
			result.Error = fmt.Errorf("command execution failed: %w", err)
		}
	}
	slog.Debug("command finished", "runtime", r.Name(), "exit_code", result.ExitCode)
	return captured.fill(result).finish(o.warn)
}

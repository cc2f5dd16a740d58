// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/invowk/scriptkit/pkg/platform"
	"github.com/invowk/scriptkit/pkg/types"
)

// NativeRuntime executes commands using the host shell.
type NativeRuntime struct {
	// Shell overrides the default shell.
	Shell string
	// ShellArgs are arguments passed to the shell before the command.
	ShellArgs []string
}

// NewNativeRuntime creates a native runtime using the platform shell.
func NewNativeRuntime() *NativeRuntime {
	return &NativeRuntime{}
}

// Name returns the runtime name.
func (r *NativeRuntime) Name() string { return string(TypeNative) }

// Run executes command with the host shell.
func (r *NativeRuntime) Run(ctx context.Context, command string, opts ...Option) *Result {
	o := newRunOptions(opts)
	if o.echo != nil {
		o.echo(command)
	}

	shell, err := r.getShell()
	if err != nil {
		return newErrorResult(command, err)
	}
	workDir, err := o.workDir()
	if err != nil {
		return newErrorResult(command, fmt.Errorf("failed to resolve working directory: %w", err))
	}

	args := append(r.getShellArgs(shell), command)
	cmd := exec.CommandContext(ctx, shell, args...)
	cmd.Dir = workDir
	cmd.Env = o.environ()

	var captured capturedOutput
	cmd.Stdout, cmd.Stderr = captured.writers(o)

	slog.Debug("running command", "runtime", r.Name(), "shell", shell, "command", command)
	result := captured.fill(extractExitCode(command, cmd.Run()))
	slog.Debug("command finished", "runtime", r.Name(), "exit_code", result.ExitCode)
	return result.finish(o.warn)
}

// extractExitCode determines the result of a finished process.
func extractExitCode(command string, err error) *Result {
	if err == nil {
		return &Result{Command: command}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := types.ExitCode(exitErr.ExitCode())
		if validateErr := code.Validate(); validateErr != nil {
			return newErrorResult(command, validateErr)
		}
		return &Result{Command: command, ExitCode: code}
	}

	// command not found, permission denied, cancelled before start
	return newErrorResult(command, fmt.Errorf("failed to execute command: %w", err))
}

// getShell determines which shell to use.
func (r *NativeRuntime) getShell() (string, error) {
	if r.Shell != "" {
		return r.Shell, nil
	}
	if sh, err := exec.LookPath(platform.DefaultShell()); err == nil {
		return sh, nil
	}
	return "", errors.New("no shell found")
}

// getShellArgs returns the arguments to pass to the shell.
func (r *NativeRuntime) getShellArgs(shell string) []string {
	if len(r.ShellArgs) > 0 {
		return append([]string(nil), r.ShellArgs...)
	}

	base := strings.TrimSuffix(filepath.Base(shell), ".exe")
	switch base {
	case "cmd":
		return []string{"/C"}
	case "powershell", "pwsh":
		return []string{"-NoProfile", "-Command"}
	default:
		return []string{"-c"}
	}
}

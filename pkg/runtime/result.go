// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"fmt"

	"github.com/invowk/scriptkit/pkg/types"
)

// ErrNonZeroExit is the sentinel error wrapped by ExitStatusError.
var ErrNonZeroExit = errors.New("command exited with non-zero status")

type (
	// Result contains the result of a command execution.
	Result struct {
		// Command is the command string that was run.
		Command string
		// Stdout contains captured standard output.
		Stdout string
		// Stderr contains captured standard error.
		Stderr string
		// ExitCode is the exit status of the command.
		ExitCode types.ExitCode
		// Error is set when the command could not run, or exited non-zero
		// without WithWarn.
		Error error
	}

	// ExitStatusError reports a command that ran and exited non-zero.
	ExitStatusError struct {
		Command  string
		ExitCode types.ExitCode
	}
)

// Error implements the error interface.
func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("command %q exited with status %s", e.Command, e.ExitCode)
}

// Unwrap returns ErrNonZeroExit so callers can use errors.Is for programmatic detection.
func (e *ExitStatusError) Unwrap() error { return ErrNonZeroExit }

// Success returns true if the command exited zero without error.
func (r *Result) Success() bool {
	return r.ExitCode.IsSuccess() && r.Error == nil
}

// Failed is the negation of Success.
func (r *Result) Failed() bool { return !r.Success() }

// newErrorResult creates a Result for a command that could not be run.
func newErrorResult(command string, err error) *Result {
	return &Result{Command: command, ExitCode: types.ExitFailure, Error: err}
}

// finish applies the warn policy to a completed run.
func (r *Result) finish(warn bool) *Result {
	if r.Error == nil && !r.ExitCode.IsSuccess() && !warn {
		r.Error = &ExitStatusError{Command: r.Command, ExitCode: r.ExitCode}
	}
	return r
}

// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"io"
	"os"
	"path/filepath"
)

type (
	// Option configures a single Run call.
	Option func(*runOptions)

	runOptions struct {
		dir    string
		env    map[string]string
		stdout io.Writer
		stderr io.Writer
		hide   bool
		warn   bool
		echo   func(command string)
	}
)

// WithDir sets the working directory of the command.
func WithDir(dir string) Option {
	return func(o *runOptions) {
		o.dir = dir
	}
}

// WithEnv adds environment variables on top of the inherited environment.
// Repeated calls merge; later values win.
func WithEnv(env map[string]string) Option {
	return func(o *runOptions) {
		if o.env == nil {
			o.env = make(map[string]string, len(env))
		}
		for k, v := range env {
			o.env[k] = v
		}
	}
}

// WithStdout sets where standard output is streamed while running.
func WithStdout(w io.Writer) Option {
	return func(o *runOptions) {
		o.stdout = w
	}
}

// WithStderr sets where standard error is streamed while running.
func WithStderr(w io.Writer) Option {
	return func(o *runOptions) {
		o.stderr = w
	}
}

// WithHide disables streaming; output is only captured into the Result.
func WithHide(hide bool) Option {
	return func(o *runOptions) {
		o.hide = hide
	}
}

// WithWarn makes a non-zero exit status a plain result instead of an error.
func WithWarn(warn bool) Option {
	return func(o *runOptions) {
		o.warn = warn
	}
}

// WithEcho calls echo with the command before it runs.
func WithEcho(echo func(command string)) Option {
	return func(o *runOptions) {
		o.echo = echo
	}
}

func newRunOptions(opts []Option) *runOptions {
	o := &runOptions{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// environ returns the process environment followed by the configured
// overrides.
func (o *runOptions) environ() []string {
	return append(os.Environ(), EnvToSlice(o.env)...)
}

// workDir resolves the configured directory, or "" for the current one.
func (o *runOptions) workDir() (string, error) {
	if o.dir == "" {
		return "", nil
	}
	return filepath.Abs(o.dir)
}

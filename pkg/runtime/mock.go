// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrUnexpectedCommand is returned by Mock for commands with no canned result.
var ErrUnexpectedCommand = errors.New("unexpected command")

// Mock is an Executor returning pre-registered results keyed by the exact
// command string. It records every command it is asked to run.
type Mock struct {
	mu      sync.Mutex
	results map[string]Result
	calls   []string
}

// NewMock creates a Mock with the given canned results. A key mapped to
// the zero Result succeeds with no output.
func NewMock(results map[string]Result) *Mock {
	m := &Mock{results: make(map[string]Result, len(results))}
	for cmd, res := range results {
		m.results[cmd] = res
	}
	return m
}

// Name returns the runtime name.
func (m *Mock) Name() string { return "mock" }

// On registers result for command.
func (m *Mock) On(command string, result Result) *Mock {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[command] = result
	return m
}

// Calls returns the commands run so far, in order.
func (m *Mock) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Run returns the canned result for command. Canned output is written to
// the stream targets unless hidden.
func (m *Mock) Run(_ context.Context, command string, opts ...Option) *Result {
	o := newRunOptions(opts)
	if o.echo != nil {
		o.echo(command)
	}

	m.mu.Lock()
	m.calls = append(m.calls, command)
	canned, ok := m.results[command]
	m.mu.Unlock()

	if !ok {
		return newErrorResult(command, fmt.Errorf("%w: %q", ErrUnexpectedCommand, command))
	}

	result := canned
	result.Command = command
	if !o.hide {
		writeTo(o.stdout, result.Stdout)
		writeTo(o.stderr, result.Stderr)
	}
	return result.finish(o.warn)
}

func writeTo(w io.Writer, s string) {
	if w == nil || s == "" {
		return
	}
	_, _ = io.WriteString(w, s)
}

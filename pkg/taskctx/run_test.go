// SPDX-License-Identifier: MPL-2.0

package taskctx

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/invowk/scriptkit/pkg/runtime"
	"github.com/invowk/scriptkit/pkg/types"
)

type listingComponent struct {
	Base
	LsBin string `ctx:"LS_BIN"`
}

func (c listingComponent) ContextVars() []string {
	return append(c.Base.ContextVars(), "LS_BIN")
}

func TestRun(t *testing.T) {
	t.Parallel()

	listing := listingComponent{Base: NewBase(), LsBin: "ls"}

	vars, err := Build(listing, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := map[string]any{"BASE_DIR": types.FilesystemPath("."), "LS_BIN": "ls"}
	if diff := cmp.Diff(want, vars.Map()); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}

	mock := runtime.NewMock(map[string]runtime.Result{
		"ls":    {Stdout: "listing basic"},
		"ls -l": {Stdout: "listing list"},
	})

	res, err := Run(context.Background(), mock, listing, "{LS_BIN}", nil, runtime.WithHide(true))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Command != "ls" || res.Stdout != "listing basic" {
		t.Errorf("Run() = %+v", res)
	}

	res, err = Run(context.Background(), mock, listing, "{LS_BIN} {args}", map[string]any{"args": "-l"}, runtime.WithHide(true))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Command != "ls -l" || res.Stdout != "listing list" {
		t.Errorf("Run() = %+v", res)
	}
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	listing := listingComponent{Base: NewBase(), LsBin: "ls"}

	tests := []struct {
		name      string
		component Component
		template  string
		wantErr   error
		wantCalls int
	}{
		{"build error", undefinedComponent{Base: NewBase()}, "{BASE_DIR}", ErrUndefinedContextVars, 0},
		{"missing key", listing, "{LS_BIN} {args}", ErrMissingKey, 0},
		{"malformed", listing, "{LS_BIN", ErrMalformedTemplate, 0},
		{"non-zero exit", listing, "{LS_BIN} missing", runtime.ErrNonZeroExit, 1},
		{"unknown command", listing, "rm {BASE_DIR}", runtime.ErrUnexpectedCommand, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := runtime.NewMock(map[string]runtime.Result{
				"ls missing": {ExitCode: 2, Stderr: "no such file"},
			})
			_, err := Run(context.Background(), mock, tt.component, tt.template, nil, runtime.WithHide(true))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if got := len(mock.Calls()); got != tt.wantCalls {
				t.Errorf("executor called %d times, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestRunWarn(t *testing.T) {
	t.Parallel()

	mock := runtime.NewMock(map[string]runtime.Result{"ls missing": {ExitCode: 2}})
	res, err := Run(context.Background(), mock, listingComponent{LsBin: "ls"}, "{LS_BIN} missing", nil,
		runtime.WithHide(true), runtime.WithWarn(true))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.ExitCode != 2 {
		t.Errorf("ExitCode = %d, want 2", res.ExitCode)
	}
}

func TestRunVirtual(t *testing.T) {
	t.Parallel()

	res, err := Run(context.Background(), runtime.NewVirtualRuntime(), NewVirtualEnv("/opt/project"),
		"echo {PYTHON_INTERPRETER} {VENV_PATH}", nil, runtime.WithHide(true))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Stdout != "python3 /opt/project/.venv\n" {
		t.Errorf("Stdout = %q", res.Stdout)
	}
}

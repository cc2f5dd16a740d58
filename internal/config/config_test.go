// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/invowk/scriptkit/internal/issue"
	"github.com/invowk/scriptkit/internal/testutil"
	"github.com/invowk/scriptkit/pkg/cueutil"
	"github.com/invowk/scriptkit/pkg/printout"
	"github.com/invowk/scriptkit/pkg/runtime"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	loaded, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Path != "" {
		t.Errorf("Path = %q, want empty", loaded.Path)
	}
	if diff := cmp.Diff(DefaultConfig(), loaded.Config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.cue", `
output: {
	color:  "never"
	indent: "    "
	header_surround: ["[ ", " ]"]
}
runner: {
	runtime: "virtual"
	echo:    true
}
log: level: "debug"
`)

	loaded, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Path != path {
		t.Errorf("Path = %q, want %q", loaded.Path, path)
	}

	want := DefaultConfig()
	want.Output.Color = printout.ColorNever
	want.Output.Indent = "    "
	want.Output.HeaderSurround = []string{"[ ", " ]"}
	want.Runner.Runtime = runtime.TypeVirtual
	want.Runner.Echo = true
	want.Log.Level = LogLevelDebug
	if diff := cmp.Diff(want, loaded.Config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Parallel()

	path := testutil.WriteFile(t, t.TempDir(), "custom.cue", `runner: shell: "bash"`)

	loaded, err := NewProvider().Load(t.Context(), LoadOptions{
		ConfigFilePath: path,
		ConfigDirPath:  t.TempDir(),
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Runner.Shell != "bash" {
		t.Errorf("Runner.Shell = %q, want %q", loaded.Runner.Shell, "bash")
	}
	if loaded.Output.Color != printout.ColorAuto {
		t.Errorf("Output.Color = %q, want default %q", loaded.Output.Color, printout.ColorAuto)
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.cue")
	_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigFilePath: missing})
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("Load() error = %v, want ErrConfigNotFound", err)
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("Load() error = %T, want *issue.ActionableError", err)
	}
	if ae.Resource != missing {
		t.Errorf("Resource = %q, want %q", ae.Resource, missing)
	}
	if !ae.HasSuggestions() {
		t.Error("expected suggestions")
	}
}

func TestLoad_SchemaErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		wantPath string
	}{
		{
			name:     "invalid color",
			content:  `output: color: "sometimes"`,
			wantPath: "output.color",
		},
		{
			name:     "invalid runtime",
			content:  `runner: runtime: "container"`,
			wantPath: "runner.runtime",
		},
		{
			name:     "empty shell",
			content:  `runner: shell: ""`,
			wantPath: "runner.shell",
		},
		{
			name:     "unknown field",
			content:  `output: colour: "never"`,
			wantPath: "colour",
		},
		{
			name:     "surround needs two strings",
			content:  `output: header_surround: ["only"]`,
			wantPath: "header_surround",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			testutil.WriteFile(t, dir, "config.cue", tt.content)

			_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: dir})
			if !errors.Is(err, cueutil.ErrValidation) {
				t.Fatalf("Load() error = %v, want ErrValidation", err)
			}
			if !strings.Contains(err.Error(), tt.wantPath) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantPath)
			}
		})
	}
}

func TestLoad_SyntaxError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteFile(t, dir, "config.cue", `output: {`)

	_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: dir})
	if err == nil {
		t.Fatal("Load() error = nil, want syntax error")
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("Load() error = %T, want *issue.ActionableError", err)
	}
	if ae.Operation != "load configuration" {
		t.Errorf("Operation = %q", ae.Operation)
	}
}

// Environment tests cannot run in parallel because t.Setenv modifies the
// process environment.

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SCRIPTKIT_OUTPUT_COLOR", "always")
	t.Setenv("SCRIPTKIT_RUNNER_RUNTIME", "virtual")

	dir := t.TempDir()
	testutil.WriteFile(t, dir, "config.cue", `output: color: "never"`)

	loaded, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Output.Color != printout.ColorAlways {
		t.Errorf("Output.Color = %q, want %q", loaded.Output.Color, printout.ColorAlways)
	}
	if loaded.Runner.Runtime != runtime.TypeVirtual {
		t.Errorf("Runner.Runtime = %q, want %q", loaded.Runner.Runtime, runtime.TypeVirtual)
	}
}

func TestLoad_InvalidEnvOverride(t *testing.T) {
	t.Setenv("SCRIPTKIT_LOG_LEVEL", "loud")

	_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, ErrInvalidLogLevel) {
		t.Fatalf("Load() error = %v, want ErrInvalidLogLevel", err)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Load() error = %v, want context.Canceled", err)
	}
}

func TestGenerateCUE_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Output.Color = printout.ColorNever
	cfg.Output.CriticalSurround = []string{"!! ", " !!"}
	cfg.Runner.Shell = "bash"
	cfg.Runner.Dir = "/tmp"
	cfg.Log.Level = LogLevelInfo

	dir := t.TempDir()
	testutil.WriteFile(t, dir, "config.cue", GenerateCUE(cfg))

	loaded, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(cfg, loaded.Config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("APPDATA", "/appdata")

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error = %v", err)
	}
	if filepath.Base(dir) != AppName {
		t.Errorf("ConfigDir() = %q, want a %q directory", dir, AppName)
	}
}

func TestLoad_LocalFile(t *testing.T) {
	// Not parallel: changes the working directory.
	dir := t.TempDir()
	testutil.WriteFile(t, dir, LocalConfigFile, `output: indent: "\t"`)
	t.Cleanup(testutil.MustChdir(t, dir))

	loaded, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Path != LocalConfigFile {
		t.Errorf("Path = %q, want %q", loaded.Path, LocalConfigFile)
	}
	if loaded.Output.Indent != "\t" {
		t.Errorf("Output.Indent = %q, want a tab", loaded.Output.Indent)
	}
}

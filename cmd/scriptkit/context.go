// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"maps"

	"github.com/invowk/scriptkit/pkg/taskctx"
	"github.com/invowk/scriptkit/pkg/types"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	presetBase = "base"
	presetVenv = "venv"
)

var errUnknownPreset = errors.New("unknown preset")

// contextFlags select the component and overrides a context is built from.
type contextFlags struct {
	preset    string
	baseDir   string
	set       []string
	extraFile string
}

func (f *contextFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.preset, "preset", presetBase, "context preset: base or venv")
	flags.StringVar(&f.baseDir, "base-dir", string(taskctx.DefaultBaseDir), "project base directory")
	flags.StringArrayVar(&f.set, "set", nil, "set a context variable (KEY=VALUE, repeatable)")
	flags.StringVar(&f.extraFile, "extra-file", "", "load context variables from a .toml, .yaml or .cue file")
}

// component returns the preset component rooted at the base directory.
func (f *contextFlags) component() (taskctx.Component, error) {
	baseDir := types.FilesystemPath(f.baseDir)
	if err := baseDir.Validate(); err != nil {
		return nil, err
	}
	switch f.preset {
	case presetBase:
		return taskctx.Base{BaseDir: baseDir}, nil
	case presetVenv:
		return taskctx.NewVirtualEnv(baseDir), nil
	default:
		return nil, fmt.Errorf("%w %q (valid: %s, %s)", errUnknownPreset, f.preset, presetBase, presetVenv)
	}
}

// extra merges the extra file with the --set assignments, which win.
func (f *contextFlags) extra() (map[string]any, error) {
	extra := make(map[string]any)
	if f.extraFile != "" {
		fromFile, err := taskctx.LoadExtra(f.extraFile)
		if err != nil {
			return nil, err
		}
		maps.Copy(extra, fromFile)
	}
	assigned, err := taskctx.ParseAssignments(f.set)
	if err != nil {
		return nil, err
	}
	maps.Copy(extra, assigned)
	return extra, nil
}

func newContextCommand(app *App) *cobra.Command {
	var flags contextFlags

	cmd := &cobra.Command{
		Use:   "context",
		Short: "Print the context of a preset component",
		Long: `Print the context of a preset component as a tree of NAME: value
pairs. The base preset exposes BASE_DIR; the venv preset adds the paths of a
Python virtual environment under the base directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.component()
			if err != nil {
				return err
			}
			extra, err := flags.extra()
			if err != nil {
				return err
			}
			tctx, err := taskctx.Build(c, extra)
			if err != nil {
				return err
			}

			items := make([]string, 0, tctx.Len())
			for name, value := range tctx.All() {
				items = append(items, fmt.Sprintf("%s: %v", name, value))
			}
			app.printer(cmd.OutOrStdout()).TreeList(items, 0)
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

// SPDX-License-Identifier: MPL-2.0

package taskctx

import (
	"github.com/invowk/scriptkit/pkg/fspath"
	"github.com/invowk/scriptkit/pkg/types"
)

// DefaultBaseDir is the base directory of the presets.
const DefaultBaseDir types.FilesystemPath = "."

// Defaults of the VirtualEnv preset.
const (
	DefaultPythonInterpreter = "python3"
	DefaultVenvDir           = ".venv"
)

type (
	// Base is the minimal component, exposing the project base directory.
	// Embed it to build task components.
	Base struct {
		BaseDir types.FilesystemPath `ctx:"BASE_DIR"`
	}

	// VirtualEnv extends Base with the paths of a Python virtual environment
	// living under the base directory.
	VirtualEnv struct {
		Base

		PythonInterpreter string               `ctx:"PYTHON_INTERPRETER"`
		VenvPath          types.FilesystemPath `ctx:"VENV_PATH"`
		BinPath           types.FilesystemPath `ctx:"BIN_PATH"`
		PythonBin         types.FilesystemPath `ctx:"PYTHON_BIN"`
		InvokeBin         types.FilesystemPath `ctx:"INVOKE_BIN"`
	}
)

// NewBase returns a Base rooted at the current directory.
func NewBase() Base {
	return Base{BaseDir: DefaultBaseDir}
}

// ContextVars implements Component.
func (Base) ContextVars() []string {
	return []string{"BASE_DIR"}
}

// NewVirtualEnv returns a VirtualEnv whose paths derive from baseDir
// (DefaultBaseDir when empty).
func NewVirtualEnv(baseDir types.FilesystemPath) VirtualEnv {
	if baseDir.IsEmpty() {
		baseDir = DefaultBaseDir
	}
	venv := fspath.JoinStr(baseDir, DefaultVenvDir)
	bin := fspath.JoinStr(venv, "bin")
	return VirtualEnv{
		Base:              Base{BaseDir: baseDir},
		PythonInterpreter: DefaultPythonInterpreter,
		VenvPath:          venv,
		BinPath:           bin,
		PythonBin:         fspath.JoinStr(bin, "python"),
		InvokeBin:         fspath.JoinStr(bin, "invoke"),
	}
}

// ContextVars implements Component.
func (v VirtualEnv) ContextVars() []string {
	return append(v.Base.ContextVars(),
		"BIN_PATH",
		"INVOKE_BIN",
		"PYTHON_BIN",
		"PYTHON_INTERPRETER",
		"VENV_PATH",
	)
}

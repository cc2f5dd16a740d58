// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// IsWindows reports whether the host is Windows.
func IsWindows() bool { return runtime.GOOS == Windows }

// DefaultShell returns the command interpreter looked up on PATH when no
// shell is configured: cmd on Windows, sh elsewhere.
func DefaultShell() string {
	if IsWindows() {
		return "cmd"
	}
	return "sh"
}

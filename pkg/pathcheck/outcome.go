// SPDX-License-Identifier: MPL-2.0

package pathcheck

import "github.com/invowk/scriptkit/pkg/types"

// Outcome states.
const (
	// StateEmpty means the value was absent.
	StateEmpty State = iota
	// StateFailed means the value was present but did not satisfy the check.
	StateFailed
	// StateValid means the value passed the check.
	StateValid
)

type (
	// State is the tri-state result of a validation.
	State int

	// Outcome is the result of a validation.
	Outcome struct {
		State State
		// Path is the coerced path; only meaningful when State is StateValid.
		Path types.FilesystemPath
	}
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateFailed:
		return "failed"
	case StateValid:
		return "valid"
	default:
		return "unknown"
	}
}

// Valid reports whether the value passed the check.
func (o Outcome) Valid() bool { return o.State == StateValid }

func valid(p types.FilesystemPath) Outcome { return Outcome{State: StateValid, Path: p} }

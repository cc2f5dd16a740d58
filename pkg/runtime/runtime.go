// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Runtime type constants for the executors a Registry can hold.
const (
	TypeNative  Type = "native"
	TypeVirtual Type = "virtual"
)

var (
	// ErrInvalidType is the sentinel error wrapped by InvalidTypeError.
	ErrInvalidType = errors.New("invalid runtime type")

	// ErrNotRegistered is returned by Registry.Get for unknown runtimes.
	ErrNotRegistered = errors.New("runtime not registered")
)

type (
	// Executor runs a command string and reports what happened.
	// Run never panics on command failure; failures are reported through
	// Result.Error and Result.ExitCode.
	Executor interface {
		// Name returns the runtime name.
		Name() string
		// Run executes command and returns its result.
		Run(ctx context.Context, command string, opts ...Option) *Result
	}

	// Type identifies an executor kind.
	Type string

	// InvalidTypeError is returned when a Type is not one of the known kinds.
	InvalidTypeError struct {
		Value Type
	}

	// Registry holds executors by type.
	Registry struct {
		executors map[Type]Executor
	}
)

// Error implements the error interface.
func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid runtime type %q (valid: %s, %s)", e.Value, TypeNative, TypeVirtual)
}

// Unwrap returns ErrInvalidType so callers can use errors.Is for programmatic detection.
func (e *InvalidTypeError) Unwrap() error { return ErrInvalidType }

// String returns the string representation of the Type.
func (t Type) String() string { return string(t) }

// Validate returns nil if the Type is a known executor kind.
func (t Type) Validate() error {
	switch t {
	case TypeNative, TypeVirtual:
		return nil
	default:
		return &InvalidTypeError{Value: t}
	}
}

// NewRegistry creates a registry with the native and virtual runtimes.
// shell overrides the native runtime's shell when non-empty.
func NewRegistry(shell string) *Registry {
	r := &Registry{executors: make(map[Type]Executor)}
	r.Register(TypeNative, &NativeRuntime{Shell: shell})
	r.Register(TypeVirtual, NewVirtualRuntime())
	return r
}

// Register adds an executor to the registry, replacing any previous one.
func (r *Registry) Register(typ Type, e Executor) {
	r.executors[typ] = e
}

// Get returns the executor registered for typ.
func (r *Registry) Get(typ Type) (Executor, error) {
	e, ok := r.executors[typ]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrNotRegistered, typ)
	}
	return e, nil
}

// Types returns the registered types in sorted order.
func (r *Registry) Types() []Type {
	types := make([]Type, 0, len(r.executors))
	for typ := range r.executors {
		types = append(types, typ)
	}
	slices.Sort(types)
	return types
}

// EnvToSlice converts a map of environment variables to KEY=VALUE pairs,
// sorted by key.
func EnvToSlice(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	slices.SortFunc(result, func(a, b string) int {
		return strings.Compare(envKey(a), envKey(b))
	})
	return result
}

func envKey(pair string) string {
	k, _, _ := strings.Cut(pair, "=")
	return k
}

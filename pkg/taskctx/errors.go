// SPDX-License-Identifier: MPL-2.0

package taskctx

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUndefinedContextVars is wrapped by a ContextError listing declared
	// names with no matching attribute.
	ErrUndefinedContextVars = errors.New("undefined context variables")

	// ErrInvalidContextVarNames is wrapped by a ContextError listing declared
	// names that are not uppercase or start with an underscore.
	ErrInvalidContextVarNames = errors.New("invalid context variable names")

	// ErrUnreadableAttribute is wrapped by a ContextError for attributes whose
	// value cannot be read (unexported fields).
	ErrUnreadableAttribute = errors.New("unreadable context attribute")

	// ErrMissingKey is wrapped by a FormatError for placeholders absent from
	// the context.
	ErrMissingKey = errors.New("missing context variable")

	// ErrMalformedTemplate is wrapped by a FormatError for templates with
	// unbalanced braces or unsupported fields.
	ErrMalformedTemplate = errors.New("malformed template")

	// ErrUnsupportedExtraFile is returned by LoadExtra for unknown file types.
	ErrUnsupportedExtraFile = errors.New("unsupported extra file type")
)

type (
	// ContextError reports a component whose declared variable list is
	// invalid. Names are listed in declaration order.
	ContextError struct {
		Kind  error
		Names []string
	}

	// FormatError reports a template that cannot be rendered.
	FormatError struct {
		Template string
		// Field is the offending placeholder name, empty for brace errors.
		Field string
		// Offset is the byte offset of the problem in Template.
		Offset int
		Kind   error
	}
)

// Error implements the error interface.
func (e *ContextError) Error() string {
	names := strings.Join(e.Names, ", ")
	switch {
	case errors.Is(e.Kind, ErrUndefinedContextVars):
		return "Some enabled context variables in 'ENABLED_CONTEXT_VARS' are not defined as class attributes: " + names
	case errors.Is(e.Kind, ErrInvalidContextVarNames):
		return "Context variable names can not starts with '_' and must be uppercase: " + names
	default:
		return fmt.Sprintf("%v: %s", e.Kind, names)
	}
}

// Unwrap returns the sentinel for errors.Is.
func (e *ContextError) Unwrap() error { return e.Kind }

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%v '%s' at offset %d in template %q", e.Kind, e.Field, e.Offset, e.Template)
	}
	return fmt.Sprintf("%v at offset %d in template %q", e.Kind, e.Offset, e.Template)
}

// Unwrap returns the sentinel for errors.Is.
func (e *FormatError) Unwrap() error { return e.Kind }

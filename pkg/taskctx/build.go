// SPDX-License-Identifier: MPL-2.0

package taskctx

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// tagName is the struct tag naming a field's context attribute.
const tagName = "ctx"

type (
	// Component exposes context variables through its struct fields.
	// ContextVars lists the attribute names to include, in order; a component
	// embedding another one extends the embedded list explicitly.
	Component interface {
		ContextVars() []string
	}

	attribute struct {
		index []int
		depth int
	}
)

// Build composes the context of c, then merges extra on top of it.
//
// Every declared name must match an attribute of c, else a ContextError
// wrapping ErrUndefinedContextVars is returned. Names must then be uppercase
// and must not start with '_', else a ContextError wrapping
// ErrInvalidContextVarNames is returned.
//
// A nil Component declares no variables.
func Build(c Component, extra map[string]any) (*Context, error) {
	if c == nil {
		ctx := NewContext()
		ctx.Merge(extra)
		return ctx, nil
	}
	declared := c.ContextVars()
	v := structValue(c)
	attrs := attributes(v.Type())

	var undefined, invalid []string
	for _, name := range declared {
		if _, ok := attrs[name]; !ok {
			undefined = append(undefined, name)
		}
	}
	if len(undefined) > 0 {
		return nil, &ContextError{Kind: ErrUndefinedContextVars, Names: undefined}
	}
	for _, name := range declared {
		if !validName(name) {
			invalid = append(invalid, name)
		}
	}
	if len(invalid) > 0 {
		return nil, &ContextError{Kind: ErrInvalidContextVarNames, Names: invalid}
	}

	ctx := NewContext()
	for _, name := range declared {
		if _, seen := ctx.Get(name); seen {
			continue
		}
		value, err := read(v, attrs[name])
		if err != nil {
			return nil, &ContextError{Kind: fmt.Errorf("%w: %w", ErrUnreadableAttribute, err), Names: []string{name}}
		}
		ctx.Set(name, value)
	}
	ctx.Merge(extra)
	return ctx, nil
}

// structValue returns the struct behind c. Non-struct components expose no
// attributes; a nil pointer exposes zero values.
func structValue(c Component) reflect.Value {
	v := reflect.ValueOf(c)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.New(v.Type().Elem()).Elem()
		}
		v = v.Elem()
	}
	return v
}

// attributes maps every attribute name of t to its field. The shallowest
// declaration of a name wins; at equal depth the first one does.
func attributes(t reflect.Type) map[string]attribute {
	attrs := make(map[string]attribute)
	if t.Kind() != reflect.Struct {
		return attrs
	}
	for _, f := range reflect.VisibleFields(t) {
		name := f.Name
		if tag, ok := f.Tag.Lookup(tagName); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		attr := attribute{index: f.Index, depth: len(f.Index)}
		if prev, ok := attrs[name]; ok && prev.depth <= attr.depth {
			continue
		}
		attrs[name] = attr
	}
	return attrs
}

func read(v reflect.Value, attr attribute) (any, error) {
	field := v.Type().FieldByIndex(attr.index)
	f, err := v.FieldByIndexErr(attr.index)
	if err != nil {
		// nil embedded pointer: the attribute has its zero value
		return reflect.Zero(field.Type).Interface(), nil
	}
	if !f.CanInterface() {
		return nil, fmt.Errorf("field %s is not exported", field.Name)
	}
	return f.Interface(), nil
}

// validName reports whether name has at least one cased letter, no
// lowercase or titlecase letter, and no leading underscore.
func validName(name string) bool {
	if strings.HasPrefix(name, "_") {
		return false
	}
	cased := false
	for _, r := range name {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}

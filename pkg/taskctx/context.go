// SPDX-License-Identifier: MPL-2.0

package taskctx

import (
	"iter"
	"maps"
	"slices"
)

// Context is an ordered mapping from variable name to value.
// The zero value is an empty context ready to use.
type Context struct {
	keys   []string
	values map[string]any
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{values: make(map[string]any)}
}

// Set assigns value to name. An existing name keeps its position.
func (c *Context) Set(name string, value any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	if _, ok := c.values[name]; !ok {
		c.keys = append(c.keys, name)
	}
	c.values[name] = value
}

// Get returns the value of name.
func (c *Context) Get(name string) (any, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Len returns the number of variables.
func (c *Context) Len() int { return len(c.keys) }

// Keys returns the variable names in order.
func (c *Context) Keys() []string { return slices.Clone(c.keys) }

// All iterates over the variables in order.
func (c *Context) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range c.keys {
			if !yield(k, c.values[k]) {
				return
			}
		}
	}
}

// Map returns a copy of the variables as a plain map.
func (c *Context) Map() map[string]any {
	return maps.Clone(c.values)
}

// Merge applies extra on top of the context: existing names are overridden
// in place and new names are appended in sorted order.
func (c *Context) Merge(extra map[string]any) {
	for _, k := range slices.Sorted(maps.Keys(extra)) {
		c.Set(k, extra[k])
	}
}

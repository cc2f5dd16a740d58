// SPDX-License-Identifier: MPL-2.0

// Package taskctx composes named context variables from a task component and
// formats shell command templates with them.
//
// A Component is any struct that lists the attribute names it exposes:
//
//	type Listing struct {
//		taskctx.Base
//		LsBin string `ctx:"LS_BIN"`
//	}
//
//	func (l Listing) ContextVars() []string {
//		return append(l.Base.ContextVars(), "LS_BIN")
//	}
//
// Build reads those attributes into an ordered Context; Run formats a
// "{LS_BIN} {args}" template against it and hands the command to a
// runtime.Executor.
package taskctx

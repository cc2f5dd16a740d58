// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates CUE documents against embedded schemas.
//
// The configuration loader and the CUE extra-file reader share the same flow:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify it with the schema definition
//  3. Validate, then decode into a Go value
//
// Failures are reported with JSON-style field paths:
//
//	config.cue: output.color: 2 errors in empty disjunction
package cueutil

// SPDX-License-Identifier: MPL-2.0

// Package pathcheck validates filesystem path arguments and reports failures
// through a styled printer at a caller-selected severity.
//
// With the default severity (critical) a failure renders an error block and
// returns a *printout.AbortError that the caller must propagate.
package pathcheck

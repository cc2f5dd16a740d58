// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors: failures that carry the
// operation that failed, the resource involved and remediation hints, and
// that render through the styled printer.
package issue

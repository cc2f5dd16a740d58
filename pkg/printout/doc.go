// SPDX-License-Identifier: MPL-2.0

// Package printout renders styled terminal output for task scripts.
//
// A Printer owns an output stream and a Theme. Every operation builds its
// complete rendering first and writes it in a single call, and every styled
// fragment carries its own reset sequence, so consecutive calls never leak
// style state into each other.
//
// Reporting operations (info, warning, error, success, titles, blocks and
// critical) are also reachable through a Severity value, which is how
// callers such as pathcheck select how a failure gets reported. Critical is
// the only operation with a control-flow effect: it returns an *AbortError
// that must be propagated up to the process entry point.
package printout

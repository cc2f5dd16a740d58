// SPDX-License-Identifier: MPL-2.0

// Package runtime provides the command execution capability used by task
// code: an Executor runs a single command string and returns a structured
// Result with captured output and exit status.
//
// Three executors are available: NativeRuntime runs commands through the
// host shell, VirtualRuntime interprets them with an embedded POSIX shell,
// and Mock returns canned results for tests.
package runtime

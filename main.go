// SPDX-License-Identifier: MPL-2.0

// Package main is the entry point for the scriptkit CLI.
package main

import "github.com/invowk/scriptkit/cmd/scriptkit"

func main() {
	cmd.Execute()
}

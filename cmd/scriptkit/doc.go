// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the scriptkit command-line interface. Each command
// exercises one library component: styleguide renders every printout style,
// context and run compose task contexts, check runs the path validators and
// config shows the effective configuration.
package cmd

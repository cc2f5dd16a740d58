// SPDX-License-Identifier: MPL-2.0

// Package config handles scriptkit configuration using Viper with CUE as the
// file format.
//
// Configuration is loaded from the --config file when given, else from
// config.cue in the user configuration directory ($XDG_CONFIG_HOME/scriptkit
// on Linux), else from ./scriptkit.cue. SCRIPTKIT_* environment variables
// override file values (SCRIPTKIT_OUTPUT_COLOR for output.color).
//
// Files are validated against an embedded CUE schema (config_schema.cue) so
// that mistakes are reported with the offending field path.
package config

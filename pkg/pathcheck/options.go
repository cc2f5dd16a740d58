// SPDX-License-Identifier: MPL-2.0

package pathcheck

import "github.com/invowk/scriptkit/pkg/printout"

// Default message templates. {argname} is replaced by the argument name and
// {dest} by the path.
const (
	DefaultEmptyMessage    = "Argument '{argname}' is required"
	DefaultNotFoundMessage = "Argument '{argname}' path does not exists: {dest}"
	DefaultIsFileMessage   = "Argument '{argname}' path is a file: {dest}"
	DefaultIsDirMessage    = "Argument '{argname}' path is a directory: {dest}"

	// DefaultName is the argument name used when none is given.
	DefaultName = "value"
)

type (
	// Option configures a Validator.
	Option func(*checkConfig)

	// CheckOption configures a single validation. Validator options act as
	// defaults for every check.
	CheckOption = Option

	checkConfig struct {
		name     string
		severity printout.Severity
		empty    string
		notFound string
		isFile   string
		isDir    string
	}
)

func defaultConfig() checkConfig {
	return checkConfig{
		name:     DefaultName,
		severity: printout.SeverityCritical,
		empty:    DefaultEmptyMessage,
		notFound: DefaultNotFoundMessage,
		isFile:   DefaultIsFileMessage,
		isDir:    DefaultIsDirMessage,
	}
}

// WithName sets the argument name used in messages.
func WithName(name string) Option {
	return func(c *checkConfig) {
		c.name = name
	}
}

// WithSeverity sets the severity failures are reported at.
func WithSeverity(sev printout.Severity) Option {
	return func(c *checkConfig) {
		c.severity = sev
	}
}

// WithEmptyMessage sets the template used for an absent value.
func WithEmptyMessage(tmpl string) Option {
	return func(c *checkConfig) {
		c.empty = tmpl
	}
}

// WithNotFoundMessage sets the template used for a path that does not exist.
func WithNotFoundMessage(tmpl string) Option {
	return func(c *checkConfig) {
		c.notFound = tmpl
	}
}

// WithIsFileMessage sets the template used when a directory was expected.
func WithIsFileMessage(tmpl string) Option {
	return func(c *checkConfig) {
		c.isFile = tmpl
	}
}

// WithIsDirMessage sets the template used when a file was expected.
func WithIsDirMessage(tmpl string) Option {
	return func(c *checkConfig) {
		c.isDir = tmpl
	}
}

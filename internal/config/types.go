// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/invowk/scriptkit/pkg/printout"
	"github.com/invowk/scriptkit/pkg/runtime"
)

const (
	// LogLevelDebug logs everything, including executed commands.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo logs informational messages.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs warnings and errors only.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs errors only.
	LogLevelError LogLevel = "error"
)

var (
	// ErrInvalidLogLevel is the sentinel error wrapped by InvalidLogLevelError.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidSurround is the sentinel error wrapped by InvalidSurroundError.
	ErrInvalidSurround = errors.New("invalid surround")
	// ErrConfigNotFound is returned when an explicitly requested config file
	// does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// Config is the scriptkit configuration.
	Config struct {
		Output OutputConfig `json:"output" mapstructure:"output"`
		Runner RunnerConfig `json:"runner" mapstructure:"runner"`
		Log    LogConfig    `json:"log" mapstructure:"log"`
	}

	// OutputConfig configures the styled printer.
	OutputConfig struct {
		Color            printout.ColorMode `json:"color" mapstructure:"color"`
		Indent           string             `json:"indent" mapstructure:"indent"`
		HeaderSurround   []string           `json:"header_surround" mapstructure:"header_surround"`
		SuccessSurround  []string           `json:"success_surround" mapstructure:"success_surround"`
		CriticalSurround []string           `json:"critical_surround" mapstructure:"critical_surround"`
	}

	// RunnerConfig configures command execution.
	RunnerConfig struct {
		Runtime runtime.Type `json:"runtime" mapstructure:"runtime"`
		// Shell overrides the native runtime shell.
		Shell string `json:"shell" mapstructure:"shell"`
		// Dir is the working directory of executed commands.
		Dir  string `json:"dir" mapstructure:"dir"`
		Echo bool   `json:"echo" mapstructure:"echo"`
	}

	// LogConfig configures diagnostic logging.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level"`
	}

	// LogLevel is the minimum level of diagnostic logs.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// InvalidSurroundError is returned when a surround setting does not hold
	// exactly a left and a right string.
	InvalidSurroundError struct {
		Field string
		Value []string
	}

	// InvalidConfigError collects every invalid field of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	theme := printout.DefaultTheme()
	return &Config{
		Output: OutputConfig{
			Color:            printout.ColorAuto,
			Indent:           theme.IndentString,
			HeaderSurround:   surroundSlice(theme.HeaderSurround),
			SuccessSurround:  surroundSlice(theme.SuccessSurround),
			CriticalSurround: surroundSlice(theme.CriticalSurround),
		},
		Runner: RunnerConfig{
			Runtime: runtime.TypeNative,
		},
		Log: LogConfig{
			Level: LogLevelWarn,
		},
	}
}

// Validate returns an *InvalidConfigError listing every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Output.Color.Validate(); err != nil {
		errs = append(errs, err)
	}
	surrounds := []struct {
		field string
		value []string
	}{
		{"output.header_surround", c.Output.HeaderSurround},
		{"output.success_surround", c.Output.SuccessSurround},
		{"output.critical_surround", c.Output.CriticalSurround},
	}
	for _, s := range surrounds {
		if len(s.value) != 2 {
			errs = append(errs, &InvalidSurroundError{Field: s.field, Value: s.value})
		}
	}
	if err := c.Runner.Runtime.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Log.Level.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Theme returns the printer theme described by the output settings. It
// assumes the configuration is valid.
func (c *Config) Theme() printout.Theme {
	theme := printout.DefaultTheme()
	theme.IndentString = c.Output.Indent
	theme.HeaderSurround = toSurround(c.Output.HeaderSurround, theme.HeaderSurround)
	theme.SuccessSurround = toSurround(c.Output.SuccessSurround, theme.SuccessSurround)
	theme.CriticalSurround = toSurround(c.Output.CriticalSurround, theme.CriticalSurround)
	return theme
}

// PrinterOptions returns the printout options described by the output
// settings.
func (c *Config) PrinterOptions() []printout.Option {
	return []printout.Option{
		printout.WithTheme(c.Theme()),
		printout.WithColorMode(c.Output.Color),
	}
}

func surroundSlice(s printout.Surround) []string {
	return []string{s.Left, s.Right}
}

func toSurround(v []string, fallback printout.Surround) printout.Surround {
	if len(v) != 2 {
		return fallback
	}
	return printout.Surround{Left: v[0], Right: v[1]}
}

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// Validate returns nil if the LogLevel is recognized.
func (l LogLevel) Validate() error {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	default:
		return &InvalidLogLevelError{Value: l}
	}
}

// SlogLevel converts the level for log/slog. Unknown levels map to warn.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Error implements the error interface.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLogLevel so callers can use errors.Is for programmatic detection.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// Error implements the error interface.
func (e *InvalidSurroundError) Error() string {
	return fmt.Sprintf("invalid %s %q: expected a left and a right string", e.Field, e.Value)
}

// Unwrap returns ErrInvalidSurround so callers can use errors.Is for programmatic detection.
func (e *InvalidSurroundError) Unwrap() error { return ErrInvalidSurround }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig and every field error.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

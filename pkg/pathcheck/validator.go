// SPDX-License-Identifier: MPL-2.0

package pathcheck

import (
	"log/slog"
	"strings"

	"github.com/invowk/scriptkit/pkg/fspath"
	"github.com/invowk/scriptkit/pkg/printout"
	"github.com/invowk/scriptkit/pkg/types"
)

type (
	// Reporter renders a message at a severity. A non-nil error means the
	// caller must stop; *printout.Printer implements it.
	Reporter interface {
		Report(sev printout.Severity, msg any) error
	}

	// Validator checks path arguments.
	Validator struct {
		reporter Reporter
		defaults []Option
	}
)

// New creates a Validator reporting through r. opts apply to every check.
func New(r Reporter, opts ...Option) *Validator {
	return &Validator{reporter: r, defaults: opts}
}

// ValidatePath checks that value is not empty and exists. The value is
// cleaned first; messages and the Outcome carry the cleaned path.
//
// The returned error is non-nil only when reporting asked to stop, in which
// case the Outcome must be ignored.
func (v *Validator) ValidatePath(value string, opts ...CheckOption) (Outcome, error) {
	cfg := v.config(opts)
	return v.validatePath(value, cfg)
}

// ValidateDirPath checks that value is not empty, exists and is not a file.
func (v *Validator) ValidateDirPath(value string, opts ...CheckOption) (Outcome, error) {
	cfg := v.config(opts)
	out, err := v.validatePath(value, cfg)
	if err != nil || !out.Valid() {
		return out, err
	}
	if fspath.IsFile(out.Path) {
		return v.fail(cfg, cfg.isFile, out.Path)
	}
	return out, nil
}

// ValidateFilePath checks that value is not empty, exists and is not a
// directory.
func (v *Validator) ValidateFilePath(value string, opts ...CheckOption) (Outcome, error) {
	cfg := v.config(opts)
	out, err := v.validatePath(value, cfg)
	if err != nil || !out.Valid() {
		return out, err
	}
	if fspath.IsDir(out.Path) {
		return v.fail(cfg, cfg.isDir, out.Path)
	}
	return out, nil
}

func (v *Validator) config(opts []CheckOption) checkConfig {
	cfg := defaultConfig()
	for _, opt := range v.defaults {
		opt(&cfg)
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (v *Validator) validatePath(value string, cfg checkConfig) (Outcome, error) {
	if value == "" {
		err := v.reporter.Report(cfg.severity, render(cfg.empty, cfg.name, ""))
		return Outcome{State: StateEmpty}, err
	}

	p := fspath.Clean(types.FilesystemPath(value))
	if !fspath.Exists(p) {
		return v.fail(cfg, cfg.notFound, p)
	}
	return valid(p), nil
}

func (v *Validator) fail(cfg checkConfig, tmpl string, p types.FilesystemPath) (Outcome, error) {
	slog.Debug("path check failed", "argument", cfg.name, "path", p, "severity", cfg.severity)
	err := v.reporter.Report(cfg.severity, render(tmpl, cfg.name, p))
	return Outcome{State: StateFailed}, err
}

// render expands the {argname} and {dest} placeholders of a message template.
func render(tmpl, name string, dest types.FilesystemPath) string {
	return strings.NewReplacer("{argname}", name, "{dest}", dest.String()).Replace(tmpl)
}

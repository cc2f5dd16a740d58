// SPDX-License-Identifier: MPL-2.0

package printout

import (
	"errors"
	"fmt"
	"strings"
)

// Severity values name the reporting operations of a Printer.
const (
	SeverityInfo Severity = iota + 1
	SeverityWarning
	SeverityError
	SeveritySuccess
	SeverityTitleInfo
	SeverityTitleWarning
	SeverityTitleError
	SeverityTitleSuccess
	SeverityHeader
	SeverityBlockSuccess
	SeverityBlockWarning
	SeverityBlockError
	SeverityCritical
)

// ErrUnknownSeverity is returned by ParseSeverity and Report for values
// outside the catalog.
var ErrUnknownSeverity = errors.New("unknown severity")

type (
	// Severity selects the Printer operation used to report a message.
	Severity int

	reportFunc func(*Printer, any) error
)

var (
	severityNames = map[Severity]string{
		SeverityInfo:         "info",
		SeverityWarning:      "warning",
		SeverityError:        "error",
		SeveritySuccess:      "success",
		SeverityTitleInfo:    "title_info",
		SeverityTitleWarning: "title_warning",
		SeverityTitleError:   "title_error",
		SeverityTitleSuccess: "title_success",
		SeverityHeader:       "header",
		SeverityBlockSuccess: "block_success",
		SeverityBlockWarning: "block_warning",
		SeverityBlockError:   "block_error",
		SeverityCritical:     "critical",
	}

	// severityAliases maps alternative catalog names onto the same operation.
	severityAliases = map[string]Severity{
		"block_info": SeverityHeader,
	}

	reporters = map[Severity]reportFunc{
		SeverityInfo:         silent((*Printer).Info),
		SeverityWarning:      silent((*Printer).Warning),
		SeverityError:        silent((*Printer).Error),
		SeveritySuccess:      silent((*Printer).Success),
		SeverityTitleInfo:    silent((*Printer).TitleInfo),
		SeverityTitleWarning: silent((*Printer).TitleWarning),
		SeverityTitleError:   silent((*Printer).TitleError),
		SeverityTitleSuccess: silent((*Printer).TitleSuccess),
		SeverityHeader:       silent((*Printer).Header),
		SeverityBlockSuccess: silent((*Printer).BlockSuccess),
		SeverityBlockWarning: silent((*Printer).BlockWarning),
		SeverityBlockError:   silent((*Printer).BlockError),
		SeverityCritical:     (*Printer).Critical,
	}
)

// ParseSeverity resolves an operation name such as "error" or "critical".
func ParseSeverity(name string) (Severity, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if sev, ok := severityAliases[name]; ok {
		return sev, nil
	}
	for sev, n := range severityNames {
		if n == name {
			return sev, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSeverity, name)
}

// Severities returns every severity in catalog order.
func Severities() []Severity {
	out := make([]Severity, 0, len(severityNames))
	for sev := SeverityInfo; sev <= SeverityCritical; sev++ {
		out = append(out, sev)
	}
	return out
}

// String returns the operation name.
func (s Severity) String() string {
	if n, ok := severityNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Aborts reports whether reporting with this severity aborts the task.
func (s Severity) Aborts() bool { return s == SeverityCritical }

// Set implements pflag.Value so a Severity can be bound to a CLI flag.
func (s *Severity) Set(v string) error {
	sev, err := ParseSeverity(v)
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

// Type implements pflag.Value.
func (s *Severity) Type() string { return "severity" }

// Report renders msg with the operation selected by sev. The returned error
// is an *AbortError for SeverityCritical and nil for every other known
// severity.
func (p *Printer) Report(sev Severity, msg any) error {
	fn, ok := reporters[sev]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSeverity, sev)
	}
	return fn(p, msg)
}

func silent(fn func(*Printer, any)) reportFunc {
	return func(p *Printer, msg any) error {
		fn(p, msg)
		return nil
	}
}

// SPDX-License-Identifier: MPL-2.0

package printout

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	for _, sev := range Severities() {
		got, err := ParseSeverity(sev.String())
		if err != nil {
			t.Errorf("ParseSeverity(%q) error = %v", sev, err)
			continue
		}
		if got != sev {
			t.Errorf("ParseSeverity(%q) = %v, want %v", sev, got, sev)
		}
	}

	if got, err := ParseSeverity("block_info"); err != nil || got != SeverityHeader {
		t.Errorf("ParseSeverity(block_info) = %v, %v; want header", got, err)
	}
	if got, err := ParseSeverity(" Critical "); err != nil || got != SeverityCritical {
		t.Errorf("ParseSeverity(' Critical ') = %v, %v; want critical", got, err)
	}
	if _, err := ParseSeverity("shout"); !errors.Is(err, ErrUnknownSeverity) {
		t.Errorf("ParseSeverity(shout) error = %v, want ErrUnknownSeverity", err)
	}
}

func TestReport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sev       Severity
		want      string
		wantAbort bool
	}{
		{SeverityInfo, "msg\n", false},
		{SeverityWarning, "msg\n", false},
		{SeverityError, "msg\n", false},
		{SeveritySuccess, "msg\n", false},
		{SeverityTitleError, "msg\n\n", false},
		{SeverityHeader, "\n---> msg <---\n\n", false},
		{SeverityBlockSuccess, "\n  msg  \n\n", false},
		{SeverityBlockWarning, "\n  msg  \n\n", false},
		{SeverityBlockError, "\n  msg  \n\n", false},
		{SeverityCritical, "\n  msg  \n\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.sev.String(), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			p := New(&buf, WithColorMode(ColorNever))
			err := p.Report(tt.sev, "msg")

			if got := buf.String(); got != tt.want {
				t.Errorf("Report(%s) output = %q, want %q", tt.sev, got, tt.want)
			}
			if IsAbort(err) != tt.wantAbort {
				t.Errorf("Report(%s) error = %v, wantAbort %v", tt.sev, err, tt.wantAbort)
			}
			if tt.sev.Aborts() != tt.wantAbort {
				t.Errorf("%s.Aborts() = %v, want %v", tt.sev, tt.sev.Aborts(), tt.wantAbort)
			}
		})
	}
}

func TestReportUnknownSeverity(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf, WithColorMode(ColorNever))
	if err := p.Report(Severity(99), "msg"); !errors.Is(err, ErrUnknownSeverity) {
		t.Errorf("Report(99) error = %v, want ErrUnknownSeverity", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Report(99) wrote %q", buf.String())
	}
}

func TestSeveritySet(t *testing.T) {
	t.Parallel()

	var sev Severity
	if err := sev.Set("warning"); err != nil {
		t.Fatalf("Set(warning) error = %v", err)
	}
	if sev != SeverityWarning {
		t.Errorf("Set(warning) = %v", sev)
	}
	if sev.Type() != "severity" {
		t.Errorf("Type() = %q", sev.Type())
	}
}

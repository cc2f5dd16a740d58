// SPDX-License-Identifier: MPL-2.0

package taskctx

import (
	"errors"
	"testing"

	"github.com/invowk/scriptkit/pkg/types"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	vars := NewContext()
	vars.Set("LS_BIN", "ls")
	vars.Set("args", "-l")
	vars.Set("BASE_DIR", types.FilesystemPath("/srv/app"))
	vars.Set("COUNT", 3)
	vars.Set("DEBUG", true)

	tests := []struct {
		name     string
		template string
		want     string
		wantErr  error
		wantFld  string
	}{
		{name: "plain", template: "make all", want: "make all"},
		{name: "single", template: "{LS_BIN}", want: "ls"},
		{name: "extra", template: "{LS_BIN} {args}", want: "ls -l"},
		{name: "path value", template: "cd {BASE_DIR}", want: "cd /srv/app"},
		{name: "scalars", template: "{COUNT}:{DEBUG}", want: "3:true"},
		{name: "repeated", template: "{LS_BIN}{LS_BIN}", want: "lsls"},
		{name: "escaped braces", template: "awk '{{print $1}}' {BASE_DIR}", want: "awk '{print $1}' /srv/app"},
		{name: "empty template", template: "", want: ""},
		{name: "missing key", template: "{LS_BIN} {NOPE}", wantErr: ErrMissingKey, wantFld: "NOPE"},
		{name: "unclosed", template: "echo {LS_BIN", wantErr: ErrMalformedTemplate},
		{name: "stray close", template: "echo }", wantErr: ErrMalformedTemplate},
		{name: "empty field", template: "echo {}", wantErr: ErrMalformedTemplate},
		{name: "attribute access", template: "{BASE_DIR.name}", wantErr: ErrMalformedTemplate, wantFld: "BASE_DIR.name"},
		{name: "format spec", template: "{COUNT:>4}", wantErr: ErrMalformedTemplate, wantFld: "COUNT:>4"},
		{name: "positional", template: "{0}", wantErr: ErrMalformedTemplate, wantFld: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Format(tt.template, vars)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Format() error = %v", err)
				}
				if got != tt.want {
					t.Errorf("Format() = %q, want %q", got, tt.want)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Format() error = %v, want %v", err, tt.wantErr)
			}
			var fmtErr *FormatError
			if !errors.As(err, &fmtErr) {
				t.Fatalf("Format() error type = %T, want *FormatError", err)
			}
			if fmtErr.Field != tt.wantFld {
				t.Errorf("Field = %q, want %q", fmtErr.Field, tt.wantFld)
			}
			if fmtErr.Template != tt.template {
				t.Errorf("Template = %q, want %q", fmtErr.Template, tt.template)
			}
		})
	}
}

func TestFormatNilContext(t *testing.T) {
	t.Parallel()

	if got, err := Format("no {{vars}}", nil); err != nil || got != "no {vars}" {
		t.Errorf("Format() = %q, %v", got, err)
	}
	if _, err := Format("{X}", nil); !errors.Is(err, ErrMissingKey) {
		t.Errorf("Format() error = %v, want ErrMissingKey", err)
	}
}

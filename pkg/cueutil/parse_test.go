// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testSchema = `
#TestConfig: {
	name:         string
	count:        int
	enabled:      bool
	description?: string
}
`

type testConfig struct {
	Name        string `json:"name"`
	Count       int    `json:"count"`
	Enabled     bool   `json:"enabled"`
	Description string `json:"description,omitempty"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    testConfig
		wantErr string
	}{
		{
			name: "valid document",
			data: "name: \"test\"\ncount: 42\nenabled: true\ndescription: \"A test config\"\n",
			want: testConfig{Name: "test", Count: 42, Enabled: true, Description: "A test config"},
		},
		{
			name: "optional field omitted",
			data: "name: \"minimal\"\ncount: 1\nenabled: false\n",
			want: testConfig{Name: "minimal", Count: 1},
		},
		{
			name:    "invalid type",
			data:    "name: \"test\"\ncount: \"not a number\"\nenabled: true\n",
			wantErr: "count",
		},
		{
			name:    "missing required field",
			data:    "name: \"test\"\nenabled: true\n",
			wantErr: "count",
		},
		{
			name:    "unknown field",
			data:    "name: \"test\"\ncount: 1\nenabled: true\nextra: 1\n",
			wantErr: "extra",
		},
		{
			name:    "syntax error",
			data:    "name: \"test\n",
			wantErr: "input.cue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := ParseAndDecode[testConfig]([]byte(testSchema), []byte(tt.data), "#TestConfig",
				WithFilename("input.cue"))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAndDecode failed: %v", err)
			}
			if result.Value != tt.want {
				t.Errorf("Value = %+v, want %+v", result.Value, tt.want)
			}
			if result.Unified.Err() != nil {
				t.Errorf("unified value has error: %v", result.Unified.Err())
			}
		})
	}
}

func TestParseAndDecodeMap(t *testing.T) {
	t.Parallel()

	schema := []byte(`#Vars: [string]: string | number | bool`)
	result, err := ParseAndDecode[map[string]any](schema, []byte("A: \"x\"\nB: true\n"), "#Vars")
	if err != nil {
		t.Fatalf("ParseAndDecode failed: %v", err)
	}
	if result.Value["A"] != "x" || result.Value["B"] != true {
		t.Errorf("Value = %v", result.Value)
	}
}

func TestFileSizeLimit(t *testing.T) {
	t.Parallel()

	data := []byte(strings.Repeat("a", 200))
	_, err := ParseAndDecode[testConfig]([]byte(testSchema), data, "#TestConfig", WithMaxFileSize(100))
	if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("error = %v, want size limit error", err)
	}
}

func TestNonConcrete(t *testing.T) {
	t.Parallel()

	schema := []byte("#Partial: {name: string, count?: int}\n")
	if _, err := Unify(schema, []byte("count: 1\n"), "#Partial"); err == nil {
		t.Error("concrete validation accepted a missing required field")
	}
	if _, err := Unify(schema, []byte("count: 1\n"), "#Partial", WithConcrete(false)); err != nil {
		t.Errorf("non-concrete validation failed: %v", err)
	}
}

func TestMissingDefinition(t *testing.T) {
	t.Parallel()

	_, err := Unify([]byte(testSchema), []byte("{}"), "#Missing")
	if err == nil || !strings.Contains(err.Error(), "#Missing") {
		t.Errorf("error = %v, want missing definition error", err)
	}
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.cue")
	if err := os.WriteFile(path, []byte("name: \"file\"\ncount: 2\nenabled: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := ParseFile[testConfig]([]byte(testSchema), path, "#TestConfig")
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if result.Value.Name != "file" || result.Value.Count != 2 {
		t.Errorf("Value = %+v", result.Value)
	}

	if _, err := ParseFile[testConfig]([]byte(testSchema), path+".missing", "#TestConfig"); err == nil {
		t.Error("ParseFile of a missing file succeeded")
	}
}

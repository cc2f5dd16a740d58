// SPDX-License-Identifier: MPL-2.0

package taskctx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invowk/scriptkit/pkg/cueutil"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// extraSchema restricts CUE extra files to a flat mapping of scalars.
const extraSchema = `#Extra: [=~"^[A-Za-z_][A-Za-z0-9_]*$"]: string | number | bool`

// LoadExtra reads an override mapping from a TOML (.toml), YAML
// (.yaml, .yml) or CUE (.cue) file. Top-level keys become context variable
// names.
func LoadExtra(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read extra file: %w", err)
	}

	extra := make(map[string]any)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".cue":
		result, err := cueutil.ParseAndDecode[map[string]any]([]byte(extraSchema), data, "#Extra",
			cueutil.WithFilename(path))
		if err != nil {
			return nil, err
		}
		for k, v := range result.Value {
			extra[k] = v
		}
	case ".toml":
		if err := toml.Unmarshal(data, &extra); err != nil {
			return nil, fmt.Errorf("failed to parse TOML extra file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &extra); err != nil {
			return nil, fmt.Errorf("failed to parse YAML extra file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q (want .toml, .yaml, .yml or .cue)", ErrUnsupportedExtraFile, ext)
	}
	return extra, nil
}

// ParseAssignments converts KEY=VALUE pairs into an override mapping.
// Later assignments of the same key win.
func ParseAssignments(pairs []string) (map[string]any, error) {
	extra := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid assignment %q (want KEY=VALUE)", pair)
		}
		extra[k] = v
	}
	return extra, nil
}

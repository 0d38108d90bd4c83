package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/vartmpl/pkg/vartmpl"
)

// FromFile loads syntax definitions from a file, auto-detecting format by
// extension. Supported extensions: .yaml, .yml, .json
func FromFile(path string) (map[string]vartmpl.Syntax, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read syntax file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return nil, fmt.Errorf("unsupported syntax file extension: %s", ext)
	}
}

// FromYAML parses YAML syntax definitions.
func FromYAML(data []byte) (map[string]vartmpl.Syntax, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return build(f)
}

// FromJSON parses JSON syntax definitions.
func FromJSON(data []byte) (map[string]vartmpl.Syntax, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return build(f)
}

// build converts and validates every definition in the document.
func build(f file) (map[string]vartmpl.Syntax, error) {
	out := make(map[string]vartmpl.Syntax, len(f.Syntaxes))
	for name, def := range f.Syntaxes {
		syn, err := def.syntax()
		if err != nil {
			return nil, fmt.Errorf("syntax %q: %w", name, err)
		}
		out[name] = syn
	}
	return out, nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseAttrs turns k=v pairs into a context map. A value that is valid JSON
// keeps its JSON type, anything else is taken as a plain string.
func ParseAttrs(attrs []string) (map[string]any, error) {
	out := make(map[string]any, len(attrs))
	for _, attr := range attrs {
		key, raw, ok := strings.Cut(attr, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid attribute %q: expected key=value", attr)
		}

		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		out[key] = value
	}
	return out, nil
}

// LoadContextFile reads an evaluation context from a YAML or JSON file.
// The top level must be a mapping.
func LoadContextFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read context file: %w", err)
	}

	var out map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse context file: %w", err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// BuildContext loads path (if set) and lays attrs over it
func BuildContext(path string, attrs []string) (map[string]any, error) {
	ctx := map[string]any{}
	if path != "" {
		fromFile, err := LoadContextFile(path)
		if err != nil {
			return nil, err
		}
		maps.Copy(ctx, fromFile)
	}

	fromAttrs, err := ParseAttrs(attrs)
	if err != nil {
		return nil, err
	}
	maps.Copy(ctx, fromAttrs)

	return ctx, nil
}

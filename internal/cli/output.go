package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// OutputFormat specifies the output format for CLI commands
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// Result is what the toggle and config commands print
type Result struct {
	Key           string `json:"key" yaml:"key"`
	ObjectID      string `json:"objectId" yaml:"objectId"`
	AppliedRuleID string `json:"appliedRuleId" yaml:"appliedRuleId"`
	Value         any    `json:"value" yaml:"value"`
}

// Print writes data to w in the specified format
func Print(w io.Writer, data any, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return printJSON(w, data)
	case FormatYAML:
		return printYAML(w, data)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func printJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func printYAML(w io.Writer, data any) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(data)
}

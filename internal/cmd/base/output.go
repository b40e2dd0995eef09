package base

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Output formats supported by commands that print structured data.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// PrintStructured renders value as pretty JSON or YAML through the UI.
// FormatText is the caller's responsibility; passing it here is an error.
func (c *Command) PrintStructured(format string, value any) error {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON output: %w", err)
		}
		c.UI.Output(string(out))
	case FormatYAML:
		out, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("error encoding YAML output: %w", err)
		}
		c.UI.Output(string(out))
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	return nil
}

// Package formats provides level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Order    int               `yaml:"order,omitempty"`
	Plan     []string          `yaml:"plan"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Level represents a parsed level file ready for use.
type Level struct {
	ID       string
	Name     string
	Order    int
	Plan     []string
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("missing level id")
	}
	if len(yl.Plan) == 0 {
		return Level{}, fmt.Errorf("level %s: empty plan", yl.ID)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Level{
		ID:       yl.ID,
		Name:     name,
		Order:    yl.Order,
		Plan:     yl.Plan,
		Metadata: yl.Metadata,
	}, nil
}

// MarshalYAML encodes a level back to its file form.
func MarshalYAML(l Level) ([]byte, error) {
	return yaml.Marshal(YAMLLevel(l))
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

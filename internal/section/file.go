package section

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is a user-supplied section given by its four dimensions (mm)
type Definition struct {
	Name            string  `json:"name,omitempty" yaml:"name,omitempty"`
	Type            string  `json:"type" yaml:"type"`
	Height          float64 `json:"height" yaml:"height"`
	Width           float64 `json:"width" yaml:"width"`
	WebThickness    float64 `json:"web_thickness" yaml:"web_thickness"`
	FlangeThickness float64 `json:"flange_thickness" yaml:"flange_thickness"`
}

// Properties builds the section described by the definition
func (d Definition) Properties() (Properties, error) {
	t, err := ParseType(d.Type)
	if err != nil {
		return Properties{}, err
	}
	p, err := Build(t, d.Height, d.Width, d.WebThickness, d.FlangeThickness)
	if err != nil {
		return Properties{}, err
	}
	if d.Name != "" {
		p.Name = d.Name
	}
	return p, nil
}

// LoadFromFile loads a section definition from a JSON or YAML file
func LoadFromFile(path string) (Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Properties{}, err
	}

	var def Definition
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &def)
	default:
		err = json.Unmarshal(data, &def)
	}
	if err != nil {
		return Properties{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return def.Properties()
}

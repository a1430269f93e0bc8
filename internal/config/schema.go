package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}

// ConfigSchema returns a JSON Schema for config.yaml.
func ConfigSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	sch := r.Reflect(&Config{})
	sch.Title = "edactl config"
	sch.Description = "Optional settings read from <config dir>/config.yaml."
	return sch
}

// RegistrySchema returns a JSON Schema for the installed-tools registry.
// Shape: top-level object with tool names as keys and version strings as values.
func RegistrySchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Title:                "edactl tool registry",
		Description:          "Installed tool versions keyed by tool name (ngspice, kicad, ghdl).",
		Type:                 "object",
		AdditionalProperties: &jsonschema.Schema{Type: "string"},
	}
}

package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for navcoord configuration files.
// Unknown top-level keys are allowed; they are extensions such as "logging".
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&Config{})
	schema.Title = "navcoord Configuration"
	schema.Description = "Schema for navcoord.yml / navcoord.toml."
	schema.Version = "https://json-schema.org/draft/2020-12/schema"

	return json.MarshalIndent(schema, "", "  ")
}

package config

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "navcoord.schema.json"

// compileSchema compiles the generated schema once per process.
var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	data, err := GenerateSchema()
	if err != nil {
		return nil, fmt.Errorf("generate schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	return c.Compile(schemaURL)
})

// SchemaValidator checks raw, decoded config documents against the schema.
type SchemaValidator struct {
	schema *jsonschema.Schema
}

func NewSchemaValidator() (*SchemaValidator, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}
	return &SchemaValidator{schema: schema}, nil
}

// Validate checks doc, typically the map produced by the YAML or TOML
// decoder. doc is round-tripped through JSON so TOML dates and YAML integer
// types reach the validator as plain JSON values. Every failing location is
// listed in the error.
func (v *SchemaValidator) Validate(doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode config for validation: %w", err)
	}
	var instance interface{}
	if err := json.Unmarshal(data, &instance); err != nil {
		return fmt.Errorf("decode config for validation: %w", err)
	}

	err = v.schema.Validate(instance)
	var verr *jsonschema.ValidationError
	if !stderrors.As(err, &verr) {
		return err
	}
	return fmt.Errorf("schema validation failed:\n%s", strings.Join(problems(verr), "\n"))
}

// problems flattens the leaves of a validation error tree.
func problems(err *jsonschema.ValidationError) []string {
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		return []string{fmt.Sprintf("  - %s: %s", loc, err.Message)}
	}
	var out []string
	for _, cause := range err.Causes {
		out = append(out, problems(cause)...)
	}
	return out
}

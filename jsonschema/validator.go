package jsonschema

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonschemav5 "github.com/santhosh-tekuri/jsonschema/v5"
)

// CompiledValidator wraps a compiled santhosh-tekuri/jsonschema/v5
// schema as the injected third-party validator an Atom descriptor uses
// to validate its value as a whole at complete() time.
type CompiledValidator struct {
	compiled *jsonschemav5.Schema
}

// Validate implements the Validator interface the root package's Atom
// descriptor depends on.
func (v *CompiledValidator) Validate(raw any) error {
	if v == nil || v.compiled == nil {
		return nil
	}
	if err := v.compiled.Validate(raw); err != nil {
		return err
	}
	return nil
}

// Compile builds a CompiledValidator from a Schema by round-tripping it
// through encoding/json into the shape santhosh-tekuri/jsonschema/v5
// expects, then compiling it with an in-memory resource.
func Compile(s *Schema) (*CompiledValidator, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("jsonschema: marshal schema: %w", err)
	}
	c := jsonschemav5.NewCompiler()
	const resourceURL = "streamkit://inline-schema.json"
	if err := c.AddResource(resourceURL, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("jsonschema: add resource: %w", err)
	}
	compiled, err := c.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("jsonschema: compile: %w", err)
	}
	return &CompiledValidator{compiled: compiled}, nil
}

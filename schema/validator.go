// Package schema compiles JSON Schemas and validates documents against them.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validator validates documents against a compiled JSON Schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the schema in data, registered under url.
func NewValidator(url string, data []byte) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &Validator{schema: schema}, nil
}

// Validate validates a document. Maps and slices decoded from YAML or TOML
// are accepted; values are normalized through JSON first.
func (v *Validator) Validate(doc interface{}) error {
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document to JSON for validation: %w", err)
	}

	var dataToValidate interface{}
	if err := json.Unmarshal(jsonData, &dataToValidate); err != nil {
		return fmt.Errorf("failed to unmarshal JSON for validation: %w", err)
	}

	if err := v.schema.Validate(dataToValidate); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return &Error{Violations: Violations(validationErr)}
		}
		return fmt.Errorf("schema validation failed: %w", err)
	}

	return nil
}

// Violation is a single leaf failure.
type Violation struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// Error lists the leaf violations of a failed validation.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	lines := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		lines[i] = fmt.Sprintf("- %s: %s", v.Location, v.Message)
	}
	return "schema validation failed:\n" + strings.Join(lines, "\n")
}

// Violations flattens a validation error tree into its leaves, sorted by
// location.
func Violations(err *jsonschema.ValidationError) []Violation {
	var out []Violation
	collectErrors(err, &out)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Location < out[j].Location })
	return out
}

func collectErrors(err *jsonschema.ValidationError, out *[]Violation) {
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*out = append(*out, Violation{Location: loc, Message: err.Message})
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, out)
	}
}

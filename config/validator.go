package config

import (
	"sync"

	"github.com/grovetools/hookcfg/schema"
)

var (
	schemaOnce      sync.Once
	schemaValidator *schema.Validator
	schemaErr       error
)

// SchemaValidator validates raw configuration documents against the
// generated JSON Schema.
type SchemaValidator struct {
	validator *schema.Validator
}

// NewSchemaValidator returns a validator for the configuration schema. The
// schema is generated and compiled once per process.
func NewSchemaValidator() (*SchemaValidator, error) {
	schemaOnce.Do(func() {
		var data []byte
		data, schemaErr = GenerateSchema()
		if schemaErr != nil {
			return
		}
		schemaValidator, schemaErr = schema.NewValidator(SchemaID, data)
	})
	if schemaErr != nil {
		return nil, schemaErr
	}
	return &SchemaValidator{validator: schemaValidator}, nil
}

// Validate checks a document decoded into generic JSON values.
func (v *SchemaValidator) Validate(doc interface{}) error {
	return v.validator.Validate(doc)
}

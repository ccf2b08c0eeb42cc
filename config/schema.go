package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

//go:generate go run ../tools/schema-generator -o ../schema/pre-commit-config.schema.json

// SchemaID is the $id of the generated schema.
const SchemaID = "https://github.com/grovetools/hookcfg/schema/pre-commit-config.schema.json"

// GenerateSchema generates the JSON Schema for the configuration document by
// reflecting Config and tightening the enumerations that tags cannot express.
func GenerateSchema() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}

// Schema returns the reflected schema.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		FieldNameTag:              "yaml",
		ExpandedStruct:            true,
	}

	s := r.Reflect(&Config{})
	s.ID = SchemaID
	s.Title = "pre-commit configuration"
	s.Description = "Hook sources and hook definitions for a git pre-commit runner."

	if hook, ok := s.Definitions["Hook"]; ok {
		if p, ok := hook.Properties.Get("id"); ok {
			p.Pattern = hookIDRegex.String()
			p.MinLength = ptr(uint64(1))
		}
		if p, ok := hook.Properties.Get("language"); ok {
			p.Enum = toAny(Languages)
		}
		if p, ok := hook.Properties.Get("stages"); ok && p.Items != nil {
			p.Items.Enum = toAny(Stages)
		}
	}
	if repo, ok := s.Definitions["Repo"]; ok {
		if p, ok := repo.Properties.Get("repo"); ok {
			p.MinLength = ptr(uint64(1))
		}
	}
	if p, ok := s.Properties.Get("default_stages"); ok && p.Items != nil {
		p.Items.Enum = toAny(Stages)
	}
	if p, ok := s.Properties.Get("default_install_hook_types"); ok && p.Items != nil {
		p.Items.Enum = toAny(HookTypes)
	}
	return s
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func ptr[T any](v T) *T { return &v }

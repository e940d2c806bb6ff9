package load

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ChrisWren/airent-api/compiler/gen"
)

// Schema represents an entity schema file as written by users.
type Schema struct {
	Entity     string            `yaml:"entity"`
	Deprecated bool              `yaml:"deprecated,omitempty"`
	Internal   bool              `yaml:"internal,omitempty"`
	Types      []*Type           `yaml:"types,omitempty"`
	Fields     []*Field          `yaml:"fields,omitempty"`
	Policies   Policies          `yaml:"policies,omitempty"`
	API        *API              `yaml:"api,omitempty"`
	Strings    gen.EntityStrings `yaml:"strings,omitempty"`
}

// Field represents a field of an entity schema.
type Field struct {
	Name       string           `yaml:"name"`
	Type       string           `yaml:"type"`
	Strategy   string           `yaml:"strategy,omitempty"`
	Internal   bool             `yaml:"internal,omitempty"`
	Deprecated bool             `yaml:"deprecated,omitempty"`
	Strings    gen.FieldStrings `yaml:"strings,omitempty"`
}

// Type represents a schema type. Types with an import are defined in
// another module.
type Type struct {
	Name   string `yaml:"name"`
	Import string `yaml:"import,omitempty"`
}

// API represents the api section of an entity schema.
type API struct {
	Methods Methods  `yaml:"methods,omitempty"`
	Cursors []Cursor `yaml:"cursors,omitempty"`
}

// Policies is the policies mapping of a schema. The declaration order of
// the mapping is kept.
//
//	policies:
//	  private: [email]  # field-scoped
//	  admin:            # entity-scoped
type Policies []gen.Policy

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Policies) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: policies must be a mapping", value.Line)
	}
	policies := make(Policies, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		name, fields := value.Content[i].Value, value.Content[i+1]
		var list []string
		if fields.Kind != yaml.ScalarNode || fields.Tag != "!!null" {
			if err := fields.Decode(&list); err != nil {
				return fmt.Errorf("line %d: policy %q must list field names: %w", fields.Line, name, err)
			}
		}
		policies = append(policies, gen.FieldPolicy(name, list...))
	}
	*p = policies
	return nil
}

// Methods holds the declared api methods. They can be written as a list of
// names or as a mapping keyed by name.
type Methods []gen.Method

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Methods) UnmarshalYAML(value *yaml.Node) error {
	var names []string
	switch value.Kind {
	case yaml.SequenceNode:
		if err := value.Decode(&names); err != nil {
			return err
		}
	case yaml.MappingNode:
		for i := 0; i < len(value.Content); i += 2 {
			names = append(names, value.Content[i].Value)
		}
	default:
		return fmt.Errorf("line %d: methods must be a list or a mapping", value.Line)
	}
	methods := make(Methods, 0, len(names))
	for _, n := range names {
		if method := gen.Method(n); method.Valid() {
			methods = append(methods, method)
			continue
		}
		return fmt.Errorf("line %d: unknown api method %q", value.Line, n)
	}
	*m = methods
	return nil
}

// Cursor is one cursor mapping of field names to orders.
type Cursor gen.Cursor

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Cursor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: cursor must be a mapping", value.Line)
	}
	cursor := make(Cursor, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := gen.CursorKey{Field: value.Content[i].Value, Order: gen.Order(value.Content[i+1].Value)}
		if !key.Order.Valid() {
			return fmt.Errorf("line %d: cursor order of %q must be asc or desc", value.Content[i+1].Line, key.Field)
		}
		cursor = append(cursor, key)
	}
	*c = cursor
	return nil
}

// ParseSchema decodes a YAML (or JSON) entity schema.
func ParseSchema(buf []byte) (*Schema, error) {
	s := &Schema{}
	if err := yaml.Unmarshal(buf, s); err != nil {
		return nil, err
	}
	return s, nil
}

// ToEntity converts the schema to a graph entity. It runs the upstream naming
// pass: entity and field strings missing from the schema get their default
// names.
func (s *Schema) ToEntity() (*gen.Entity, error) {
	if s.Entity == "" {
		return nil, gen.NewSchemaError("", "", "missing entity name", nil)
	}
	e := &gen.Entity{
		Name:       s.Entity,
		Deprecated: s.Deprecated,
		Internal:   s.Internal,
		Policies:   s.Policies,
		Strings:    s.Strings,
	}
	if e.Strings.FieldRequestClass == "" {
		e.Strings.FieldRequestClass = s.Entity + "FieldRequest"
	}
	if e.Strings.SelectedResponseClass == "" {
		e.Strings.SelectedResponseClass = "Selected" + s.Entity + "Response"
	}
	seen := make(map[string]struct{}, len(s.Fields))
	for _, f := range s.Fields {
		if _, ok := seen[f.Name]; ok {
			return nil, gen.NewSchemaError(s.Entity, f.Name, "field redeclared", nil)
		}
		seen[f.Name] = struct{}{}
		ef, err := f.field()
		if err != nil {
			return nil, gen.NewSchemaError(s.Entity, f.Name, "invalid field", err)
		}
		e.Fields = append(e.Fields, ef)
	}
	for _, t := range s.Types {
		e.Types = append(e.Types, &gen.Type{Name: t.Name, Import: t.Import})
	}
	if s.API != nil {
		e.API = &gen.API{Methods: s.API.Methods}
		for _, c := range s.API.Cursors {
			e.API.Cursors = append(e.API.Cursors, gen.Cursor(c))
		}
	}
	return e, nil
}

func (f *Field) field() (*gen.Field, error) {
	if f.Name == "" {
		return nil, errors.New("missing field name")
	}
	kind := gen.FieldPrimitive
	if f.Strategy != "" {
		k, err := gen.ParseFieldKind(f.Strategy)
		if err != nil {
			return nil, err
		}
		kind = k
	}
	ef := &gen.Field{
		Name:       f.Name,
		Kind:       kind,
		Type:       f.Type,
		Internal:   f.Internal,
		Deprecated: f.Deprecated,
		Strings:    f.Strings,
	}
	if ef.Strings.FieldResponseType == "" {
		ef.Strings.FieldResponseType = f.Type
	}
	return ef, nil
}

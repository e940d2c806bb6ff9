package gen

import (
	"fmt"
	"slices"
)

// The following types describe the entity-schema graph handed over by the
// schema loader and the metadata the augmentation pass attaches to it.
type (
	// Graph holds the global configuration and all entities of one run.
	// Both are owned by the caller and mutated in place by Augment.
	Graph struct {
		Config   *Config
		Entities map[string]*Entity
	}

	// Entity represents one generated domain object and its API surface.
	Entity struct {
		// Name holds the entity name as declared in the schema, e.g. "User".
		Name string
		// Fields holds all the fields of the entity in declaration order.
		Fields []*Field
		// Types holds the schema types the entity refers to.
		Types []*Type
		// Policies are the authorization policies in declaration order.
		Policies []Policy
		// Deprecated marks the generated types and classes as deprecated.
		Deprecated bool
		// Internal entities have no response projection (not presentable).
		Internal bool
		// Strings holds the names computed by the upstream naming pass.
		Strings EntityStrings
		// API holds the api section of the schema. It is created by the
		// augmentation pass if absent.
		API *API
		// Code holds the fragments appended for the code writer.
		Code Code
	}

	// EntityStrings are the naming placeholders populated upstream.
	EntityStrings struct {
		FieldRequestClass     string `yaml:"fieldRequestClass,omitempty"`
		SelectedResponseClass string `yaml:"selectedResponseClass,omitempty"`
	}

	// API is the api section of an entity schema.
	API struct {
		// Methods lists the declared API methods.
		Methods []Method
		// Cursors are the pagination directives of the getMany method.
		Cursors []Cursor
		// Strings and Booleans are derived by the augmentation pass.
		Strings  *APIStrings
		Booleans *APIBooleans
	}

	// Field holds the information of an entity field.
	Field struct {
		// Name of the field, e.g. "createdAt".
		Name string
		// Kind classifies the field.
		Kind FieldKind
		// Type is the schema type of the field, e.g. "string" or "Date".
		Type string
		// Internal fields are never exported in responses.
		Internal bool
		// Deprecated marks the generated members of the field.
		Deprecated bool
		// Strings holds upstream naming plus the derived cursor bound names.
		Strings FieldStrings
	}

	// FieldStrings are per-field naming strings.
	FieldStrings struct {
		// FieldResponseType is populated upstream.
		FieldResponseType string `yaml:"fieldResponseType,omitempty"`
		// MinVar and MaxVar are set for fields bound by a cursor.
		MinVar string `yaml:"minVar,omitempty"`
		MaxVar string `yaml:"maxVar,omitempty"`
	}

	// Type is a schema type reference of an entity.
	Type struct {
		// Name of the type.
		Name string
		// Import holds the module the type is imported from. Empty for
		// types that are defined inline.
		Import string
		// Strings holds the derived package references.
		Strings TypeStrings
	}

	// TypeStrings are the derived strings of an import type.
	TypeStrings struct {
		ServiceExternalPackage string `yaml:"serviceExternalPackage,omitempty"`
	}
)

// FieldKind classifies entity fields.
type FieldKind uint8

// Field kinds.
const (
	FieldPrimitive FieldKind = iota
	FieldAssociation
	FieldComputed
	FieldComputedAsync
)

var fieldKindNames = [...]string{
	FieldPrimitive:     "primitive",
	FieldAssociation:   "association",
	FieldComputed:      "computed",
	FieldComputedAsync: "computedAsync",
}

// String returns the schema name of the field kind.
func (k FieldKind) String() string {
	if int(k) < len(fieldKindNames) {
		return fieldKindNames[k]
	}
	return fmt.Sprintf("FieldKind(%d)", k)
}

// ParseFieldKind parses the schema name of a field kind.
func ParseFieldKind(s string) (FieldKind, error) {
	if i := slices.Index(fieldKindNames[:], s); i >= 0 {
		return FieldKind(i), nil
	}
	return 0, fmt.Errorf("unknown field kind %q", s)
}

// IsPrimitive reports whether the field is a primitive (stored) field.
func (f Field) IsPrimitive() bool { return f.Kind == FieldPrimitive }

// IsPresentable reports whether the field is exported in responses.
func (f Field) IsPresentable() bool { return !f.Internal }

// IsImport reports whether the type is imported from another module.
func (t Type) IsImport() bool { return t.Import != "" }

// IsPresentable reports whether the entity has a response projection.
func (e *Entity) IsPresentable() bool { return !e.Internal }

// FieldByName returns the entity field with the given name.
func (e *Entity) FieldByName(name string) (*Field, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// HasMethod reports whether the entity declares the given API method.
func (e *Entity) HasMethod(m Method) bool {
	return e.API != nil && slices.Contains(e.API.Methods, m)
}

// SortedEntities returns the entities of the graph sorted by name.
func (g *Graph) SortedEntities() []*Entity {
	names := make([]string, 0, len(g.Entities))
	for name := range g.Entities {
		names = append(names, name)
	}
	slices.Sort(names)
	entities := make([]*Entity, len(names))
	for i, name := range names {
		entities[i] = g.Entities[name]
	}
	return entities
}

// Method is an API method an entity may declare.
type Method string

// API methods.
const (
	MethodGetMany    Method = "getMany"
	MethodGetOne     Method = "getOne"
	MethodGetOneSafe Method = "getOneSafe"
	MethodCreateOne  Method = "createOne"
	MethodUpdateOne  Method = "updateOne"
	MethodDeleteOne  Method = "deleteOne"
)

// Methods returns all known API methods.
func Methods() []Method {
	return []Method{
		MethodGetMany,
		MethodGetOne,
		MethodGetOneSafe,
		MethodCreateOne,
		MethodUpdateOne,
		MethodDeleteOne,
	}
}

// Valid reports whether m is a known API method.
func (m Method) Valid() bool {
	return slices.Contains(Methods(), m)
}

// Order is the direction of a cursor key.
type Order string

// Cursor orders.
const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Valid reports whether o is a known order.
func (o Order) Valid() bool { return o == Asc || o == Desc }

// CursorKey is one field of a cursor directive.
type CursorKey struct {
	Field string
	Order Order
}

// Cursor is a pagination directive over one or more fields.
// Keys keep their declaration order.
type Cursor []CursorKey

// PolicyKind distinguishes field-scoped from entity-scoped policies.
type PolicyKind uint8

const (
	// PolicyEntity policies guard every presentation of the entity.
	PolicyEntity PolicyKind = iota
	// PolicyFields policies guard a set of protected fields.
	PolicyFields
)

// Policy is a named authorization rule, optionally scoped to fields.
type Policy struct {
	Name string
	Kind PolicyKind
	// Fields holds the protected fields of a PolicyFields policy.
	Fields []string
}

// FieldPolicy returns a policy protecting the given fields. Without
// fields, the policy guards the whole entity.
func FieldPolicy(name string, fields ...string) Policy {
	if len(fields) == 0 {
		return EntityPolicy(name)
	}
	return Policy{Name: name, Kind: PolicyFields, Fields: slices.Clone(fields)}
}

// EntityPolicy returns a policy guarding the whole entity.
func EntityPolicy(name string) Policy {
	return Policy{Name: name, Kind: PolicyEntity}
}

// FieldScoped reports whether the policy protects a set of fields.
func (p Policy) FieldScoped() bool { return p.Kind == PolicyFields }

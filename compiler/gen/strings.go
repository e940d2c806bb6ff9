package gen

type (
	// APIStrings is the name-derivation table of an entity.
	APIStrings struct {
		ManyEntsVar    string `yaml:"manyEntsVar"`
		OneEntVar      string `yaml:"oneEntVar"`
		HandlersClass  string `yaml:"handlersClass"`
		ActionsClass   string `yaml:"actionsClass"`
		ServiceClass   string `yaml:"serviceClass"`
		APIClientClass string `yaml:"apiClientClass"`
		ManyCursor     string `yaml:"manyCursor"`
		ManyResponse   string `yaml:"manyResponse"`
		OneResponse    string `yaml:"oneResponse"`
		GetManyQuery   string `yaml:"getManyQuery"`
		GetOneParams   string `yaml:"getOneParams"`
		CreateOneBody  string `yaml:"createOneBody"`
		UpdateOneBody  string `yaml:"updateOneBody"`

		// Set when a server is configured.
		BaseServicePackage      string `yaml:"baseServicePackage,omitempty"`
		EntityServicePackage    string `yaml:"entityServicePackage,omitempty"`
		ServiceEntityPackage    string `yaml:"serviceEntityPackage,omitempty"`
		ServiceInterfacePackage string `yaml:"serviceInterfacePackage,omitempty"`
		ServiceTypePackage      string `yaml:"serviceTypePackage,omitempty"`
		// Set when a client is configured.
		ClientTypePackage string `yaml:"clientTypePackage,omitempty"`
	}

	// APIBooleans are the method-presence flags of an entity.
	APIBooleans struct {
		HasGetMany    bool `yaml:"hasGetMany"`
		HasGetOne     bool `yaml:"hasGetOne"`
		HasGetOneSafe bool `yaml:"hasGetOneSafe"`
		HasCreateOne  bool `yaml:"hasCreateOne"`
		HasUpdateOne  bool `yaml:"hasUpdateOne"`
		HasDeleteOne  bool `yaml:"hasDeleteOne"`
		// HasGetOneRequest is set if any method takes a single-entity request.
		HasGetOneRequest bool `yaml:"hasGetOneRequest"`
	}

	// CursorBound holds the bound variable names derived for a cursor field.
	CursorBound struct {
		MinVar string
		MaxVar string
	}

	// StringSet is the outcome of BuildStrings for one entity.
	StringSet struct {
		Strings  *APIStrings
		Booleans *APIBooleans
		// Bounds maps cursor field names to their bound names.
		Bounds map[string]CursorBound
		// ExternalPackages maps import types to their package as seen
		// from the service directory.
		ExternalPackages map[*Type]string
	}
)

// BuildStrings derives the API naming strings, method flags, cursor bounds
// and package references of an entity. The entity is not modified; see
// StringSet.Apply.
func BuildStrings(e *Entity, c *Config) (*StringSet, error) {
	bounds, err := cursorBounds(e)
	if err != nil {
		return nil, err
	}
	set := &StringSet{
		Strings:          apiStrings(e, c),
		Booleans:         apiBooleans(e),
		Bounds:           bounds,
		ExternalPackages: make(map[*Type]string),
	}
	if server := c.API.Server; server != nil {
		for _, t := range e.Types {
			if t.IsImport() {
				set.ExternalPackages[t] = RelativePackage(server.ServicePath, t.Import, c)
			}
		}
	}
	return set, nil
}

// Apply attaches the set to the entity, creating its api section if absent.
func (s *StringSet) Apply(e *Entity) {
	if e.API == nil {
		e.API = &API{}
	}
	e.API.Strings = s.Strings
	e.API.Booleans = s.Booleans
	for _, f := range e.Fields {
		b, ok := s.Bounds[f.Name]
		if !ok {
			continue
		}
		if b.MinVar != "" {
			f.Strings.MinVar = b.MinVar
		}
		if b.MaxVar != "" {
			f.Strings.MaxVar = b.MaxVar
		}
	}
	for t, pkg := range s.ExternalPackages {
		t.Strings.ServiceExternalPackage = pkg
	}
}

func apiStrings(e *Entity, c *Config) *APIStrings {
	one, many := titleCase(e.Name), titleCase(plural(e.Name))
	s := &APIStrings{
		ManyEntsVar:    camel(many),
		OneEntVar:      camel(e.Name),
		HandlersClass:  one + "Handlers",
		ActionsClass:   one + "Actions",
		ServiceClass:   one + "Service",
		APIClientClass: one + "ApiClient",
		ManyCursor:     "Many" + many + "Cursor",
		ManyResponse:   "Many" + many + "Response",
		OneResponse:    "One" + one + "Response",
		GetManyQuery:   "GetMany" + many + "Query",
		GetOneParams:   "GetOne" + one + "Params",
		CreateOneBody:  "CreateOne" + one + "Body",
		UpdateOneBody:  "UpdateOne" + one + "Body",
	}
	name := kebab(e.Name)
	if server := c.API.Server; server != nil {
		service := JoinRelative(server.ServicePath, name)
		s.BaseServicePackage = RelativePackage(c.GeneratedPath(), service, c)
		s.EntityServicePackage = RelativePackage(c.EntityPath, service, c)
		s.ServiceEntityPackage = RelativePackage(server.ServicePath, JoinRelative(c.EntityPath, name), c)
		s.ServiceInterfacePackage = RelativePackage(server.ServicePath, JoinRelative(c.GeneratedPath(), name+"-service-interface"), c)
		s.ServiceTypePackage = RelativePackage(server.ServicePath, JoinRelative(c.GeneratedPath(), name+"-type"), c)
	}
	if client := c.API.Client; client != nil {
		s.ClientTypePackage = RelativePackage(client.ClientPath, JoinRelative(c.GeneratedPath(), name+"-type"), c)
	}
	return s
}

func apiBooleans(e *Entity) *APIBooleans {
	b := &APIBooleans{
		HasGetMany:    e.HasMethod(MethodGetMany),
		HasGetOne:     e.HasMethod(MethodGetOne),
		HasGetOneSafe: e.HasMethod(MethodGetOneSafe),
		HasCreateOne:  e.HasMethod(MethodCreateOne),
		HasUpdateOne:  e.HasMethod(MethodUpdateOne),
		HasDeleteOne:  e.HasMethod(MethodDeleteOne),
	}
	b.HasGetOneRequest = b.HasGetOne || b.HasGetOneSafe || b.HasUpdateOne || b.HasDeleteOne
	return b
}

// cursorBounds returns the bound names of all primitive, presentable fields
// referenced by a cursor. An ascending key bounds the next page from above
// (max), a descending key from below (min).
func cursorBounds(e *Entity) (map[string]CursorBound, error) {
	bounds := make(map[string]CursorBound)
	if e.API == nil {
		return bounds, nil
	}
	for _, cursor := range e.API.Cursors {
		for _, key := range cursor {
			f, ok := e.FieldByName(key.Field)
			if !ok {
				return nil, NewSchemaError(e.Name, key.Field, "cursor references unknown field", nil)
			}
			if !key.Order.Valid() {
				return nil, NewSchemaError(e.Name, key.Field, "cursor order must be asc or desc, got "+string(key.Order), nil)
			}
			if !f.IsPrimitive() || !f.IsPresentable() {
				continue
			}
			b := bounds[f.Name]
			switch key.Order {
			case Asc:
				b.MaxVar = "max" + titleCase(f.Name)
			case Desc:
				b.MinVar = "min" + titleCase(f.Name)
			}
			bounds[f.Name] = b
		}
	}
	return bounds, nil
}

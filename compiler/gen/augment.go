package gen

// Augment augments the config and every entity of the graph in place:
//
//  1. AugmentConfig derives the config package references.
//  2. BuildStrings attaches API strings and booleans to every entity.
//  3. BuildCode appends the code fragments of every entity.
//
// Entities are processed in name order. The schema is checked before any
// entity is touched, so a failing run leaves the entities as they were.
// Augment is not idempotent: calling it twice on the same graph appends
// every fragment a second time.
func Augment(g *Graph, opts ...Option) error {
	a := &augmenter{}
	if err := a.apply(opts...); err != nil {
		return err
	}
	if g == nil {
		return NewConfigError("graph", nil, "graph cannot be nil")
	}
	if err := g.Config.Validate(); err != nil {
		return err
	}
	entities := g.SortedEntities()
	for _, e := range entities {
		if err := check(e); err != nil {
			return err
		}
	}

	log := a.log()
	AugmentConfig(g.Config)
	sets := make([]*StringSet, len(entities))
	for i, e := range entities {
		set, err := BuildStrings(e, g.Config)
		if err != nil {
			return err
		}
		sets[i] = set
	}
	for i, e := range entities {
		log.Info("augmenting entity", "entity", e.Name, "step", "strings")
		sets[i].Apply(e)
	}
	for _, e := range entities {
		log.Info("augmenting entity", "entity", e.Name, "step", "code")
		e.Code.Merge(BuildCode(e, g.Config))
	}
	return nil
}

// Augment is the method form of the package-level Augment.
func (g *Graph) Augment(opts ...Option) error {
	return Augment(g, opts...)
}

// check verifies the upstream guarantees the augmentation relies on.
func check(e *Entity) error {
	switch {
	case e == nil:
		return NewSchemaError("", "", "nil entity", nil)
	case e.Name == "":
		return NewSchemaError("", "", "entity name cannot be empty", nil)
	case e.Strings.FieldRequestClass == "":
		return NewSchemaError(e.Name, "", "missing upstream string fieldRequestClass", nil)
	case e.Strings.SelectedResponseClass == "":
		return NewSchemaError(e.Name, "", "missing upstream string selectedResponseClass", nil)
	}
	for _, p := range e.Policies {
		if p.Name == "" {
			return NewSchemaError(e.Name, "", "policy name cannot be empty", nil)
		}
	}
	_, err := cursorBounds(e)
	return err
}

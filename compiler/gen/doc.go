// Package gen augments an entity-schema graph with API metadata and emits
// the TypeScript code fragments a code writer inserts into generated files.
//
// # Architecture
//
// The augmentation pass follows this flow:
//
//	Schema files (schema/*.yml)
//	        ↓
//	   load.LoadGraph (entities + config)
//	        ↓
//	   Graph (caller-owned entity map)
//	        ↓
//	   Augment (config packages, entity strings, code fragments)
//	        ↓
//	   FragmentWriter (type, base and entity files)
//
// Augment itself performs no I/O. It mutates the graph in place and is the
// required pre-step before any emission.
//
// # Key Types
//
//   - Graph: Config plus all entities by name
//   - Entity: fields, types, policies, api section and code buckets
//   - Policy: a field-scoped or entity-scoped authorization rule
//   - Cursor: ordered pagination keys driving min/max bounds
//   - Code: six append-only slots of source lines
//
// # Import Resolution
//
// Generated modules import each other with relative specifiers computed by
// RelativePackage. Targets that do not start with "." are bare package names
// and are kept as is:
//
//	RelativePackage("entities/generated", "./src/index", cfg) // "../../src/index"
//	RelativePackage("services", "@airent/api", cfg)           // "@airent/api"
//
// Paths always use forward slashes, so the output does not depend on the
// host operating system.
//
// # Authorization
//
// Every policy of an entity produces a checker and an authorizer stub in
// the generated base class, and a beforePresent hook runs all checkers
// before any field is returned. The stubs throw until the hand-editable
// entity class overrides them.
//
// # Error Handling
//
// The package uses structured error types:
//
//   - SchemaError: the entity graph breaks the loader contract
//   - ConfigError: invalid configuration
//   - GenerationError: the emission stage failed
//
// Example:
//
//	if err := gen.Augment(graph, gen.WithVerbose(true)); err != nil {
//	    if gen.IsSchemaError(err) {
//	        // Handle malformed schema
//	    }
//	    return err
//	}
package gen

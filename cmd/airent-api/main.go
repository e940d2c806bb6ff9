// Command airent-api augments airent entity schemas with API metadata and
// writes the generated TypeScript entity modules.
//
// Usage:
//
//	# Generate with the default config (airent.config.json)
//	airent-api generate
//
//	# Generate with a custom config and regenerate on schema changes
//	airent-api generate --config airent.config.yml --watch
//
//	# Print the augmented strings and code of one entity
//	airent-api inspect User
package main

func main() {
	Execute()
}

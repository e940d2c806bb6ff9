// Package load reads the airent config and the entity schema files and
// builds the graph consumed by the gen package.
package load

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ChrisWren/airent-api/compiler/gen"
)

// DefaultSchemaPath is used when the config does not set schemaPath.
const DefaultSchemaPath = "schemas"

// schemaExts are the accepted schema file extensions. JSON is decoded
// with the YAML decoder.
var schemaExts = []string{".yml", ".yaml", ".json"}

// ParseConfig decodes a YAML (or JSON) config and applies its defaults.
func ParseConfig(buf []byte) (*gen.Config, error) {
	c := &gen.Config{}
	if err := yaml.Unmarshal(buf, c); err != nil {
		return nil, gen.NewConfigError("config", nil, err.Error())
	}
	if c.Type == "" {
		c.Type = gen.ModuleCommonJS
	}
	if c.SchemaPath == "" {
		c.SchemaPath = DefaultSchemaPath
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadConfig reads the config file at the given path.
func LoadConfig(name string) (*gen.Config, error) {
	buf, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c, err := ParseConfig(buf)
	if err != nil {
		return nil, fmt.Errorf("load config %q: %w", name, err)
	}
	return c, nil
}

// LoadSchemas reads all schema files of a directory in name order.
func LoadSchemas(dir string) ([]*Schema, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load schemas: %w", err)
	}
	var schemas []*Schema
	for _, ent := range entries {
		if ent.IsDir() || !slices.Contains(schemaExts, strings.ToLower(filepath.Ext(ent.Name()))) {
			continue
		}
		name := filepath.Join(dir, ent.Name())
		buf, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("load schema: %w", err)
		}
		s, err := ParseSchema(buf)
		if err != nil {
			return nil, gen.NewSchemaError("", "", fmt.Sprintf("parse %s", name), err)
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

// NewGraph builds a graph from a config and its schemas.
func NewGraph(c *gen.Config, schemas []*Schema) (*gen.Graph, error) {
	g := &gen.Graph{Config: c, Entities: make(map[string]*gen.Entity, len(schemas))}
	for _, s := range schemas {
		e, err := s.ToEntity()
		if err != nil {
			return nil, err
		}
		if _, ok := g.Entities[e.Name]; ok {
			return nil, gen.NewSchemaError(e.Name, "", "entity redeclared", nil)
		}
		g.Entities[e.Name] = e
	}
	return g, nil
}

// LoadGraph loads the config at the given path and the schemas it points
// to. The schema path is resolved against the directory of the config.
func LoadGraph(configPath string) (*gen.Graph, error) {
	c, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	schemas, err := LoadSchemas(SchemaDir(configPath, c))
	if err != nil {
		return nil, err
	}
	return NewGraph(c, schemas)
}

// SchemaDir returns the schema directory of the config at configPath.
func SchemaDir(configPath string, c *gen.Config) string {
	return filepath.Join(filepath.Dir(configPath), filepath.FromSlash(c.SchemaPath))
}

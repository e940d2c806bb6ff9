package gen

import "path"

// DefaultLibPackage is the library package generated code imports when
// no lib import path is configured.
const DefaultLibPackage = "@airent/api"

// Module types of the generated project.
const (
	ModuleCommonJS = "commonjs"
	ModuleESM      = "module"
)

type (
	// Config holds the global settings of a run. The fields tagged as
	// derived are computed by AugmentConfig.
	Config struct {
		// Type is the module type of the generated project: "commonjs"
		// (default) or "module". ES modules import files with a ".js" suffix.
		Type string `yaml:"type,omitempty"`
		// SchemaPath is the directory of the entity schema files.
		SchemaPath string `yaml:"schemaPath,omitempty"`
		// EntityPath is the root directory of the generated entity modules.
		EntityPath string `yaml:"entityPath"`
		// ContextImportPath is the module that exports the request context.
		ContextImportPath string `yaml:"contextImportPath,omitempty"`
		// API holds the api extension settings.
		API APIConfig `yaml:"api"`

		// ServiceContextPackage is derived when a server is configured.
		ServiceContextPackage string `yaml:"serviceContextPackage,omitempty"`
	}

	// APIConfig holds the api extension settings.
	APIConfig struct {
		// LibImportPath overrides DefaultLibPackage.
		LibImportPath string `yaml:"libImportPath,omitempty"`
		// Server is set if server code (services, handlers) is generated.
		Server *ServerConfig `yaml:"server,omitempty"`
		// Client is set if client code is generated.
		Client *ClientConfig `yaml:"client,omitempty"`

		// Derived.
		BaseLibPackage   string `yaml:"baseLibPackage,omitempty"`
		EntityLibPackage string `yaml:"entityLibPackage,omitempty"`
		ClientLibPackage string `yaml:"clientLibPackage,omitempty"`
	}

	// ServerConfig holds the server generation settings.
	ServerConfig struct {
		ServicePath             string `yaml:"servicePath"`
		HandlerConfigImportPath string `yaml:"handlerConfigImportPath"`

		// Derived.
		HandlerConfigPackage string `yaml:"handlerConfigPackage,omitempty"`
	}

	// ClientConfig holds the client generation settings.
	ClientConfig struct {
		ClientPath string `yaml:"clientPath"`
	}
)

// ModuleSuffix returns the suffix appended to relative module specifiers.
func (c *Config) ModuleSuffix() string {
	if c != nil && c.Type == ModuleESM {
		return ".js"
	}
	return ""
}

// GeneratedPath returns the directory of the generated (overwritable)
// entity modules.
func (c *Config) GeneratedPath() string {
	return path.Join(toSlash(c.EntityPath), "generated")
}

// Validate checks the declared fields of the config.
func (c *Config) Validate() error {
	switch {
	case c == nil:
		return NewConfigError("config", nil, "config cannot be nil")
	case c.EntityPath == "":
		return NewConfigError("entityPath", nil, "entity path cannot be empty")
	case c.Type != "" && c.Type != ModuleCommonJS && c.Type != ModuleESM:
		return NewConfigError("type", c.Type, "unsupported module type; use commonjs or module")
	case c.API.Server != nil && c.API.Server.ServicePath == "":
		return NewConfigError("api.server.servicePath", nil, "service path cannot be empty")
	case c.API.Client != nil && c.API.Client.ClientPath == "":
		return NewConfigError("api.client.clientPath", nil, "client path cannot be empty")
	}
	return nil
}

// AugmentConfig adds the package references used by generated code to the
// config. Sections that are not configured are skipped.
func AugmentConfig(c *Config) {
	lib := c.API.LibImportPath
	c.API.BaseLibPackage = libPackage(c.GeneratedPath(), lib, c)
	c.API.EntityLibPackage = libPackage(c.EntityPath, lib, c)

	if server := c.API.Server; server != nil {
		c.ServiceContextPackage = RelativePackage(server.ServicePath, c.ContextImportPath, c)
		server.HandlerConfigPackage = RelativePackage(c.GeneratedPath(), server.HandlerConfigImportPath, c)
	}
	if client := c.API.Client; client != nil {
		c.API.ClientLibPackage = libPackage(client.ClientPath, lib, c)
	}
}

func libPackage(source, lib string, c *Config) string {
	if lib == "" {
		return DefaultLibPackage
	}
	return RelativePackage(source, lib, c)
}

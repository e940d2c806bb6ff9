package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ModuleSuffix(t *testing.T) {
	assert.Empty(t, (&Config{}).ModuleSuffix())
	assert.Empty(t, (&Config{Type: ModuleCommonJS}).ModuleSuffix())
	assert.Equal(t, ".js", (&Config{Type: ModuleESM}).ModuleSuffix())
	assert.Empty(t, (*Config)(nil).ModuleSuffix())
}

func TestConfig_GeneratedPath(t *testing.T) {
	assert.Equal(t, "entities/generated", (&Config{EntityPath: "entities"}).GeneratedPath())
	assert.Equal(t, "src/entities/generated", (&Config{EntityPath: `src\entities\`}).GeneratedPath())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    *Config
		option string
	}{
		{"nil", nil, "config"},
		{"entity path", &Config{}, "entityPath"},
		{"type", &Config{EntityPath: "entities", Type: "umd"}, "type"},
		{"service path", &Config{EntityPath: "entities", API: APIConfig{Server: &ServerConfig{}}}, "api.server.servicePath"},
		{"client path", &Config{EntityPath: "entities", API: APIConfig{Client: &ClientConfig{}}}, "api.client.clientPath"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.option, cerr.Option)
		})
	}

	require.NoError(t, testConfig().Validate())
}

func TestAugmentConfig(t *testing.T) {
	t.Run("default lib package", func(t *testing.T) {
		c := &Config{EntityPath: "entities"}
		AugmentConfig(c)

		assert.Equal(t, DefaultLibPackage, c.API.BaseLibPackage)
		assert.Equal(t, DefaultLibPackage, c.API.EntityLibPackage)
		assert.Empty(t, c.API.ClientLibPackage)
		assert.Empty(t, c.ServiceContextPackage)
	})

	t.Run("bare lib package", func(t *testing.T) {
		c := &Config{EntityPath: "entities", API: APIConfig{LibImportPath: "my-lib"}}
		AugmentConfig(c)

		assert.Equal(t, "my-lib", c.API.BaseLibPackage)
		assert.Equal(t, "my-lib", c.API.EntityLibPackage)
	})

	t.Run("relative lib package", func(t *testing.T) {
		c := &Config{EntityPath: "entities", API: APIConfig{LibImportPath: "./lib"}}
		AugmentConfig(c)

		assert.Equal(t, "../../lib", c.API.BaseLibPackage)
		assert.Equal(t, "../lib", c.API.EntityLibPackage)
	})

	t.Run("server and client", func(t *testing.T) {
		c := testConfig()
		c.Type = ModuleESM
		c.API.LibImportPath = "./src/lib"
		AugmentConfig(c)

		assert.Equal(t, "../src/context.js", c.ServiceContextPackage)
		assert.Equal(t, "../../src/handler-config.js", c.API.Server.HandlerConfigPackage)
		assert.Equal(t, "../src/lib.js", c.API.ClientLibPackage)
	})

	t.Run("bare context package", func(t *testing.T) {
		c := testConfig()
		c.ContextImportPath = "@app/context"
		AugmentConfig(c)

		assert.Equal(t, "@app/context", c.ServiceContextPackage)
		assert.Equal(t, DefaultLibPackage, c.API.ClientLibPackage)
	})
}

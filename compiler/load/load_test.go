package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChrisWren/airent-api/compiler/gen"
)

func TestParseConfig(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		c, err := ParseConfig([]byte("entityPath: entities\n"))
		require.NoError(t, err)
		assert.Equal(t, gen.ModuleCommonJS, c.Type)
		assert.Equal(t, DefaultSchemaPath, c.SchemaPath)
		assert.Nil(t, c.API.Server)
		assert.Nil(t, c.API.Client)
	})

	t.Run("decodes json", func(t *testing.T) {
		c, err := ParseConfig([]byte(`{"type": "module", "entityPath": "src/entities", "api": {"client": {"clientPath": "src/clients"}}}`))
		require.NoError(t, err)
		assert.Equal(t, gen.ModuleESM, c.Type)
		require.NotNil(t, c.API.Client)
		assert.Equal(t, "src/clients", c.API.Client.ClientPath)
	})

	t.Run("missing entity path", func(t *testing.T) {
		_, err := ParseConfig([]byte("type: commonjs\n"))
		require.Error(t, err)
		assert.True(t, gen.IsConfigError(err))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseConfig([]byte("entityPath: [\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, gen.ErrMissingConfig)
	})
}

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig("testdata/valid/airent.config.yml")
	require.NoError(t, err)
	assert.Equal(t, gen.ModuleESM, c.Type)
	assert.Equal(t, "src/entities", c.EntityPath)
	require.NotNil(t, c.API.Server)
	assert.Equal(t, "src/services", c.API.Server.ServicePath)

	_, err = LoadConfig("testdata/missing.yml")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadSchemas(t *testing.T) {
	schemas, err := LoadSchemas("testdata/valid/schemas")
	require.NoError(t, err)
	require.Len(t, schemas, 2, "non-schema files are ignored")
	assert.Equal(t, "Message", schemas[0].Entity)
	assert.Equal(t, "User", schemas[1].Entity)

	_, err = LoadSchemas("testdata/none")
	require.Error(t, err)
}

func TestLoadSchemas_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.yml"), []byte("entity: User\napi:\n  methods: [fetchAll]\n"), 0o644))

	_, err := LoadSchemas(dir)
	require.Error(t, err)
	assert.True(t, gen.IsSchemaError(err))
	assert.Contains(t, err.Error(), "fetchAll")
}

func TestLoadGraph(t *testing.T) {
	g, err := LoadGraph("testdata/valid/airent.config.yml")
	require.NoError(t, err)
	require.Len(t, g.Entities, 2)

	user := g.Entities["User"]
	require.NotNil(t, user)
	assert.Equal(t, "UserFieldRequest", user.Strings.FieldRequestClass)
	assert.Equal(t, "SelectedUserResponse", user.Strings.SelectedResponseClass)
	require.Len(t, user.Policies, 2)
	assert.Equal(t, gen.FieldPolicy("private", "email"), user.Policies[0])
	assert.Equal(t, gen.EntityPolicy("admin"), user.Policies[1])

	message := g.Entities["Message"]
	require.NotNil(t, message)
	require.NotNil(t, message.API)
	assert.Equal(t, []gen.Method{gen.MethodGetMany, gen.MethodGetOneSafe}, message.API.Methods)
	content, ok := message.FieldByName("content")
	require.True(t, ok)
	assert.Equal(t, "string | null", content.Strings.FieldResponseType)

	require.NoError(t, g.Augment())
	assert.Equal(t, "users", user.API.Strings.ManyEntsVar)
}

func TestLoadGraph_Redeclared(t *testing.T) {
	_, err := LoadGraph("testdata/failure/airent.config.yml")
	require.Error(t, err)
	var serr *gen.SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "User", serr.Entity)
}

func TestSchemaDir(t *testing.T) {
	c := &gen.Config{SchemaPath: "schemas/entities"}
	assert.Equal(t, filepath.Join("project", "schemas", "entities"), SchemaDir(filepath.Join("project", "airent.config.yml"), c))
	assert.Equal(t, filepath.Join("schemas", "entities"), SchemaDir("airent.config.yml", c))
}

package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("underlying error")
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"schema all fields", NewSchemaError("User", "createdAt", "unknown cursor field", cause), "airent-api: schema User.createdAt: unknown cursor field: underlying error"},
		{"schema entity only", &SchemaError{Entity: "User"}, "airent-api: schema User"},
		{"schema no entity", NewSchemaError("", "", "missing entity name", nil), "airent-api: schema: missing entity name"},
		{"config with value", NewConfigError("type", "umd", "unsupported module type"), "airent-api: config type: unsupported module type (got umd)"},
		{"config without value", NewConfigError("entityPath", nil, "cannot be empty"), "airent-api: config entityPath: cannot be empty"},
		{"generation all fields", NewGenerationError("User", "entities/user.ts", "cannot write file", cause), "airent-api: generate User entities/user.ts: cannot write file: underlying error"},
		{"generation cause only", NewGenerationError("", "", "", cause), "airent-api: generate: underlying error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestSchemaError(t *testing.T) {
	cause := errors.New("root cause")
	err := NewSchemaError("User", "", "", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrInvalidSchema)
	assert.True(t, IsSchemaError(err))
	assert.False(t, IsSchemaError(errors.New("other")))
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("entityPath", nil, "missing")
	assert.True(t, IsConfigError(err))
	assert.ErrorIs(t, err, ErrMissingConfig)
	assert.NotErrorIs(t, err, ErrInvalidSchema)
	assert.False(t, IsConfigError(errors.New("other")))
}

func TestGenerationError(t *testing.T) {
	cause := errors.New("io error")
	err := NewGenerationError("User", "", "", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.True(t, IsGenerationError(err))
}

func TestErrorsAs(t *testing.T) {
	err := fmt.Errorf("load: %w", NewSchemaError("User", "email", "invalid", nil))
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "User", schemaErr.Entity)
	assert.Equal(t, "email", schemaErr.Field)
	assert.True(t, IsSchemaError(err))
	assert.False(t, IsConfigError(err))
	assert.False(t, IsGenerationError(err))
}

package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestSnapshot(t *testing.T) {
	name := filepath.Join(t.TempDir(), SnapshotFile)

	s, err := ReadSnapshot(name)
	require.NoError(t, err)
	assert.Empty(t, s.Files)

	s.Record("entities/generated/user-type.ts", []byte("a"))
	assert.True(t, s.Unchanged("entities/generated/user-type.ts", []byte("a")))
	assert.False(t, s.Unchanged("entities/generated/user-type.ts", []byte("b")))
	assert.False(t, s.Unchanged("entities/generated/user-base.ts", []byte("a")))
	require.NoError(t, s.Write(name))

	s, err = ReadSnapshot(name)
	require.NoError(t, err)
	assert.True(t, s.Unchanged("entities/generated/user-type.ts", []byte("a")))
}

func TestReadSnapshot(t *testing.T) {
	t.Run("other version", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), SnapshotFile)
		buf, err := msgpack.Marshal(&Snapshot{Version: snapshotVersion + 1, Files: map[string]string{"a": "b"}})
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(name, buf, 0o644))

		s, err := ReadSnapshot(name)
		require.NoError(t, err)
		assert.Empty(t, s.Files)
	})

	t.Run("corrupted", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), SnapshotFile)
		require.NoError(t, os.WriteFile(name, []byte{0xc1}, 0o644))

		_, err := ReadSnapshot(name)
		require.Error(t, err)
	})
}

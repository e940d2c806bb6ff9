package gen

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// SnapshotFile is the name of the snapshot file under the output directory.
const SnapshotFile = ".airent-api.snapshot"

// snapshotVersion is bumped when the emitted layout changes, which
// invalidates all recorded hashes.
const snapshotVersion = 1

// Snapshot records the content hash of every generated file written by the
// last run. It is safe for concurrent use.
type Snapshot struct {
	mu      sync.Mutex
	Version int               `msgpack:"version"`
	Files   map[string]string `msgpack:"files"`
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{Version: snapshotVersion, Files: make(map[string]string)}
}

// ReadSnapshot reads the snapshot at the given path. A missing file or a
// snapshot of another version yields an empty snapshot.
func ReadSnapshot(name string) (*Snapshot, error) {
	buf, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return NewSnapshot(), nil
	}
	if err != nil {
		return nil, err
	}
	s := NewSnapshot()
	if err := msgpack.Unmarshal(buf, s); err != nil {
		return nil, err
	}
	if s.Version != snapshotVersion || s.Files == nil {
		return NewSnapshot(), nil
	}
	return s, nil
}

// Write stores the snapshot at the given path.
func (s *Snapshot) Write(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf, err := msgpack.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(name, buf, 0o644)
}

// Unchanged reports whether the recorded hash of file matches content.
func (s *Snapshot) Unchanged(file string, content []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.Files[file]
	return ok && h == hash(content)
}

// Record stores the hash of the content written to file.
func (s *Snapshot) Record(file string, content []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Files[file] = hash(content)
}

func hash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

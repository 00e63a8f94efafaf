package checkpoint

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// DefaultPath is where the file store keeps progress when no path is set.
const DefaultPath = ".checkpoints/progress.json"

// FileStore keeps the record as indented JSON in one file.
type FileStore struct {
	path string
	now  clock
}

// NewFileStore returns a store at path, or DefaultPath when empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{path: path}
}

func (s *FileStore) Location() string { return s.path }

func (s *FileStore) Load(_ context.Context) (Record, bool, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("checkpoint: read %s: %w", s.path, err)
	}
	rec, err := decode(b)
	if err != nil {
		return Record{}, false, err
	}
	return rec, true, nil
}

// Save replaces the file atomically: a crash leaves either the old or the
// new record, never a torn one.
func (s *FileStore) Save(_ context.Context, rec Record) error {
	b, err := encode(stamp(rec, s.now.now()))
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("checkpoint: mkdir %s: %w", dir, err)
	}
	if err := renameio.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("checkpoint: write %s: %w", s.path, err)
	}
	return nil
}

// Delete removes the file. A missing file is not an error.
func (s *FileStore) Delete(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checkpoint: delete %s: %w", s.path, err)
	}
	return nil
}

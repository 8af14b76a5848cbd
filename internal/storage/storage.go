// Package storage provides durable persistence for the resume document.
//
// All backends implement the same one-key contract: the entire serialized
// document is written under a fixed key on every mutation and read back once
// on startup. A missing or unreadable document is not an error surface; the
// store falls back to the built-in default.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jonathan/cvmaker/internal/types"
)

// StorageKey is the fixed key under which the document is persisted.
const StorageKey = "cvmaker-resume"

// ErrNotFound indicates no document has been persisted yet.
var ErrNotFound = errors.New("no stored resume")

// Persister reads and writes the single authoritative document.
type Persister interface {
	// Load returns the persisted document, ErrNotFound when absent, or any
	// other error when the stored bytes are unreadable or unparsable.
	Load(ctx context.Context) (types.Resume, error)
	// Save replaces the persisted document.
	Save(ctx context.Context, resume types.Resume) error
}

// FileStore persists the document as a JSON file in a state directory.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed persister rooted at dir. The directory
// is created on first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, StorageKey+".json")}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads and parses the stored document.
func (f *FileStore) Load(_ context.Context) (types.Resume, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.Resume{}, ErrNotFound
		}
		return types.Resume{}, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return types.Resume{}, fmt.Errorf("failed to parse stored resume: %w", err)
	}
	return resume, nil
}

// Save writes the document atomically via a temp file rename.
func (f *FileStore) Save(_ context.Context, resume types.Resume) error {
	data, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize resume: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}
	return nil
}

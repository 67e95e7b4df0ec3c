package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	m "github.com/mouse-blink/bundlepatch/internal/model"
)

const defaultArtifactPerm fs.FileMode = 0o644

// ArtifactStore is the read/write resource behind one artifact. Store
// overwrites the artifact in place; no backup is kept.
type ArtifactStore interface {
	Load() (string, error)
	Store(text string) error
}

// FileArtifactStore reads and writes a single file.
type FileArtifactStore struct {
	path m.Path
}

// NewFileArtifactStore constructs a FileArtifactStore for path.
func NewFileArtifactStore(path m.Path) *FileArtifactStore {
	return &FileArtifactStore{path: path}
}

// Load returns the file contents.
func (s *FileArtifactStore) Load() (string, error) {
	content, err := os.ReadFile(string(s.path))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	return string(content), nil
}

// Store overwrites the file, keeping its permission bits.
func (s *FileArtifactStore) Store(text string) error {
	perm := defaultArtifactPerm

	info, err := os.Stat(string(s.path))
	switch {
	case err == nil:
		perm = info.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("failed to stat %s: %w", s.path, err)
	}

	if err := os.WriteFile(string(s.path), []byte(text), perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	return nil
}

// MemoryArtifactStore keeps the artifact text in memory and counts writes.
type MemoryArtifactStore struct {
	mu     sync.Mutex
	text   string
	writes int
}

// NewMemoryArtifactStore constructs a MemoryArtifactStore holding text.
func NewMemoryArtifactStore(text string) *MemoryArtifactStore {
	return &MemoryArtifactStore{text: text}
}

// Load returns the current text.
func (s *MemoryArtifactStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.text, nil
}

// Store replaces the current text.
func (s *MemoryArtifactStore) Store(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.text = text
	s.writes++

	return nil
}

// Text returns the current text.
func (s *MemoryArtifactStore) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.text
}

// Writes returns how many times Store was called.
func (s *MemoryArtifactStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writes
}

// Package adapter contains filesystem and configuration adapters for the
// bundlepatch CLI.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "github.com/mouse-blink/bundlepatch/internal/model"
)

var (
	// ErrAssetsDirMissing is the kind of LocatorError returned when the
	// assets directory does not exist.
	ErrAssetsDirMissing = errors.New("assets directory not found")
	// ErrArtifactAmbiguous is the kind of LocatorError returned when zero
	// or several files match the artifact pattern.
	ErrArtifactAmbiguous = errors.New("expected exactly one artifact")
)

// LocatorError reports a failed artifact lookup. It is a precondition
// failure and is never retried.
type LocatorError struct {
	Kind    error
	Dir     m.Path
	Pattern string
	Found   []string
}

func (e *LocatorError) Error() string {
	if e == nil {
		return ""
	}

	if errors.Is(e.Kind, ErrAssetsDirMissing) {
		return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Dir)
	}

	return fmt.Sprintf("%s matching %s in %s, found: [%s]", e.Kind.Error(), e.Pattern, e.Dir, strings.Join(e.Found, " "))
}

func (e *LocatorError) Unwrap() error { return e.Kind }

// ArtifactFSAdapter abstracts the filesystem operations the workflow needs
// so patching logic can be tested against in-memory text.
type ArtifactFSAdapter interface {
	// Locate returns the single regular file in dir whose base name matches
	// pattern.
	Locate(dir m.Path, pattern *regexp.Regexp) (m.Path, error)

	// Open binds an ArtifactStore to path. It does not touch the disk.
	Open(path m.Path) ArtifactStore

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalArtifactFSAdapter is the os-backed ArtifactFSAdapter.
type LocalArtifactFSAdapter struct{}

// NewLocalArtifactFSAdapter constructs a LocalArtifactFSAdapter.
func NewLocalArtifactFSAdapter() *LocalArtifactFSAdapter {
	return &LocalArtifactFSAdapter{}
}

// Locate lists dir (non-recursively) and expects exactly one match.
func (a *LocalArtifactFSAdapter) Locate(dir m.Path, pattern *regexp.Regexp) (m.Path, error) {
	if pattern == nil {
		return "", fmt.Errorf("artifact pattern is nil")
	}

	info, err := os.Stat(string(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &LocatorError{Kind: ErrAssetsDirMissing, Dir: dir, Pattern: pattern.String()}
		}

		return "", fmt.Errorf("failed to stat %s: %w", dir, err)
	}

	if !info.IsDir() {
		return "", &LocatorError{Kind: ErrAssetsDirMissing, Dir: dir, Pattern: pattern.String()}
	}

	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var found []string

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if pattern.MatchString(entry.Name()) {
			found = append(found, entry.Name())
		}
	}

	sort.Strings(found)

	if len(found) != 1 {
		return "", &LocatorError{
			Kind:    ErrArtifactAmbiguous,
			Dir:     dir,
			Pattern: pattern.String(),
			Found:   found,
		}
	}

	return a.JoinPath(string(dir), found[0]), nil
}

// Open returns a FileArtifactStore for path.
func (a *LocalArtifactFSAdapter) Open(path m.Path) ArtifactStore {
	return NewFileArtifactStore(path)
}

// RelPath returns the relative path from base to target.
func (a *LocalArtifactFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalArtifactFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

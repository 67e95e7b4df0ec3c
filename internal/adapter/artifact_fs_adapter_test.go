package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	m "github.com/mouse-blink/bundlepatch/internal/model"
)

var indexPattern = regexp.MustCompile(DefaultPattern)

func touch(t *testing.T, dir, name string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestLocalArtifactFSAdapter_Locate(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "index-3f2a.js")
	touch(t, dir, "index-3f2a.css")
	touch(t, dir, "vendor-11.js")

	if err := os.Mkdir(filepath.Join(dir, "index-dir.js"), 0o755); err != nil {
		t.Fatalf("Mkdir() error = %v", err)
	}

	a := NewLocalArtifactFSAdapter()

	path, err := a.Locate(m.Path(dir), indexPattern)
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}

	if want := filepath.Join(dir, "index-3f2a.js"); string(path) != want {
		t.Fatalf("Locate() = %s, want %s", path, want)
	}
}

func TestLocalArtifactFSAdapter_Locate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		kind  error
		found int
	}{
		{
			name:  "missing directory",
			setup: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent") },
			kind:  ErrAssetsDirMissing,
		},
		{
			name: "path is a file",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				touch(t, dir, "assets")

				return filepath.Join(dir, "assets")
			},
			kind: ErrAssetsDirMissing,
		},
		{
			name:  "no candidates",
			setup: func(t *testing.T) string { return t.TempDir() },
			kind:  ErrArtifactAmbiguous,
			found: 0,
		},
		{
			name: "two candidates",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				touch(t, dir, "index-b.js")
				touch(t, dir, "index-a.js")

				return dir
			},
			kind:  ErrArtifactAmbiguous,
			found: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)

			_, err := NewLocalArtifactFSAdapter().Locate(m.Path(dir), indexPattern)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("Locate() error = %v, want kind %v", err, tt.kind)
			}

			var locErr *LocatorError
			if !errors.As(err, &locErr) {
				t.Fatalf("Locate() error is %T, want *LocatorError", err)
			}

			if len(locErr.Found) != tt.found {
				t.Fatalf("Found = %v, want %d entries", locErr.Found, tt.found)
			}
		})
	}
}

func TestLocatorError_Message(t *testing.T) {
	missing := &LocatorError{Kind: ErrAssetsDirMissing, Dir: "src/webview/assets"}
	if got := missing.Error(); got != "assets directory not found: src/webview/assets" {
		t.Fatalf("Error() = %q", got)
	}

	ambiguous := &LocatorError{Kind: ErrArtifactAmbiguous, Dir: "assets", Pattern: DefaultPattern, Found: []string{"index-a.js", "index-b.js"}}
	want := `expected exactly one artifact matching ^index-.*\.js$ in assets, found: [index-a.js index-b.js]`

	if got := ambiguous.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestLocalArtifactFSAdapter_Locate_NilPattern(t *testing.T) {
	if _, err := NewLocalArtifactFSAdapter().Locate(m.Path(t.TempDir()), nil); err == nil {
		t.Fatalf("Locate() expected error for nil pattern")
	}
}

func TestLocalArtifactFSAdapter_RelPath(t *testing.T) {
	a := NewLocalArtifactFSAdapter()

	rel, err := a.RelPath("/repo", "/repo/src/webview/assets/index-1.js")
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	if want := filepath.Join("src", "webview", "assets", "index-1.js"); string(rel) != want {
		t.Fatalf("RelPath() = %s, want %s", rel, want)
	}
}

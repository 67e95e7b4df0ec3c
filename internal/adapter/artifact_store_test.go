package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/bundlepatch/internal/model"
)

func TestFileArtifactStore_LoadStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index-1.js")
	require.NoError(t, os.WriteFile(path, []byte("before"), 0o640))

	store := NewLocalArtifactFSAdapter().Open(m.Path(path))

	text, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "before", text)

	require.NoError(t, store.Store("after"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "after", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestFileArtifactStore_LoadMissing(t *testing.T) {
	store := NewFileArtifactStore(m.Path(filepath.Join(t.TempDir(), "missing.js")))

	_, err := store.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMemoryArtifactStore(t *testing.T) {
	store := NewMemoryArtifactStore("a")

	text, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "a", text)
	assert.Equal(t, 0, store.Writes())

	require.NoError(t, store.Store("b"))
	assert.Equal(t, "b", store.Text())
	assert.Equal(t, 1, store.Writes())
}

package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	m "github.com/mouse-blink/bundlepatch/internal/model"
)

func TestLocalArtifactWatcher_DebouncesMatchingWrites(t *testing.T) {
	dir := t.TempDir()
	watcher := NewLocalArtifactWatcher(50*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 10)
	done := make(chan error, 1)

	go func() {
		done <- watcher.Watch(ctx, m.Path(dir), regexp.MustCompile(DefaultPattern), func() error {
			changes <- struct{}{}
			return errors.New("failures are logged, not fatal")
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "vendor.js"), []byte("ignored"), 0o644))

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index-1.js"), []byte{byte('a' + i)}, 0o644))
	}

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a change notification")
	}

	select {
	case <-changes:
		t.Fatal("burst of writes must be reported once")
	case <-time.After(250 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestLocalArtifactWatcher_MissingDir(t *testing.T) {
	var calls atomic.Int32

	watcher := NewLocalArtifactWatcher(0, nil)
	err := watcher.Watch(context.Background(), m.Path(filepath.Join(t.TempDir(), "absent")), nil, func() error {
		calls.Add(1)
		return nil
	})

	require.Error(t, err)
	require.Zero(t, calls.Load())
}

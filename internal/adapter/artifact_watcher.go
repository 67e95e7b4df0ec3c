package adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	m "github.com/mouse-blink/bundlepatch/internal/model"
)

// DefaultDebounce is how long the watcher waits after the last matching
// event before reporting a change. Bundlers write the output in bursts.
const DefaultDebounce = 300 * time.Millisecond

// ArtifactWatcher reports changes to artifact files in a directory.
type ArtifactWatcher interface {
	// Watch blocks until ctx is done, calling onChange after each burst of
	// create/write events on files matching pattern. Errors returned by
	// onChange are logged and do not stop the watch.
	Watch(ctx context.Context, dir m.Path, pattern *regexp.Regexp, onChange func() error) error
}

// LocalArtifactWatcher is the fsnotify-backed ArtifactWatcher.
type LocalArtifactWatcher struct {
	debounce time.Duration
	logger   *zap.Logger
}

// NewLocalArtifactWatcher constructs a LocalArtifactWatcher. A non-positive
// debounce falls back to DefaultDebounce.
func NewLocalArtifactWatcher(debounce time.Duration, logger *zap.Logger) *LocalArtifactWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &LocalArtifactWatcher{debounce: debounce, logger: logger}
}

// Watch implements ArtifactWatcher.
func (w *LocalArtifactWatcher) Watch(ctx context.Context, dir m.Path, pattern *regexp.Regexp, onChange func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(string(dir)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !w.relevant(event, pattern) {
				continue
			}

			w.logger.Debug("artifact event", zap.String("path", event.Name), zap.String("op", event.Op.String()))

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Stop()
				timer.Reset(w.debounce)
			}

			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			return fmt.Errorf("watch %s: %w", dir, err)

		case <-fire:
			fire = nil

			if err := onChange(); err != nil {
				w.logger.Warn("patch pass failed", zap.Error(err))
			}
		}
	}
}

func (w *LocalArtifactWatcher) relevant(event fsnotify.Event, pattern *regexp.Regexp) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}

	return pattern == nil || pattern.MatchString(filepath.Base(event.Name))
}

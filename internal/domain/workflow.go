package domain

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/bundlepatch/internal/adapter"
	"github.com/mouse-blink/bundlepatch/internal/controller"
	m "github.com/mouse-blink/bundlepatch/internal/model"
)

// TargetArgs tells the workflow where to find the artifact.
type TargetArgs struct {
	Root    m.Path
	Assets  m.Path
	Pattern string
}

// ApplyArgs selects the patches to apply, in order.
type ApplyArgs struct {
	TargetArgs
	Patches []string
}

// CheckArgs selects the patches to verify, in order.
type CheckArgs struct {
	TargetArgs
	Patches []string
}

// StatusArgs lists every registered patch against the artifact.
type StatusArgs struct {
	TargetArgs
}

// WatchArgs re-applies patches whenever the artifact is rebuilt.
type WatchArgs struct {
	ApplyArgs
}

// Workflow runs patch operations against the located artifact.
type Workflow interface {
	Apply(args ApplyArgs) error
	Check(args CheckArgs) error
	Status(args StatusArgs) error
	Watch(ctx context.Context, args WatchArgs) error
}

type workflow struct {
	fsAdapter adapter.ArtifactFSAdapter
	watcher   adapter.ArtifactWatcher
	ui        controller.UI
	registry  *Registry
	logger    *zap.Logger
}

// NewWorkflow creates a Workflow backed by the given adapters.
func NewWorkflow(
	fsAdapter adapter.ArtifactFSAdapter,
	watcher adapter.ArtifactWatcher,
	ui controller.UI,
	registry *Registry,
	logger *zap.Logger,
) Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &workflow{
		fsAdapter: fsAdapter,
		watcher:   watcher,
		ui:        ui,
		registry:  registry,
		logger:    logger,
	}
}

// Apply runs every requested patch in sequence and stops at the first
// failure. Each patch reloads the artifact so it sees earlier writes.
func (w *workflow) Apply(args ApplyArgs) error {
	patches, err := w.resolve(args.Patches)
	if err != nil {
		return err
	}

	artifact, err := w.locate(args.TargetArgs)
	if err != nil {
		return err
	}

	store := w.fsAdapter.Open(artifact.Path)

	for _, patch := range patches {
		if err := w.applyPatch(patch, artifact, store); err != nil {
			return err
		}
	}

	return nil
}

// Check verifies every requested patch without writing and stops at the
// first patch that is not OK.
func (w *workflow) Check(args CheckArgs) error {
	patches, err := w.resolve(args.Patches)
	if err != nil {
		return err
	}

	artifact, err := w.locate(args.TargetArgs)
	if err != nil {
		return err
	}

	text, err := w.load(w.fsAdapter.Open(artifact.Path))
	if err != nil {
		return err
	}

	for _, patch := range patches {
		report := Verify(patch, text)
		w.logger.Debug("verified patch",
			zap.String("patch", patch.Name),
			zap.String("report", string(report)),
			zap.String("path", string(artifact.Path)))

		if report == m.ReportUnknown {
			w.logDiagnoses(patch, text)
		}

		w.ui.DisplayReport(patch, artifact, report)

		if err := reportError(patch, report); err != nil {
			return err
		}
	}

	return nil
}

// Status classifies every registered patch. The artifact text is read once
// and never written, so patches are classified concurrently.
func (w *workflow) Status(args StatusArgs) error {
	artifact, err := w.locate(args.TargetArgs)
	if err != nil {
		return err
	}

	text, err := w.load(w.fsAdapter.Open(artifact.Path))
	if err != nil {
		return err
	}

	patches := w.registry.Patches()
	statuses := make([]m.PatchStatus, len(patches))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, patch := range patches {
		i, patch := i, patch
		g.Go(func() error {
			c := Classify(patch, text)
			status := m.PatchStatus{Patch: patch, Classification: c, Report: ReportFor(c)}

			if c.State == m.StateUnknown {
				for _, diagnosis := range Diagnose(patch, text) {
					status.Details = append(status.Details, diagnosis.String())
				}
			}

			statuses[i] = status

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if err := w.ui.DisplayStatus(artifact, statuses); err != nil {
		w.ui.DisplayError(err)
		return err
	}

	return nil
}

// Watch applies the patches once and then again after every rebuild of the
// artifact until ctx is done. Failures of a single pass are reported and the
// watch continues; our own write triggers one extra pass that is a no-op.
func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	if _, err := w.resolve(args.Patches); err != nil {
		return err
	}

	pattern, err := w.compile(args.Pattern)
	if err != nil {
		return err
	}

	dir := w.assetsDir(args.TargetArgs)

	if err := w.Apply(args.ApplyArgs); err != nil {
		w.logger.Warn("initial patch pass failed", zap.Error(err))
	}

	w.logger.Info("watching for rebuilds", zap.String("dir", string(dir)))

	err = w.watcher.Watch(ctx, dir, pattern, func() error {
		return w.Apply(args.ApplyArgs)
	})
	if err != nil {
		w.ui.DisplayError(err)
		return err
	}

	return nil
}

func (w *workflow) applyPatch(patch m.Patch, artifact m.Artifact, store adapter.ArtifactStore) error {
	text, err := w.load(store)
	if err != nil {
		return err
	}

	c := Classify(patch, text)
	w.logClassification(patch, c, artifact)

	switch c.State {
	case m.StateApplied:
		w.ui.DisplayAlreadyApplied(patch, artifact)
		return nil
	case m.StateUnknown:
		w.logDiagnoses(patch, text)
		w.ui.DisplayTargetNotFound(patch, artifact)

		return &PatchError{Kind: ErrUnknownShape, Patch: patch.Name}
	}

	patched, err := Apply(patch, text, c)
	if err != nil {
		if errors.Is(err, ErrStaleApply) {
			w.ui.DisplayStale(patch, artifact)
		} else {
			w.ui.DisplayError(err)
		}

		return err
	}

	if err := store.Store(patched); err != nil {
		w.ui.DisplayError(err)
		return err
	}

	w.ui.DisplayPatched(patch, artifact)

	return nil
}

func (w *workflow) resolve(names []string) ([]m.Patch, error) {
	if len(names) == 0 {
		names = w.registry.Names()
	}

	patches, err := w.registry.Resolve(names)
	if err != nil {
		w.ui.DisplayError(err)
		return nil, err
	}

	return patches, nil
}

func (w *workflow) locate(args TargetArgs) (m.Artifact, error) {
	pattern, err := w.compile(args.Pattern)
	if err != nil {
		return m.Artifact{}, err
	}

	path, err := w.fsAdapter.Locate(w.assetsDir(args), pattern)
	if err != nil {
		w.ui.DisplayError(err)
		return m.Artifact{}, err
	}

	rel, err := w.fsAdapter.RelPath(args.Root, path)
	if err != nil {
		rel = path
	}

	w.logger.Debug("located artifact", zap.String("path", string(path)))

	return m.Artifact{Path: path, Rel: rel}, nil
}

func (w *workflow) compile(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		pattern = adapter.DefaultPattern
	}

	re, err := adapter.CompilePattern(pattern)
	if err != nil {
		w.ui.DisplayError(err)
		return nil, err
	}

	return re, nil
}

func (w *workflow) assetsDir(args TargetArgs) m.Path {
	assets := args.Assets
	if assets == "" {
		assets = adapter.DefaultAssetsDir
	}

	if filepath.IsAbs(string(assets)) {
		return assets
	}

	return w.fsAdapter.JoinPath(string(args.Root), string(assets))
}

func (w *workflow) load(store adapter.ArtifactStore) (string, error) {
	text, err := store.Load()
	if err != nil {
		err = fmt.Errorf("failed to load artifact: %w", err)
		w.ui.DisplayError(err)

		return "", err
	}

	return text, nil
}

func (w *workflow) logClassification(patch m.Patch, c m.Classification, artifact m.Artifact) {
	fields := []zap.Field{
		zap.String("patch", patch.Name),
		zap.String("state", string(c.State)),
		zap.String("path", string(artifact.Path)),
	}

	for i, sc := range c.Sites {
		if sc.State == m.StateApplicable {
			fields = append(fields, zap.String(sc.Site, patch.Sites[i].Variants[sc.Variant].Label))
		}
	}

	w.logger.Debug("classified patch", fields...)
}

func (w *workflow) logDiagnoses(patch m.Patch, text string) {
	for _, diagnosis := range Diagnose(patch, text) {
		w.logger.Debug("unrecognized site",
			zap.String("patch", patch.Name),
			zap.String("site", diagnosis.Site),
			zap.String("closest", diagnosis.Variant),
			zap.String("side", diagnosis.Side),
			zap.Int("matched", diagnosis.Matched),
			zap.Int("total", diagnosis.Total))
	}
}

// Package controller provides output adapters for patch results.
package controller

import (
	m "github.com/mouse-blink/bundlepatch/internal/model"
)

// UI defines how patch outcomes are reported. The status lines written by
// implementations are consumed by scripts and must keep their wording.
type UI interface {
	DisplayPatched(patch m.Patch, artifact m.Artifact)
	DisplayAlreadyApplied(patch m.Patch, artifact m.Artifact)
	DisplayTargetNotFound(patch m.Patch, artifact m.Artifact)
	DisplayStale(patch m.Patch, artifact m.Artifact)
	DisplayReport(patch m.Patch, artifact m.Artifact, report m.Report)
	DisplayStatus(artifact m.Artifact, statuses []m.PatchStatus) error
	DisplayError(err error)
}

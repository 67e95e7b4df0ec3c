package domain

import (
	m "github.com/mouse-blink/bundlepatch/internal/model"
)

// Verify classifies patch against text and maps the result to a check
// report. It never mutates anything.
func Verify(patch m.Patch, text string) m.Report {
	return ReportFor(Classify(patch, text))
}

// ReportFor maps a classification to its check report.
func ReportFor(c m.Classification) m.Report {
	switch c.State {
	case m.StateApplied:
		return m.ReportOK
	case m.StateApplicable:
		return m.ReportMissing
	default:
		return m.ReportUnknown
	}
}

// reportError returns the error a failing report stands for, nil for OK.
func reportError(patch m.Patch, report m.Report) error {
	switch report {
	case m.ReportOK:
		return nil
	case m.ReportMissing:
		return &PatchError{Kind: ErrMissingPatch, Patch: patch.Name}
	default:
		return &PatchError{Kind: ErrUnknownShape, Patch: patch.Name}
	}
}

package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownShape means the artifact matches neither a prior nor a next
	// state of the patch. The variant set is out of date.
	ErrUnknownShape = errors.New("unknown artifact shape")
	// ErrStaleApply means the chosen prior state vanished between
	// classification and application.
	ErrStaleApply = errors.New("artifact layout changed unexpectedly")
	// ErrMissingPatch is the check mode failure for an applicable patch.
	ErrMissingPatch = errors.New("patch not applied")
	// ErrNotApplicable is returned by Apply for a non-applicable classification.
	ErrNotApplicable = errors.New("patch is not applicable")
	// ErrUnknownPatch is returned for names missing from the registry.
	ErrUnknownPatch = errors.New("unknown patch")
)

// PatchError wraps a failure of a single patch invocation.
type PatchError struct {
	Kind  error
	Patch string
	Site  string
	Msg   string
}

func (e *PatchError) Error() string {
	if e == nil {
		return ""
	}

	subject := e.Patch
	if e.Site != "" {
		subject += "/" + e.Site
	}

	if e.Msg == "" {
		return fmt.Sprintf("%s: %s", subject, e.Kind.Error())
	}

	return fmt.Sprintf("%s: %s: %s", subject, e.Kind.Error(), e.Msg)
}

func (e *PatchError) Unwrap() error { return e.Kind }

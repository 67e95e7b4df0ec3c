package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/bundlepatch/internal/model"
)

// Apply performs the replacements selected by an applicable classification
// and returns the new text. Each applicable site replaces the first
// occurrence of its chosen prior state; applied sites are left alone.
//
// If a chosen prior state is no longer in text, Apply fails with
// ErrStaleApply and returns no text; the caller must not write anything.
func Apply(patch m.Patch, text string, c m.Classification) (string, error) {
	if c.Patch != patch.Name || len(c.Sites) != len(patch.Sites) {
		return "", fmt.Errorf("classification of %q does not belong to patch %q", c.Patch, patch.Name)
	}

	if c.State != m.StateApplicable {
		return "", &PatchError{Kind: ErrNotApplicable, Patch: patch.Name, Msg: string(c.State)}
	}

	for i, sc := range c.Sites {
		site := patch.Sites[i]

		switch sc.State {
		case m.StateApplied:
			continue
		case m.StateUnknown:
			return "", &PatchError{Kind: ErrUnknownShape, Patch: patch.Name, Site: site.Name}
		}

		if sc.Variant < 0 || sc.Variant >= len(site.Variants) {
			return "", fmt.Errorf("site %s of %s: variant %d out of range", site.Name, patch.Name, sc.Variant)
		}

		variant := site.Variants[sc.Variant]
		if !strings.Contains(text, variant.Prior) {
			return "", &PatchError{
				Kind:  ErrStaleApply,
				Patch: patch.Name,
				Site:  site.Name,
				Msg:   fmt.Sprintf("%s variant no longer present", variant.Label),
			}
		}

		text = strings.Replace(text, variant.Prior, variant.Next, 1)
	}

	return text, nil
}

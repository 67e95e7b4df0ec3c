package domain

import (
	"strings"

	m "github.com/mouse-blink/bundlepatch/internal/model"
)

// Classify determines the state of patch against text.
//
// A site is applied when any variant's next state is present, applicable
// when the first (in declared order) prior state is present, and unknown
// otherwise. The patch is applied when every site is, unknown when any site
// is, and applicable in every other case, including partial application.
func Classify(patch m.Patch, text string) m.Classification {
	result := m.Classification{
		Patch: patch.Name,
		Sites: make([]m.SiteClassification, 0, len(patch.Sites)),
	}

	if len(patch.Sites) == 0 {
		result.State = m.StateUnknown
		return result
	}

	unknown, applicable := false, false

	for _, site := range patch.Sites {
		sc := classifySite(site, text)
		result.Sites = append(result.Sites, sc)

		switch sc.State {
		case m.StateUnknown:
			unknown = true
		case m.StateApplicable:
			applicable = true
		}
	}

	switch {
	case unknown:
		result.State = m.StateUnknown
	case applicable:
		result.State = m.StateApplicable
	default:
		result.State = m.StateApplied
	}

	return result
}

func classifySite(site m.Site, text string) m.SiteClassification {
	for _, variant := range site.Variants {
		if strings.Contains(text, variant.Next) {
			return m.SiteClassification{Site: site.Name, State: m.StateApplied, Variant: m.NoVariant}
		}
	}

	for i, variant := range site.Variants {
		if strings.Contains(text, variant.Prior) {
			return m.SiteClassification{Site: site.Name, State: m.StateApplicable, Variant: i}
		}
	}

	return m.SiteClassification{Site: site.Name, State: m.StateUnknown, Variant: m.NoVariant}
}

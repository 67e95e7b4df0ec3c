package model

// State is the outcome of classifying a patch against the artifact text.
type State string

const (
	// StateApplied means some variant's Next text is present.
	StateApplied State = "applied"
	// StateApplicable means no Next text is present but some Prior text is.
	StateApplicable State = "applicable"
	// StateUnknown means neither Prior nor Next text is present.
	StateUnknown State = "unknown"
)

// NoVariant marks a site classification that carries no chosen variant.
const NoVariant = -1

// SiteClassification is the state of one site. Variant is the index of the
// variant to apply when State is StateApplicable, NoVariant otherwise.
type SiteClassification struct {
	Site    string
	State   State
	Variant int
}

// Classification is the derived, never persisted state of a patch.
type Classification struct {
	Patch string
	State State
	Sites []SiteClassification
}

// Report is the check mode verdict for a patch.
type Report string

const (
	// ReportOK means the patch is present.
	ReportOK Report = "OK"
	// ReportMissing means the patch can be applied but has not been.
	ReportMissing Report = "MISSING"
	// ReportUnknown means the artifact shape is not recognized.
	ReportUnknown Report = "UNKNOWN"
)

// PatchStatus is one row of the status listing.
type PatchStatus struct {
	Patch          Patch
	Classification Classification
	Report         Report
	// Details explains unknown sites, empty otherwise.
	Details []string
}

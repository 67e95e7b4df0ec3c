package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/bundlepatch/internal/model"
)

// SiteDiagnosis describes the closest known shape of an unrecognized site.
type SiteDiagnosis struct {
	Site    string
	Variant string
	Side    string // "prior" or "next"
	Matched int    // length of the longest prefix found in the text
	Total   int
}

func (d SiteDiagnosis) String() string {
	if d.Variant == "" {
		return fmt.Sprintf("%s: no variant matched", d.Site)
	}

	return fmt.Sprintf("%s: closest is %s %s state, %d/%d bytes matched", d.Site, d.Variant, d.Side, d.Matched, d.Total)
}

// Diagnose explains every unknown site of patch by finding the variant text
// whose longest prefix still occurs in text. The divergence point usually
// tells which composition case or upstream change is missing. It is purely
// informational.
func Diagnose(patch m.Patch, text string) []SiteDiagnosis {
	c := Classify(patch, text)

	var diagnoses []SiteDiagnosis

	for i, sc := range c.Sites {
		if sc.State != m.StateUnknown {
			continue
		}

		site := patch.Sites[i]
		best := SiteDiagnosis{Site: site.Name}

		for _, variant := range site.Variants {
			for _, candidate := range []struct {
				side string
				text string
			}{
				{side: "prior", text: variant.Prior},
				{side: "next", text: variant.Next},
			} {
				matched := longestPresentPrefix(text, candidate.text)
				if matched > best.Matched {
					best = SiteDiagnosis{
						Site:    site.Name,
						Variant: variant.Label,
						Side:    candidate.side,
						Matched: matched,
						Total:   len(candidate.text),
					}
				}
			}
		}

		diagnoses = append(diagnoses, best)
	}

	return diagnoses
}

// longestPresentPrefix returns the length of the longest prefix of needle
// contained in text. Containment is monotonic in prefix length, so a binary
// search is enough.
func longestPresentPrefix(text, needle string) int {
	lo, hi := 0, len(needle)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if strings.Contains(text, needle[:mid]) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return lo
}

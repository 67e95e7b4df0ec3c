// Package model defines the data structures for bundle patching.
package model

// Variant is one recognized before/after text pair. Prior is the exact
// substring expected before the patch runs in one historical shape of the
// artifact, Next is the exact substring the patch leaves behind.
type Variant struct {
	Label string
	Prior string
	Next  string
}

// Site is a single replacement location inside the artifact. Variants are
// ordered; the first variant whose Prior matches wins when applying.
type Site struct {
	Name     string
	Variants []Variant
}

// Patch is a named transformation of the artifact. It is defined statically
// and evaluated fresh against the artifact text on every run.
type Patch struct {
	// Name is the identifier used on the command line (e.g. approval-queue).
	Name string
	// Title is used in status lines: "OK: <Title> patch present in ...".
	Title string
	// Concern is used in the apply line: "Patched <Concern> in ...".
	Concern string
	Sites   []Site
}

// MultiSite reports whether the patch spans more than one replacement site.
func (p Patch) MultiSite() bool {
	return len(p.Sites) > 1
}

// VariantCount returns the number of variants across all sites.
func (p Patch) VariantCount() int {
	count := 0
	for _, site := range p.Sites {
		count += len(site.Variants)
	}

	return count
}

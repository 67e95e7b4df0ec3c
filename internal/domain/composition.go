package domain

import (
	"fmt"
	"slices"
	"strings"

	m "github.com/mouse-blink/bundlepatch/internal/model"
)

// BaselineLabel names the variant that expects no other member applied.
const BaselineLabel = "baseline"

// AppliedSet is the set of composition members already applied.
type AppliedSet map[string]bool

// Has reports whether name is in the set.
func (s AppliedSet) Has(name string) bool {
	return s[name]
}

// Composition describes a text region edited by several patches. Render
// must return the exact region text for any subset of applied members.
//
// Instead of hand-listing every historical shape, a member's variants are
// generated from Render: one variant per subset of the other members.
type Composition struct {
	Name    string
	Members []string
	Render  func(applied AppliedSet) string
}

// Variants returns the variants of member patch. Subsets of the other
// members are visited by size and then in declared member order, so the
// baseline variant is always first. An N-member region yields 2^(N-1)
// variants.
func (c Composition) Variants(patch string) ([]m.Variant, error) {
	if c.Render == nil {
		return nil, fmt.Errorf("composition %s has no renderer", c.Name)
	}

	if !slices.Contains(c.Members, patch) {
		return nil, fmt.Errorf("%s is not a member of composition %s", patch, c.Name)
	}

	others := make([]string, 0, len(c.Members)-1)
	for _, member := range c.Members {
		if member != patch {
			others = append(others, member)
		}
	}

	subsets := orderedSubsets(others)
	variants := make([]m.Variant, 0, len(subsets))

	for _, subset := range subsets {
		applied := make(AppliedSet, len(subset)+1)
		for _, member := range subset {
			applied[member] = true
		}

		prior := c.Render(applied)
		applied[patch] = true
		next := c.Render(applied)

		label := BaselineLabel
		if len(subset) > 0 {
			label = "after " + strings.Join(subset, "+")
		}

		if prior == next {
			return nil, fmt.Errorf("composition %s: %s does not change the %s shape", c.Name, patch, label)
		}

		variants = append(variants, m.Variant{Label: label, Prior: prior, Next: next})
	}

	return variants, nil
}

// Site returns the site of member patch in this region.
func (c Composition) Site(patch string) (m.Site, error) {
	variants, err := c.Variants(patch)
	if err != nil {
		return m.Site{}, err
	}

	return m.Site{Name: c.Name, Variants: variants}, nil
}

// MustSite is like Site but panics on error. It is meant for static patch
// definitions.
func (c Composition) MustSite(patch string) m.Site {
	site, err := c.Site(patch)
	if err != nil {
		panic(err)
	}

	return site
}

// Validate renders every subset of members and rejects regions where two
// shapes are equal or one shape contains another, either of which would make
// classification ambiguous.
func (c Composition) Validate() error {
	if c.Render == nil {
		return fmt.Errorf("composition %s has no renderer", c.Name)
	}

	seen := make(map[string]bool, len(c.Members))
	for _, member := range c.Members {
		if member == "" {
			return fmt.Errorf("composition %s has an empty member name", c.Name)
		}

		if seen[member] {
			return fmt.Errorf("composition %s lists %s twice", c.Name, member)
		}

		seen[member] = true
	}

	subsets := orderedSubsets(c.Members)
	shapes := make([]string, len(subsets))

	for i, subset := range subsets {
		applied := make(AppliedSet, len(subset))
		for _, member := range subset {
			applied[member] = true
		}

		shapes[i] = c.Render(applied)
	}

	for i := range shapes {
		for j := range shapes {
			if i == j {
				continue
			}

			if strings.Contains(shapes[j], shapes[i]) {
				return fmt.Errorf("composition %s: shape %s is contained in shape %s",
					c.Name, describeSubset(subsets[i]), describeSubset(subsets[j]))
			}
		}
	}

	return nil
}

func describeSubset(subset []string) string {
	if len(subset) == 0 {
		return BaselineLabel
	}

	return "{" + strings.Join(subset, ",") + "}"
}

// orderedSubsets returns every subset of items, smallest first, each size in
// lexicographic order of item positions.
func orderedSubsets(items []string) [][]string {
	subsets := make([][]string, 0, 1<<len(items))

	for size := 0; size <= len(items); size++ {
		subsets = appendCombinations(subsets, items, size, 0, nil)
	}

	return subsets
}

func appendCombinations(out [][]string, items []string, size, start int, prefix []string) [][]string {
	if len(prefix) == size {
		return append(out, slices.Clone(prefix))
	}

	for i := start; i <= len(items)-(size-len(prefix)); i++ {
		out = appendCombinations(out, items, size, i+1, append(prefix, items[i]))
	}

	return out
}

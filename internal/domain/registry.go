package domain

import (
	"fmt"

	m "github.com/mouse-blink/bundlepatch/internal/model"
)

// Registry is the ordered, validated set of known patches.
type Registry struct {
	patches []m.Patch
	index   map[string]int
}

// NewRegistry validates patches and keeps them in the given order.
func NewRegistry(patches ...m.Patch) (*Registry, error) {
	r := &Registry{index: make(map[string]int, len(patches))}

	for _, patch := range patches {
		if err := validatePatch(patch); err != nil {
			return nil, err
		}

		if _, exists := r.index[patch.Name]; exists {
			return nil, fmt.Errorf("duplicate patch %s", patch.Name)
		}

		r.index[patch.Name] = len(r.patches)
		r.patches = append(r.patches, patch)
	}

	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
func MustNewRegistry(patches ...m.Patch) *Registry {
	r, err := NewRegistry(patches...)
	if err != nil {
		panic(err)
	}

	return r
}

// Lookup returns the patch registered under name.
func (r *Registry) Lookup(name string) (m.Patch, error) {
	i, ok := r.index[name]
	if !ok {
		return m.Patch{}, fmt.Errorf("%w: %s", ErrUnknownPatch, name)
	}

	return r.patches[i], nil
}

// Resolve looks up every name, failing on the first unknown one.
func (r *Registry) Resolve(names []string) ([]m.Patch, error) {
	patches := make([]m.Patch, 0, len(names))

	for _, name := range names {
		patch, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}

		patches = append(patches, patch)
	}

	return patches, nil
}

// Patches returns the registered patches in order.
func (r *Registry) Patches() []m.Patch {
	return append([]m.Patch(nil), r.patches...)
}

// Names returns the registered patch names in order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.patches))
	for _, patch := range r.patches {
		names = append(names, patch.Name)
	}

	return names
}

func validatePatch(patch m.Patch) error {
	if patch.Name == "" {
		return fmt.Errorf("patch without a name")
	}

	if len(patch.Sites) == 0 {
		return fmt.Errorf("patch %s has no sites", patch.Name)
	}

	for _, site := range patch.Sites {
		if len(site.Variants) == 0 {
			return fmt.Errorf("patch %s: site %s has no variants", patch.Name, site.Name)
		}

		for _, variant := range site.Variants {
			if variant.Prior == "" || variant.Next == "" {
				return fmt.Errorf("patch %s: site %s: %s variant has an empty state", patch.Name, site.Name, variant.Label)
			}

			if variant.Prior == variant.Next {
				return fmt.Errorf("patch %s: site %s: %s variant does not change anything", patch.Name, site.Name, variant.Label)
			}
		}
	}

	return nil
}

package prefabs

import (
	"fmt"

	"github.com/milk9111/knight/animation"
)

// Catalog builds the animation catalog described by the spec. Invalid
// definitions fail the whole build.
func (s AnimationSpec) Catalog() (*animation.Catalog, error) {
	if len(s.Defs) == 0 {
		return nil, fmt.Errorf("prefabs: animation has no defs: %w", animation.ErrInvalidDefinition)
	}
	entries := make([]animation.Entry, 0, len(s.Defs))
	for _, d := range s.Defs {
		entries = append(entries, animation.Entry{
			Name: d.Name,
			Def: animation.Def{
				FrameDuration: d.FrameDuration,
				Start:         d.Start,
				End:           d.End,
				Looping:       d.Loop,
			},
		})
	}
	catalog, err := animation.NewCatalog(entries...)
	if err != nil {
		return nil, fmt.Errorf("prefabs: build catalog: %w", err)
	}
	return catalog, nil
}

// LoadCatalog reads a prefab and returns only its animation catalog.
func LoadCatalog(name string) (*animation.Catalog, error) {
	spec, err := LoadPlayerSpec(name)
	if err != nil {
		return nil, err
	}
	catalog, err := spec.Animation.Catalog()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return catalog, nil
}

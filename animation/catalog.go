package animation

import (
	"fmt"
	"sort"
)

// Entry pairs a state name with its definition.
type Entry struct {
	Name string
	Def  Def
}

// Catalog maps state names to definitions. It cannot be modified once built,
// so one catalog may be shared by any number of animators and read from
// several goroutines.
type Catalog struct {
	defs map[string]Def
}

// NewCatalog validates every entry and builds a catalog. When a name appears
// more than once the last entry wins.
func NewCatalog(entries ...Entry) (*Catalog, error) {
	defs := make(map[string]Def, len(entries))
	for i, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidDefinition, i)
		}
		if err := entry.Def.Validate(); err != nil {
			return nil, fmt.Errorf("state %q: %w", entry.Name, err)
		}
		defs[entry.Name] = entry.Def
	}
	return &Catalog{defs: defs}, nil
}

// Get returns the definition for name.
func (c *Catalog) Get(name string) (Def, bool) {
	if c == nil {
		return Def{}, false
	}
	def, ok := c.defs[name]
	return def, ok
}

// Has reports whether name is defined.
func (c *Catalog) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Len returns the number of states.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.defs)
}

// Names returns the state names in sorted order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.defs))
	for name := range c.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package inventory

import (
	"fmt"
	"sort"
)

// KindProvider resolves a KindID to its static metadata.
type KindProvider interface {
	Kind(id KindID) (*KindDef, bool)
}

// Catalog holds all registered item kinds indexed by ID.
type Catalog struct {
	kinds map[KindID]*KindDef
}

// NewCatalog returns an empty Catalog.
//
// Postcondition: the internal map is initialised.
func NewCatalog() *Catalog {
	return &Catalog{kinds: make(map[KindID]*KindDef)}
}

// LoadCatalog builds a Catalog from every kind file in dir.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns a Catalog holding every kind in dir, or an error if
// any file is invalid or two files declare the same ID.
func LoadCatalog(dir string) (*Catalog, error) {
	defs, err := LoadKinds(dir)
	if err != nil {
		return nil, err
	}
	c := NewCatalog()
	for _, d := range defs {
		if err := c.Register(d); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Register adds d to the catalog.
//
// Precondition:  d must not be nil.
// Postcondition: Kind(d.ID) returns (d, true); returns error if d.ID already registered.
func (c *Catalog) Register(d *KindDef) error {
	if _, exists := c.kinds[d.ID]; exists {
		return fmt.Errorf("inventory: Catalog.Register: kind ID %q already registered", d.ID)
	}
	c.kinds[d.ID] = d
	return nil
}

// Kind returns the KindDef for the given id and whether it was found.
//
// Postcondition: ok is true iff the id is registered.
func (c *Catalog) Kind(id KindID) (*KindDef, bool) {
	d, ok := c.kinds[id]
	return d, ok
}

// All returns every registered KindDef ordered by ID.
func (c *Catalog) All() []*KindDef {
	out := make([]*KindDef, 0, len(c.kinds))
	for _, d := range c.kinds {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered kinds.
func (c *Catalog) Len() int {
	return len(c.kinds)
}

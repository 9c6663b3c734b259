// Package operation holds the catalog of named text operations: an immutable,
// ordered table of descriptors that the panel renders and the transform
// dispatcher executes.
package operation

import (
	"fmt"
	"strings"
)

// Descriptor identifies one operation. ID is the lookup key shown to users.
type Descriptor struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
}

// Catalog is an ordered, read-only set of descriptors.
// The zero value is an empty catalog.
type Catalog struct {
	descs []Descriptor
	index map[string]int
}

// New builds a catalog preserving the given order.
// IDs must be non-empty and unique; categories must be concrete.
func New(descs ...Descriptor) (*Catalog, error) {
	c := &Catalog{
		descs: make([]Descriptor, 0, len(descs)),
		index: make(map[string]int, len(descs)),
	}
	for i, d := range descs {
		if strings.TrimSpace(d.ID) == "" {
			return nil, fmt.Errorf("operation %d: id is required", i)
		}
		if !d.Category.Valid() {
			return nil, fmt.Errorf("operation %q: unknown category %q", d.ID, d.Category)
		}
		if _, dup := c.index[d.ID]; dup {
			return nil, fmt.Errorf("operation %q: duplicate id", d.ID)
		}
		c.index[d.ID] = len(c.descs)
		c.descs = append(c.descs, d)
	}
	return c, nil
}

// MustNew is New for static tables; it panics on an invalid table.
func MustNew(descs ...Descriptor) *Catalog {
	c, err := New(descs...)
	if err != nil {
		panic(err)
	}
	return c
}

// List returns every descriptor in declared order.
func (c *Catalog) List() []Descriptor {
	if c == nil {
		return nil
	}
	out := make([]Descriptor, len(c.descs))
	copy(out, c.descs)
	return out
}

// Len returns the number of operations.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.descs)
}

// Lookup finds a descriptor by exact ID.
func (c *Catalog) Lookup(id string) (Descriptor, bool) {
	if c == nil {
		return Descriptor{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Descriptor{}, false
	}
	return c.descs[i], true
}

// FilterByCategory returns the descriptors in cat, keeping catalog order.
// CategoryAll returns the full list.
func (c *Catalog) FilterByCategory(cat Category) []Descriptor {
	if cat == CategoryAll {
		return c.List()
	}
	var out []Descriptor
	for _, d := range c.descriptors() {
		if d.Category == cat {
			out = append(out, d)
		}
	}
	return out
}

// Count returns how many operations belong to cat.
func (c *Catalog) Count(cat Category) int {
	if cat == CategoryAll {
		return c.Len()
	}
	n := 0
	for _, d := range c.descriptors() {
		if d.Category == cat {
			n++
		}
	}
	return n
}

// Search matches query case-insensitively as a substring of the ID or the
// description. An empty query matches everything.
func (c *Catalog) Search(query string) []Descriptor {
	q := strings.ToLower(query)
	if q == "" {
		return c.List()
	}
	var out []Descriptor
	for _, d := range c.descriptors() {
		if d.Matches(q) {
			out = append(out, d)
		}
	}
	return out
}

// Matches reports whether the lower-cased query occurs in the ID or
// description.
func (d Descriptor) Matches(lowerQuery string) bool {
	return strings.Contains(strings.ToLower(d.ID), lowerQuery) ||
		strings.Contains(strings.ToLower(d.Description), lowerQuery)
}

func (c *Catalog) descriptors() []Descriptor {
	if c == nil {
		return nil
	}
	return c.descs
}

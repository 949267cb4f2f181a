package catalog

import (
	"fmt"
	"sort"
)

// Metadata is the optional top-level block some catalog files carry alongside
// the object entries.
type Metadata struct {
	Version     string
	Description string
	Source      string
}

// Catalog is an immutable snapshot of the object table. It is safe to share
// between goroutines after construction; nothing mutates it.
type Catalog struct {
	entries map[string]*Entry
	keys    []string
	meta    Metadata
}

// New builds a catalog from normalized entries. Keys are sorted
// lexicographically so every full-table scan is deterministic regardless of
// source file ordering.
func New(entries map[string]*Entry, meta Metadata) *Catalog {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return &Catalog{
		entries: entries,
		keys:    keys,
		meta:    meta,
	}
}

// Get returns the entry for a key, or ErrNotFound.
func (c *Catalog) Get(key string) (*Entry, error) {
	e, ok := c.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return e, nil
}

// Keys returns all object keys in lexicographic order. Callers must not
// modify the returned slice.
func (c *Catalog) Keys() []string {
	return c.keys
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Metadata returns the catalog's metadata block (zero value if absent).
func (c *Catalog) Metadata() Metadata {
	return c.meta
}

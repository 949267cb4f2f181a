// Package scale implements the catalog query engine: diameter resolution,
// search, range queries, pairwise comparison and proportional scale analogies.
package scale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mkarlsen/magnitude/internal/catalog"
	"github.com/mkarlsen/magnitude/internal/units"
)

// Sentinel errors for ratio computations with zero denominators.
var (
	// ErrZeroDiameter indicates an analogy base object with a zero diameter,
	// which would make the scale ratio undefined.
	ErrZeroDiameter = errors.New("zero diameter")

	// ErrZeroExpected indicates an analogy whose expected size is exactly
	// zero; the relative-difference ranking is undefined there.
	ErrZeroExpected = errors.New("expected size is zero")
)

// Engine answers queries over an immutable catalog. It keeps no per-request
// state, so a single engine can serve concurrent readers.
type Engine struct {
	catalog *catalog.Catalog
}

// New creates an engine over the given catalog.
func New(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Catalog returns the underlying catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Diameter returns the representative diameter of an object in its stored
// unit, applying the range-averaging rule for range-valued entries.
func (e *Engine) Diameter(key string) (float64, error) {
	entry, err := e.catalog.Get(key)
	if err != nil {
		return 0, err
	}
	return entry.Size(), nil
}

// DiameterIn returns the diameter in meters, interpreting the stored value as
// being in assumedUnit. Catalogs store meters, so callers normally pass "m";
// the parameter exists for source variants that store raw magnitudes in other
// units.
func (e *Engine) DiameterIn(key, assumedUnit string) (float64, error) {
	d, err := e.Diameter(key)
	if err != nil {
		return 0, err
	}
	return units.ToMeters(d, assumedUnit)
}

// Range returns the raw diameter bounds of an object. Entries without an
// explicit range report the diameter as both bounds.
func (e *Engine) Range(key string) (min, max float64, err error) {
	entry, err := e.catalog.Get(key)
	if err != nil {
		return 0, 0, err
	}
	min, max = entry.Bounds()
	return min, max, nil
}

// FormatSize renders an object's size with the given significant figures,
// optionally in an explicit unit.
func (e *Engine) FormatSize(key string, precision int, unit string) (string, error) {
	meters, err := e.DiameterIn(key, "m")
	if err != nil {
		return "", err
	}
	return units.Format(meters, precision, unit)
}

// Search returns keys whose name or description contains the query,
// case-insensitively. Keys come back in lexicographic order.
func (e *Engine) Search(query string) []string {
	query = strings.ToLower(query)
	var matches []string
	for _, key := range e.catalog.Keys() {
		entry, _ := e.catalog.Get(key)
		if strings.Contains(strings.ToLower(entry.Name), query) ||
			strings.Contains(strings.ToLower(entry.Description), query) {
			matches = append(matches, key)
		}
	}
	return matches
}

// FilterByTags returns keys whose tag set intersects the given tags. An empty
// tag list matches every key; that is deliberate, filtering by nothing is no
// filter at all.
func (e *Engine) FilterByTags(tags []string) []string {
	keys := e.catalog.Keys()
	if len(tags) == 0 {
		all := make([]string, len(keys))
		copy(all, keys)
		return all
	}

	var matches []string
	for _, key := range keys {
		entry, _ := e.catalog.Get(key)
		if entry.HasTag(tags) {
			matches = append(matches, key)
		}
	}
	return matches
}

// FindInRange returns keys whose diameter lies in the closed interval
// [min, max], with the bounds given in the specified unit.
func (e *Engine) FindInRange(min, max float64, unit string) ([]string, error) {
	minMeters, err := units.ToMeters(min, unit)
	if err != nil {
		return nil, err
	}
	maxMeters, err := units.ToMeters(max, unit)
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, key := range e.catalog.Keys() {
		meters, err := e.DiameterIn(key, "m")
		if err != nil {
			return nil, err
		}
		if meters >= minMeters && meters <= maxMeters {
			matches = append(matches, key)
		}
	}
	return matches, nil
}

// Summary is the listing view of one object.
type Summary struct {
	Key         string
	Name        string
	Meters      float64
	Formatted   string
	Description string
	Tags        []string
}

// List returns a summary of every object in key order.
func (e *Engine) List() []Summary {
	summaries := make([]Summary, 0, e.catalog.Len())
	for _, key := range e.catalog.Keys() {
		entry, _ := e.catalog.Get(key)
		meters := entry.Size()
		formatted, _ := units.Format(meters, 3, "")
		summaries = append(summaries, Summary{
			Key:         key,
			Name:        entry.Name,
			Meters:      meters,
			Formatted:   formatted,
			Description: entry.Description,
			Tags:        entry.Tags,
		})
	}
	return summaries
}

// Extremes returns the smallest and largest objects in the catalog.
func (e *Engine) Extremes() (smallest, largest Summary, err error) {
	summaries := e.List()
	if len(summaries) == 0 {
		return Summary{}, Summary{}, fmt.Errorf("empty catalog")
	}
	smallest, largest = summaries[0], summaries[0]
	for _, s := range summaries[1:] {
		if s.Meters < smallest.Meters {
			smallest = s
		}
		if s.Meters > largest.Meters {
			largest = s
		}
	}
	return smallest, largest, nil
}

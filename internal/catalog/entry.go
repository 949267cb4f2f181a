package catalog

// Entry is one physical object, normalized from whichever source field-naming
// variant it was loaded with. Diameters are stored as-is; unit interpretation
// happens at query time.
type Entry struct {
	// Key is the stable identifier used to look the object up.
	Key string

	// Name is the display name.
	Name string

	// Description is optional free text.
	Description string

	// Diameter is the characteristic diameter. Ignored when Range is set.
	Diameter float64

	// Range holds an optional [min, max] diameter range. When present, the
	// representative diameter is always the mean of min and max.
	Range *[2]float64

	// Multiplier scales the diameter (legacy full-name format; defaults to 1).
	Multiplier float64

	// Tags are free-form labels; order is irrelevant.
	Tags []string
}

// Size returns the representative diameter: the mean of the range bounds if a
// range is present, otherwise the stored diameter, scaled by the multiplier.
func (e *Entry) Size() float64 {
	d := e.Diameter
	if e.Range != nil {
		d = (e.Range[0] + e.Range[1]) / 2
	}
	return d * e.Multiplier
}

// Bounds returns the raw diameter range. Entries without an explicit range
// report the diameter as both bounds.
func (e *Entry) Bounds() (min, max float64) {
	if e.Range != nil {
		return e.Range[0], e.Range[1]
	}
	return e.Diameter, e.Diameter
}

// HasTag reports whether the entry carries any of the given tags.
func (e *Entry) HasTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range e.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

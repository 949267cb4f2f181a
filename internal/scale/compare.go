package scale

import (
	"fmt"
	"math"

	"github.com/mkarlsen/magnitude/internal/units"
)

// Side describes one object's part in a comparison or analogy.
type Side struct {
	Key       string
	Name      string
	Meters    float64
	Formatted string
}

// Comparison is the result of comparing two objects by diameter.
type Comparison struct {
	A, B Side

	// Ratio is A divided by B. It is +Inf when B has a zero diameter;
	// callers asked for that ratio and get the mathematically honest answer.
	Ratio float64

	// Larger and Smaller hold the keys of the respective objects. Both are
	// empty when the diameters are exactly equal.
	Larger  string
	Smaller string

	// SizeRatio is the larger diameter over the smaller one, 1.0 for equal
	// sizes.
	SizeRatio float64

	// Text is the generated natural-language comparison sentence.
	Text string
}

// Compare computes the size relationship between two objects.
func (e *Engine) Compare(keyA, keyB string) (*Comparison, error) {
	a, err := e.side(keyA)
	if err != nil {
		return nil, err
	}
	b, err := e.side(keyB)
	if err != nil {
		return nil, err
	}

	ratio := math.Inf(1)
	if b.Meters != 0 {
		ratio = a.Meters / b.Meters
	}

	c := &Comparison{
		A:         a,
		B:         b,
		Ratio:     ratio,
		SizeRatio: 1.0,
	}
	switch {
	case a.Meters > b.Meters:
		c.Larger, c.Smaller = keyA, keyB
		c.SizeRatio = ratio
	case b.Meters > a.Meters:
		c.Larger, c.Smaller = keyB, keyA
		c.SizeRatio = 1 / ratio
	}
	c.Text = comparisonText(a.Name, b.Name, ratio)

	return c, nil
}

func (e *Engine) side(key string) (Side, error) {
	entry, err := e.catalog.Get(key)
	if err != nil {
		return Side{}, err
	}
	meters := entry.Size()
	return Side{
		Key:       key,
		Name:      entry.Name,
		Meters:    meters,
		Formatted: units.FormatAuto(meters, ""),
	}, nil
}

// comparisonText renders the ratio with band-dependent precision: two
// decimals below 2x, one decimal below 1000x, scientific above. The band is
// chosen on whichever of ratio and inverse ratio exceeds 1.
func comparisonText(nameA, nameB string, ratio float64) string {
	switch {
	case ratio > 1:
		return fmt.Sprintf("%s is %s times larger than %s", nameA, formatRatio(ratio), nameB)
	case ratio < 1:
		return fmt.Sprintf("%s is %s times larger than %s", nameB, formatRatio(1/ratio), nameA)
	default:
		return fmt.Sprintf("%s and %s are the same size", nameA, nameB)
	}
}

func formatRatio(ratio float64) string {
	switch {
	case ratio < 2:
		return fmt.Sprintf("%.2f", ratio)
	case ratio < 1000:
		return fmt.Sprintf("%.1f", ratio)
	default:
		return fmt.Sprintf("%.2e", ratio)
	}
}

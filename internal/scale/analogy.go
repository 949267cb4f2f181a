package scale

import (
	"fmt"
	"math"
)

// Analogy is the result of "A is to B as C is to X": the nearest catalog
// object to C scaled by the A→B ratio.
type Analogy struct {
	A, B, C Side

	// Ratio is diameter(B) / diameter(A).
	Ratio float64

	// Expected is diameter(C) * Ratio, the size X should have.
	Expected float64

	// Match is the catalog object whose diameter has the smallest relative
	// difference to Expected. C itself is never matched.
	Match Side

	// Accuracy is 1 minus the relative difference of the match. It is
	// reported raw: a match more than 100% off yields a negative value.
	Accuracy float64
}

// Analogy builds the scale analogy for three objects. The whole catalog except
// C is scanned in lexicographic key order, so ties go to the first key in that
// order. Fails when A has a zero diameter (undefined ratio) or the expected
// size is exactly zero (undefined relative difference).
func (e *Engine) Analogy(keyA, keyB, keyC string) (*Analogy, error) {
	a, err := e.side(keyA)
	if err != nil {
		return nil, err
	}
	b, err := e.side(keyB)
	if err != nil {
		return nil, err
	}
	c, err := e.side(keyC)
	if err != nil {
		return nil, err
	}

	if a.Meters == 0 {
		return nil, fmt.Errorf("%w: %q", ErrZeroDiameter, keyA)
	}
	ratio := b.Meters / a.Meters
	expected := c.Meters * ratio
	if expected == 0 {
		return nil, fmt.Errorf("%w: %q scaled by %g", ErrZeroExpected, keyC, ratio)
	}

	var match Side
	minDiff := math.Inf(1)
	for _, key := range e.catalog.Keys() {
		if key == keyC {
			continue
		}
		candidate, _ := e.side(key)
		diff := math.Abs(candidate.Meters-expected) / expected
		if diff < minDiff {
			minDiff = diff
			match = candidate
		}
	}

	return &Analogy{
		A:        a,
		B:        b,
		C:        c,
		Ratio:    ratio,
		Expected: expected,
		Match:    match,
		Accuracy: 1 - minDiff,
	}, nil
}

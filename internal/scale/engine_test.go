package scale

import (
	"errors"
	"math"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/mkarlsen/magnitude/internal/catalog"
)

func entry(key, name, desc string, meters float64, tags ...string) *catalog.Entry {
	return &catalog.Entry{
		Key:         key,
		Name:        name,
		Description: desc,
		Diameter:    meters,
		Multiplier:  1.0,
		Tags:        tags,
	}
}

func newTestEngine() *Engine {
	entries := map[string]*catalog.Entry{
		"golf_ball":   entry("golf_ball", "Golf Ball", "Standard golf ball", 0.04267, "sports", "everyday"),
		"tennis_ball": entry("tennis_ball", "Tennis Ball", "Standard tennis ball", 0.067, "sports", "everyday"),
		"earth":       entry("earth", "Earth", "Third planet from the Sun", 1.2742e7, "planet", "astronomy"),
		"moon":        entry("moon", "Moon", "Earth's natural satellite", 3.4748e6, "moon", "astronomy"),
		"sun":         entry("sun", "Sun", "Star at the center of the solar system", 1.3914e9, "star", "astronomy"),
		"virus":       entry("virus", "Virus", "Typical virus particle", 1e-7, "biology"),
	}
	return New(catalog.New(entries, catalog.Metadata{}))
}

func TestDiameterRangeAveraging(t *testing.T) {
	entries := map[string]*catalog.Entry{
		"boulder": {
			Key:        "boulder",
			Name:       "Boulder",
			Range:      &[2]float64{10, 20},
			Multiplier: 1.0,
		},
	}
	e := New(catalog.New(entries, catalog.Metadata{}))

	d, err := e.Diameter("boulder")
	if err != nil {
		t.Fatalf("Diameter: %v", err)
	}
	if d != 15 {
		t.Errorf("range-valued diameter = %g, want mean 15", d)
	}

	min, max, err := e.Range("boulder")
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	if min != 10 || max != 20 {
		t.Errorf("Range = (%g, %g), want (10, 20)", min, max)
	}
}

func TestDiameterNotFound(t *testing.T) {
	e := newTestEngine()
	_, err := e.Diameter("atlantis")
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDiameterIn(t *testing.T) {
	entries := map[string]*catalog.Entry{
		"ridge": entry("ridge", "Ridge", "", 1.5),
	}
	e := New(catalog.New(entries, catalog.Metadata{}))

	// Stored value interpreted as kilometers.
	meters, err := e.DiameterIn("ridge", "km")
	if err != nil {
		t.Fatalf("DiameterIn: %v", err)
	}
	if meters != 1500 {
		t.Errorf("DiameterIn(km) = %g, want 1500", meters)
	}

	_, err = e.DiameterIn("ridge", "furlong")
	if err == nil {
		t.Fatal("expected error for unknown unit")
	}
}

func TestSearch(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		query string
		want  []string
	}{
		{"ball", []string{"golf_ball", "tennis_ball"}},
		{"BALL", []string{"golf_ball", "tennis_ball"}},       // case-insensitive
		{"satellite", []string{"moon"}},                      // description match
		{"star", []string{"sun"}},                            // name and description, once
		{"planet", []string{"earth"}},
		{"nonexistent", nil},
	}

	for _, tt := range tests {
		got := e.Search(tt.query)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestFilterByTags(t *testing.T) {
	e := newTestEngine()

	// Empty tag list returns every key, not none.
	all := e.FilterByTags(nil)
	if len(all) != e.Catalog().Len() {
		t.Errorf("FilterByTags(nil) returned %d of %d keys", len(all), e.Catalog().Len())
	}
	if !sort.StringsAreSorted(all) {
		t.Error("keys not sorted")
	}

	sports := e.FilterByTags([]string{"sports"})
	if !reflect.DeepEqual(sports, []string{"golf_ball", "tennis_ball"}) {
		t.Errorf("FilterByTags(sports) = %v", sports)
	}

	// Intersection semantics: any shared tag qualifies.
	mixed := e.FilterByTags([]string{"star", "moon"})
	if !reflect.DeepEqual(mixed, []string{"moon", "sun"}) {
		t.Errorf("FilterByTags(star, moon) = %v", mixed)
	}

	if got := e.FilterByTags([]string{"nonexistent_tag"}); got != nil {
		t.Errorf("FilterByTags(nonexistent) = %v, want empty", got)
	}
}

func TestFindInRange(t *testing.T) {
	e := newTestEngine()

	// Everything from 1 cm to 10 cm.
	got, err := e.FindInRange(1, 10, "cm")
	if err != nil {
		t.Fatalf("FindInRange: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"golf_ball", "tennis_ball"}) {
		t.Errorf("FindInRange = %v", got)
	}

	// Closed interval: exact bounds included.
	got, err = e.FindInRange(0.04267, 0.067, "m")
	if err != nil {
		t.Fatalf("FindInRange: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"golf_ball", "tennis_ball"}) {
		t.Errorf("closed-interval FindInRange = %v", got)
	}

	_, err = e.FindInRange(1, 10, "cubit")
	if err == nil {
		t.Fatal("expected error for unknown unit")
	}
}

func TestCompare(t *testing.T) {
	e := newTestEngine()

	c, err := e.Compare("earth", "golf_ball")
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if c.Larger != "earth" || c.Smaller != "golf_ball" {
		t.Errorf("larger/smaller = %q/%q", c.Larger, c.Smaller)
	}
	wantRatio := 1.2742e7 / 0.04267
	if math.Abs(c.Ratio-wantRatio) > 1e-3 {
		t.Errorf("ratio = %g, want %g", c.Ratio, wantRatio)
	}
	if !strings.Contains(c.Text, "Earth is") || !strings.Contains(c.Text, "times larger than Golf Ball") {
		t.Errorf("unexpected comparison text: %q", c.Text)
	}
	// Ratio above 1000 renders in scientific notation.
	if !strings.Contains(c.Text, "e+08") {
		t.Errorf("expected scientific ratio in %q", c.Text)
	}
}

func TestCompareInverse(t *testing.T) {
	e := newTestEngine()

	c, err := e.Compare("golf_ball", "earth")
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if c.Larger != "earth" || c.Smaller != "golf_ball" {
		t.Errorf("larger/smaller = %q/%q", c.Larger, c.Smaller)
	}
	if c.Ratio >= 1 {
		t.Errorf("ratio = %g, want < 1", c.Ratio)
	}
	// SizeRatio is always larger over smaller.
	if c.SizeRatio < 1 {
		t.Errorf("SizeRatio = %g, want >= 1", c.SizeRatio)
	}
	// Text names the larger object first even when it was the second argument.
	if !strings.HasPrefix(c.Text, "Earth is") {
		t.Errorf("unexpected comparison text: %q", c.Text)
	}
}

func TestCompareSameKey(t *testing.T) {
	e := newTestEngine()

	c, err := e.Compare("earth", "earth")
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if c.Ratio != 1.0 || c.SizeRatio != 1.0 {
		t.Errorf("ratio = %g, size ratio = %g, want 1.0", c.Ratio, c.SizeRatio)
	}
	if c.Larger != "" || c.Smaller != "" {
		t.Errorf("equal sizes must yield no larger/smaller, got %q/%q", c.Larger, c.Smaller)
	}
	if c.Text != "Earth and Earth are the same size" {
		t.Errorf("text = %q", c.Text)
	}
}

func TestCompareRatioBands(t *testing.T) {
	entries := map[string]*catalog.Entry{
		"a": entry("a", "A", "", 1.5),
		"b": entry("b", "B", "", 1.0),
		"c": entry("c", "C", "", 40),
	}
	e := New(catalog.New(entries, catalog.Metadata{}))

	c, _ := e.Compare("a", "b")
	if c.Text != "A is 1.50 times larger than B" {
		t.Errorf("sub-2x band text = %q", c.Text)
	}

	c, _ = e.Compare("c", "b")
	if c.Text != "C is 40.0 times larger than B" {
		t.Errorf("sub-1000x band text = %q", c.Text)
	}
}

func TestCompareZeroDenominator(t *testing.T) {
	entries := map[string]*catalog.Entry{
		"point": entry("point", "Point", "", 0),
		"ball":  entry("ball", "Ball", "", 1),
	}
	e := New(catalog.New(entries, catalog.Metadata{}))

	c, err := e.Compare("ball", "point")
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if !math.IsInf(c.Ratio, 1) {
		t.Errorf("ratio = %g, want +Inf", c.Ratio)
	}
	if c.Larger != "ball" {
		t.Errorf("larger = %q", c.Larger)
	}
}

func TestScaleTo(t *testing.T) {
	e := newTestEngine()

	scaled, err := e.ScaleTo("earth", "golf_ball", nil)
	if err != nil {
		t.Fatalf("ScaleTo: %v", err)
	}

	// Target is excluded, everything else present.
	if len(scaled) != e.Catalog().Len()-1 {
		t.Fatalf("got %d scaled entries, want %d", len(scaled), e.Catalog().Len()-1)
	}
	for _, s := range scaled {
		if s.Key == "earth" {
			t.Error("target must not appear in scaled results")
		}
	}

	// Ascending by scaled size.
	for i := 1; i < len(scaled); i++ {
		if scaled[i].Meters < scaled[i-1].Meters {
			t.Errorf("results not ascending at %s", scaled[i].Key)
		}
	}

	// Spot check: the moon scaled by golf_ball/earth.
	factor := 0.04267 / 1.2742e7
	for _, s := range scaled {
		if s.Key == "moon" {
			want := 3.4748e6 * factor
			if math.Abs(s.Meters-want) > want*1e-12 {
				t.Errorf("moon scaled = %g, want %g", s.Meters, want)
			}
		}
	}
}

func TestScaleToExclude(t *testing.T) {
	e := newTestEngine()

	scaled, err := e.ScaleTo("earth", "golf_ball", []string{"sun", "virus"})
	if err != nil {
		t.Fatalf("ScaleTo: %v", err)
	}
	for _, s := range scaled {
		if s.Key == "sun" || s.Key == "virus" {
			t.Errorf("excluded key %q present in results", s.Key)
		}
	}
}

// Scaling earth to golf-ball size and golf ball to earth size must compose to
// the identity.
func TestScaleFactorInverts(t *testing.T) {
	e := newTestEngine()

	forward, err := e.ScaleFactor("earth", "golf_ball")
	if err != nil {
		t.Fatalf("ScaleFactor: %v", err)
	}
	backward, err := e.ScaleFactor("golf_ball", "earth")
	if err != nil {
		t.Fatalf("ScaleFactor: %v", err)
	}
	if product := forward * backward; math.Abs(product-1.0) > 1e-12 {
		t.Errorf("factor product = %g, want 1.0", product)
	}
}

func TestAnalogyExactMatch(t *testing.T) {
	entries := map[string]*catalog.Entry{
		"small":  entry("small", "Small", "", 1),
		"big":    entry("big", "Big", "", 10),
		"seed":   entry("seed", "Seed", "", 2),
		"target": entry("target", "Target", "", 20),
	}
	e := New(catalog.New(entries, catalog.Metadata{}))

	a, err := e.Analogy("small", "big", "seed")
	if err != nil {
		t.Fatalf("Analogy: %v", err)
	}
	if a.Ratio != 10 {
		t.Errorf("ratio = %g, want 10", a.Ratio)
	}
	if a.Expected != 20 {
		t.Errorf("expected = %g, want 20", a.Expected)
	}
	if a.Match.Key != "target" {
		t.Errorf("match = %q, want target", a.Match.Key)
	}
	// Zero relative difference means accuracy exactly 1.
	if a.Accuracy != 1.0 {
		t.Errorf("accuracy = %g, want 1.0", a.Accuracy)
	}
}

func TestAnalogyExcludesThirdObject(t *testing.T) {
	entries := map[string]*catalog.Entry{
		"a": entry("a", "A", "", 1),
		"b": entry("b", "B", "", 1),
		"c": entry("c", "C", "", 5),
	}
	e := New(catalog.New(entries, catalog.Metadata{}))

	// Ratio 1, expected equals C's own size; C must still not match itself.
	a, err := e.Analogy("a", "b", "c")
	if err != nil {
		t.Fatalf("Analogy: %v", err)
	}
	if a.Match.Key == "c" {
		t.Error("analogy matched the reference object itself")
	}
}

func TestAnalogyTieBreak(t *testing.T) {
	entries := map[string]*catalog.Entry{
		"base":  entry("base", "Base", "", 1),
		"ten":   entry("ten", "Ten", "", 10),
		"seed":  entry("seed", "Seed", "", 2),
		"alpha": entry("alpha", "Alpha", "", 19),
		"beta":  entry("beta", "Beta", "", 21),
	}
	e := New(catalog.New(entries, catalog.Metadata{}))

	a, err := e.Analogy("base", "ten", "seed")
	if err != nil {
		t.Fatalf("Analogy: %v", err)
	}
	// 19 and 21 are equidistant from the expected 20; lexicographic key order
	// makes "alpha" the deterministic winner.
	if a.Match.Key != "alpha" {
		t.Errorf("tie broke to %q, want alpha", a.Match.Key)
	}
	if math.Abs(a.Accuracy-0.95) > 1e-12 {
		t.Errorf("accuracy = %g, want 0.95", a.Accuracy)
	}
}

func TestAnalogyNegativeAccuracy(t *testing.T) {
	entries := map[string]*catalog.Entry{
		"a":    entry("a", "A", "", 1000),
		"b":    entry("b", "B", "", 1),
		"seed": entry("seed", "Seed", "", 1),
	}
	e := New(catalog.New(entries, catalog.Metadata{}))

	// Expected 0.001 while every candidate is at least 1, so the nearest
	// match is still >100% off and the raw accuracy goes negative. It is
	// deliberately not clamped.
	a, err := e.Analogy("a", "b", "seed")
	if err != nil {
		t.Fatalf("Analogy: %v", err)
	}
	if a.Accuracy >= 0 {
		t.Errorf("accuracy = %g, expected negative", a.Accuracy)
	}
	if a.Match.Key != "b" {
		t.Errorf("match = %q, want b", a.Match.Key)
	}
}

func TestAnalogyZeroGuards(t *testing.T) {
	entries := map[string]*catalog.Entry{
		"zero": entry("zero", "Zero", "", 0),
		"one":  entry("one", "One", "", 1),
		"two":  entry("two", "Two", "", 2),
	}
	e := New(catalog.New(entries, catalog.Metadata{}))

	_, err := e.Analogy("zero", "one", "two")
	if !errors.Is(err, ErrZeroDiameter) {
		t.Errorf("zero base: expected ErrZeroDiameter, got %v", err)
	}

	_, err = e.Analogy("one", "two", "zero")
	if !errors.Is(err, ErrZeroExpected) {
		t.Errorf("zero expected: expected ErrZeroExpected, got %v", err)
	}
}

func TestListAndExtremes(t *testing.T) {
	e := newTestEngine()

	list := e.List()
	if len(list) != e.Catalog().Len() {
		t.Fatalf("List returned %d entries", len(list))
	}
	for _, s := range list {
		if s.Formatted == "" {
			t.Errorf("entry %q has empty formatted size", s.Key)
		}
	}

	smallest, largest, err := e.Extremes()
	if err != nil {
		t.Fatalf("Extremes: %v", err)
	}
	if smallest.Key != "virus" {
		t.Errorf("smallest = %q, want virus", smallest.Key)
	}
	if largest.Key != "sun" {
		t.Errorf("largest = %q, want sun", largest.Key)
	}
}

func TestGroup(t *testing.T) {
	tests := []struct {
		meters float64
		want   string
	}{
		{1e-16, "Quantum"},
		{1e-10, "Atomic"},
		{1e-7, "Molecular"},
		{1e-5, "Cellular"},
		{0.04, "Everyday"},
		{8848, "Geographic"},
		{1.2742e7, "Planetary"},
		{1.3914e9, "Stellar"},
		{9.5e15, "Galactic"},
	}
	for _, tt := range tests {
		if got := Group(tt.meters); got != tt.want {
			t.Errorf("Group(%g) = %q, want %q", tt.meters, got, tt.want)
		}
	}
}

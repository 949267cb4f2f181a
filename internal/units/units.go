// Package units converts physical lengths between meters and the full range
// of metric-prefix units, from yoctometers (10^-24 m) to yottameters (10^24 m).
package units

import (
	"errors"
	"fmt"
	"strings"
)

// Unit is a metric-prefix length unit with its conversion factor to meters.
type Unit struct {
	Symbol string
	Factor float64
}

// Units lists the 21 supported metric prefixes ordered smallest to largest.
// The order matters: SelectUnit scans it front to back.
var Units = []Unit{
	{"ym", 1e-24},
	{"zm", 1e-21},
	{"am", 1e-18},
	{"fm", 1e-15},
	{"pm", 1e-12},
	{"nm", 1e-9},
	{"μm", 1e-6},
	{"mm", 1e-3},
	{"cm", 1e-2},
	{"dm", 1e-1},
	{"m", 1.0},
	{"dam", 1e1},
	{"hm", 1e2},
	{"km", 1e3},
	{"Mm", 1e6},
	{"Gm", 1e9},
	{"Tm", 1e12},
	{"Pm", 1e15},
	{"Em", 1e18},
	{"Zm", 1e21},
	{"Ym", 1e24},
}

// ErrUnknownUnit indicates a unit symbol outside the supported table.
// Use errors.Is() to check for it; the wrapped message lists valid symbols.
var ErrUnknownUnit = errors.New("unknown unit")

// Symbols returns the supported unit symbols in ascending factor order.
func Symbols() []string {
	symbols := make([]string, len(Units))
	for i, u := range Units {
		symbols[i] = u.Symbol
	}
	return symbols
}

// Factor resolves a unit symbol to its conversion factor to meters.
// "um" is accepted as an ASCII alias for "μm" since the Greek letter is
// easy to mistype on most keyboards.
func Factor(symbol string) (float64, error) {
	if symbol == "um" {
		symbol = "μm"
	}
	for _, u := range Units {
		if u.Symbol == symbol {
			return u.Factor, nil
		}
	}
	return 0, fmt.Errorf("%w %q, supported units: %s",
		ErrUnknownUnit, symbol, strings.Join(Symbols(), ", "))
}

// ToMeters converts a value in the given unit to meters.
func ToMeters(value float64, symbol string) (float64, error) {
	factor, err := Factor(symbol)
	if err != nil {
		return 0, err
	}
	return value * factor, nil
}

// SelectUnit picks the largest unit for which the scaled value is still >= 1
// and returns the value expressed in that unit. Magnitudes below one
// yoctometer fall back to "ym" with a scaled value below 1.
func SelectUnit(meters float64) (float64, string) {
	best := Units[0]
	for _, u := range Units {
		if meters/u.Factor >= 1.0 {
			best = u
		} else {
			break
		}
	}
	return meters / best.Factor, best.Symbol
}

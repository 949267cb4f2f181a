package units

import (
	"fmt"
	"math"
	"strings"
)

// Format renders a length in meters as "<number> <symbol>" with the given
// number of significant figures. If explicit is non-empty the value is scaled
// to that unit, otherwise SelectUnit picks one.
//
// Values below 0.01 or at least 10000 in the chosen unit switch to scientific
// notation; fixed-point output has trailing zeros (and a bare trailing point)
// stripped, so 1.200 renders as "1.2" and 1.000 as "1".
func Format(meters float64, precision int, explicit string) (string, error) {
	var value float64
	var symbol string

	if explicit != "" {
		factor, err := Factor(explicit)
		if err != nil {
			return "", err
		}
		value = meters / factor
		symbol = explicit
	} else {
		value, symbol = SelectUnit(meters)
	}

	return formatValue(value, precision) + " " + symbol, nil
}

func formatValue(value float64, precision int) string {
	if precision <= 0 {
		return fmt.Sprintf("%.0f", value)
	}
	if math.Abs(value) < 0.01 || math.Abs(value) >= 10000 {
		return fmt.Sprintf("%.*e", precision-1, value)
	}
	s := fmt.Sprintf("%.*f", precision-1, value)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// FormatAuto renders a length in meters with a fixed precision bracket per
// magnitude instead of significant figures. Comparison and analogy output use
// this mode. An unknown preferred unit falls back to automatic selection
// rather than failing.
func FormatAuto(meters float64, preferred string) string {
	var value float64
	var symbol string

	if preferred != "" {
		if factor, err := Factor(preferred); err == nil {
			value = meters / factor
			symbol = preferred
		} else {
			value, symbol = SelectUnit(meters)
		}
	} else {
		value, symbol = SelectUnit(meters)
	}

	switch {
	case value >= 1000:
		return fmt.Sprintf("%.2e %s", value, symbol)
	case value >= 100:
		return fmt.Sprintf("%.1f %s", value, symbol)
	case value >= 10:
		return fmt.Sprintf("%.2f %s", value, symbol)
	default:
		return fmt.Sprintf("%.3f %s", value, symbol)
	}
}

package units

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestFactor(t *testing.T) {
	tests := []struct {
		symbol string
		want   float64
	}{
		{"ym", 1e-24},
		{"nm", 1e-9},
		{"μm", 1e-6},
		{"um", 1e-6}, // ASCII alias
		{"cm", 1e-2},
		{"m", 1.0},
		{"dam", 1e1},
		{"km", 1e3},
		{"Ym", 1e24},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			got, err := Factor(tt.symbol)
			if err != nil {
				t.Fatalf("Factor(%q) returned error: %v", tt.symbol, err)
			}
			if got != tt.want {
				t.Errorf("Factor(%q) = %g, want %g", tt.symbol, got, tt.want)
			}
		})
	}
}

func TestFactorUnknown(t *testing.T) {
	_, err := Factor("lightyear")
	if !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("expected ErrUnknownUnit, got %v", err)
	}
	// The message has to enumerate all valid symbols so typos are recoverable.
	for _, symbol := range []string{"ym", "μm", "km", "Ym"} {
		if !strings.Contains(err.Error(), symbol) {
			t.Errorf("error message missing symbol %q: %s", symbol, err)
		}
	}
}

func TestUnitTableShape(t *testing.T) {
	if len(Units) != 21 {
		t.Fatalf("expected 21 units, got %d", len(Units))
	}
	if Units[0].Symbol != "ym" || Units[0].Factor != 1e-24 {
		t.Errorf("table must start at ym/1e-24, got %s/%g", Units[0].Symbol, Units[0].Factor)
	}
	if Units[20].Symbol != "Ym" || Units[20].Factor != 1e24 {
		t.Errorf("table must end at Ym/1e24, got %s/%g", Units[20].Symbol, Units[20].Factor)
	}
	for i := 1; i < len(Units); i++ {
		if Units[i].Factor <= Units[i-1].Factor {
			t.Errorf("factors not strictly increasing at %s", Units[i].Symbol)
		}
	}
}

// One whole unit of any prefix must round-trip: convert to meters, select a
// unit, and land back on the same factor with a scaled value in [1, 1000).
func TestSelectUnitRoundTrip(t *testing.T) {
	for _, u := range Units {
		meters, err := ToMeters(1.0, u.Symbol)
		if err != nil {
			t.Fatalf("ToMeters(1, %q): %v", u.Symbol, err)
		}
		value, symbol := SelectUnit(meters)
		if value < 1.0 || value >= 1000.0 {
			t.Errorf("SelectUnit(%g) value = %g, want in [1, 1000)", meters, value)
		}
		factor, err := Factor(symbol)
		if err != nil {
			t.Fatalf("Factor(%q): %v", symbol, err)
		}
		if factor != u.Factor {
			t.Errorf("round trip for %s landed on %s (factor %g)", u.Symbol, symbol, factor)
		}
	}
}

func TestSelectUnit(t *testing.T) {
	tests := []struct {
		name       string
		meters     float64
		wantValue  float64
		wantSymbol string
	}{
		{"greedy largest fit", 1500, 1.5, "km"},
		{"fifteen megameters", 1.5e7, 15, "Mm"},
		{"exact meter", 1.0, 1.0, "m"},
		{"centimeter range", 0.025, 2.5, "cm"},
		{"below smallest unit", 0.5e-24, 0.5, "ym"},
		{"golf ball", 0.04267, 4.267, "cm"},
		{"sun", 1.39e9, 1.39, "Gm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, symbol := SelectUnit(tt.meters)
			if symbol != tt.wantSymbol {
				t.Fatalf("SelectUnit(%g) symbol = %q, want %q", tt.meters, symbol, tt.wantSymbol)
			}
			if math.Abs(value-tt.wantValue) > 1e-9*math.Abs(tt.wantValue) {
				t.Errorf("SelectUnit(%g) value = %g, want %g", tt.meters, value, tt.wantValue)
			}
		})
	}
}

// SelectUnit never picks a unit whose factor exceeds the magnitude itself.
func TestSelectUnitNeverOvershoots(t *testing.T) {
	for _, meters := range []float64{1e-30, 3e-17, 0.2, 1, 999, 1001, 7e12, 2e26} {
		_, symbol := SelectUnit(meters)
		factor, _ := Factor(symbol)
		if factor > meters && symbol != "ym" {
			t.Errorf("SelectUnit(%g) picked %s with factor %g > magnitude", meters, symbol, factor)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name      string
		meters    float64
		precision int
		explicit  string
		want      string
	}{
		{"auto unit with trailing zeros stripped", 1.5e7, 3, "", "15 Mm"},
		{"scientific for large values", 1e6, 3, "m", "1.00e+06 m"},
		{"scientific for tiny values", 0.005, 3, "m", "5.00e-03 m"},
		{"fixed point trimmed", 1.2, 4, "m", "1.2 m"},
		{"whole number trimmed", 1.0, 4, "m", "1 m"},
		{"zero precision integer", 5.4, 0, "m", "5 m"},
		{"explicit kilometer", 1500, 3, "km", "1.5 km"},
		{"auto selection", 1500, 3, "", "1.5 km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.meters, tt.precision, tt.explicit)
			if err != nil {
				t.Fatalf("Format: %v", err)
			}
			if got != tt.want {
				t.Errorf("Format(%g, %d, %q) = %q, want %q",
					tt.meters, tt.precision, tt.explicit, got, tt.want)
			}
		})
	}
}

func TestFormatUnknownUnit(t *testing.T) {
	_, err := Format(1.0, 3, "parsec")
	if !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("expected ErrUnknownUnit, got %v", err)
	}
}

func TestFormatAuto(t *testing.T) {
	tests := []struct {
		name      string
		meters    float64
		preferred string
		want      string
	}{
		{"small bracket", 1500, "", "1.500 km"},
		{"tens bracket", 1.5e7, "", "15.00 Mm"},
		{"hundreds bracket", 1.39e11, "", "139.0 Gm"},
		{"scientific bracket", 2.5e6, "km", "2.50e+03 km"},
		{"preferred unit", 0.04267, "mm", "42.67 mm"},
		{"unknown preferred falls back", 1500, "parsec", "1.500 km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAuto(tt.meters, tt.preferred)
			if got != tt.want {
				t.Errorf("FormatAuto(%g, %q) = %q, want %q", tt.meters, tt.preferred, got, tt.want)
			}
		})
	}
}

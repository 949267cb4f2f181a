package cli

import (
	"fmt"
	"strconv"

	"github.com/mkarlsen/magnitude/internal/units"
	"github.com/spf13/cobra"
)

var rangeUnit string

var rangeCmd = &cobra.Command{
	Use:   "range <min> <max>",
	Short: "Find objects within a size range",
	Long: `Find all objects whose diameter lies in the closed interval [min, max].
Bounds are given in the unit named by --unit.

Examples:
  magnitude range 1 10 --unit cm
  magnitude range 1e6 1e9`,
	Args: cobra.ExactArgs(2),
	RunE: runRange,
}

func init() {
	rangeCmd.Flags().StringVarP(&rangeUnit, "unit", "u", "m", "unit of the bounds")
}

func runRange(cmd *cobra.Command, args []string) error {
	min, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid minimum %q: %w", args[0], err)
	}
	max, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid maximum %q: %w", args[1], err)
	}

	keys, err := engine.FindInRange(min, max, rangeUnit)
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		fmt.Println("No objects in range.")
		return nil
	}

	fmt.Printf("Objects between %s and %s (%d):\n\n",
		formatBound(min, rangeUnit), formatBound(max, rangeUnit), len(keys))
	for _, key := range keys {
		size, err := engine.FormatSize(key, cfg.Precision, cfg.DefaultUnit)
		if err != nil {
			return err
		}
		e, err := engine.Catalog().Get(key)
		if err != nil {
			return err
		}
		fmt.Printf("- %s (%s): %s\n", e.Name, key, size)
	}

	return nil
}

func formatBound(value float64, unit string) string {
	meters, err := units.ToMeters(value, unit)
	if err != nil {
		return fmt.Sprintf("%g %s", value, unit)
	}
	return formatMeters(meters)
}

// formatMeters renders a raw meter value, preferring the configured default
// unit when one is set.
func formatMeters(meters float64) string {
	return units.FormatAuto(meters, cfg.DefaultUnit)
}

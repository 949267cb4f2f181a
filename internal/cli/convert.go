package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mkarlsen/magnitude/internal/units"
	"github.com/spf13/cobra"
)

var (
	convertTo        string
	convertPrecision int
)

var convertCmd = &cobra.Command{
	Use:   "convert <value> <unit>",
	Short: "Convert a length between metric-prefix units",
	Long: `Convert a value from one metric-prefix unit to another, or to the most
readable unit when --to is omitted.

Examples:
  magnitude convert 1500 m
  magnitude convert 2.5 km --to cm
  magnitude convert 0.8 nm --precision 4`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the supported unit symbols",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, u := range units.Units {
			fmt.Printf("%-4s 10^%+d m\n", u.Symbol, exponent(u.Factor))
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "", "target unit (default: auto-select)")
	convertCmd.Flags().IntVarP(&convertPrecision, "precision", "p", 3, "significant figures")
}

func runConvert(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[0], err)
	}

	meters, err := units.ToMeters(value, args[1])
	if err != nil {
		return err
	}

	out, err := units.Format(meters, convertPrecision, convertTo)
	if err != nil {
		return err
	}

	fmt.Println(out)
	if verbose {
		fmt.Printf("(%g m)\n", meters)
	}
	return nil
}

// exponent recovers the decimal exponent of a power-of-ten factor for the
// units table printout. Rounding matters: 1e-12 is not an exact power of ten
// in binary, so repeated division would drift off by one.
func exponent(factor float64) int {
	return int(math.Round(math.Log10(factor)))
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <object> <object>",
	Short: "Compare two objects by size",
	Long: `Compare the diameters of two catalog objects.

Examples:
  magnitude compare earth moon
  magnitude compare virus golf_ball`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	c, err := engine.Compare(args[0], args[1])
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}

	fmt.Printf("%s: %s\n", c.A.Name, c.A.Formatted)
	fmt.Printf("%s: %s\n", c.B.Name, c.B.Formatted)
	fmt.Println()
	fmt.Println(c.Text)

	if verbose {
		fmt.Printf("\nRatio (%s / %s): %g\n", c.A.Key, c.B.Key, c.Ratio)
	}

	return nil
}

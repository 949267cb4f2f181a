package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var analogyCmd = &cobra.Command{
	Use:   "analogy <a> <b> <c>",
	Short: "Build a scale analogy: a is to b as c is to ...",
	Long: `Build a proportional scale analogy. The first two objects set the ratio,
the third is rescaled by it, and the catalog object nearest the result
(by relative difference) completes the analogy.

Examples:
  magnitude analogy atom_hydrogen golf_ball earth
  magnitude analogy earth golf_ball sun`,
	Args: cobra.ExactArgs(3),
	RunE: runAnalogy,
}

func runAnalogy(cmd *cobra.Command, args []string) error {
	a, err := engine.Analogy(args[0], args[1], args[2])
	if err != nil {
		return fmt.Errorf("analogy: %w", err)
	}

	fmt.Println("Scale Analogy:")
	fmt.Printf("   %s is to %s\n", a.A.Name, a.B.Name)
	fmt.Printf("   as %s is to %s\n\n", a.C.Name, a.Match.Name)

	fmt.Println("Object Sizes:")
	for _, side := range []struct {
		Name      string
		Formatted string
	}{
		{a.A.Name, a.A.Formatted},
		{a.B.Name, a.B.Formatted},
		{a.C.Name, a.C.Formatted},
		{a.Match.Name, a.Match.Formatted},
	} {
		fmt.Printf("   - %s: %s\n", side.Name, side.Formatted)
	}

	fmt.Printf("\nScale Factor: %.2e\n", a.Ratio)
	fmt.Printf("Expected Size: %s\n", formatMeters(a.Expected))
	fmt.Printf("Match Accuracy: %.1f%%\n", a.Accuracy*100)

	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	scaleExclude []string
	scaleLimit   int
)

var scaleCmd = &cobra.Command{
	Use:   "scale <target> <reference>",
	Short: "Rescale the catalog as if target were reference-sized",
	Long: `Show what every other object would look like if the target object were
shrunk or grown to the reference object's size.

Examples:
  magnitude scale earth golf_ball
  magnitude scale sun basketball --limit 5
  magnitude scale earth golf_ball --exclude moon,sun`,
	Args: cobra.ExactArgs(2),
	RunE: runScale,
}

func init() {
	scaleCmd.Flags().StringSliceVarP(&scaleExclude, "exclude", "x", nil, "keys to leave out")
	scaleCmd.Flags().IntVarP(&scaleLimit, "limit", "n", 10, "max results")
}

func runScale(cmd *cobra.Command, args []string) error {
	targetKey, referenceKey := args[0], args[1]

	target, err := engine.Catalog().Get(targetKey)
	if err != nil {
		return err
	}
	reference, err := engine.Catalog().Get(referenceKey)
	if err != nil {
		return err
	}

	// The reference itself would just map onto its own size; leave it out.
	exclude := append([]string{referenceKey}, scaleExclude...)
	scaled, err := engine.ScaleTo(targetKey, referenceKey, exclude)
	if err != nil {
		return fmt.Errorf("scale: %w", err)
	}

	refMeters := reference.Size()
	fmt.Printf("If %s were the size of a %s:\n\n", target.Name, reference.Name)
	fmt.Printf("Reference: %s: %s\n", reference.Name, formatMeters(refMeters))
	fmt.Printf("Scaled:    %s: %s\n\n", target.Name, formatMeters(refMeters))

	for i, s := range scaled {
		if i >= scaleLimit {
			fmt.Printf("... and %d more\n", len(scaled)-i)
			break
		}
		fmt.Printf("- %s: %s\n", s.Name, formatMeters(s.Meters))
		if verbose && s.Description != "" {
			fmt.Printf("  %s\n", s.Description)
		}
	}

	return nil
}

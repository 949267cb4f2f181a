package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search objects by name or description",
	Long: `Search the catalog with a case-insensitive substring match against
object names and descriptions.

Examples:
  magnitude search ball
  magnitude search "blood cell"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	keys := engine.Search(args[0])

	if len(keys) == 0 {
		fmt.Println("No objects found.")
		return nil
	}

	fmt.Printf("Found %d objects:\n\n", len(keys))
	for _, key := range keys {
		size, err := engine.FormatSize(key, cfg.Precision, cfg.DefaultUnit)
		if err != nil {
			return fmt.Errorf("format %s: %w", key, err)
		}
		e, err := engine.Catalog().Get(key)
		if err != nil {
			return err
		}
		fmt.Printf("- %s (%s): %s\n", e.Name, key, size)
		if verbose && e.Description != "" {
			fmt.Printf("  %s\n", e.Description)
		}
	}

	return nil
}

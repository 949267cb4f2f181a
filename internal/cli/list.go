package cli

import (
	"fmt"
	"os"

	"github.com/mkarlsen/magnitude/internal/scale"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	listTags []string
	listInfo bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog objects",
	Long: `List objects in the catalog with their sizes, optionally filtered by tags.

An empty tag filter lists everything; tags are matched with any-of semantics.

Examples:
  magnitude list
  magnitude list --tags astronomy
  magnitude list --tags "sports,everyday"
  magnitude list --info`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringSliceVarP(&listTags, "tags", "t", nil, "filter by tags")
	listCmd.Flags().BoolVar(&listInfo, "info", false, "show catalog metadata")
}

func runList(cmd *cobra.Command, args []string) error {
	if listInfo {
		meta := engine.Catalog().Metadata()
		fmt.Printf("Catalog: %s\n", cfg.CatalogPath)
		fmt.Printf("Objects: %d\n", engine.Catalog().Len())
		if meta.Version != "" {
			fmt.Printf("Version: %s\n", meta.Version)
		}
		if meta.Description != "" {
			fmt.Printf("Description: %s\n", meta.Description)
		}
		if meta.Source != "" {
			fmt.Printf("Source: %s\n", meta.Source)
		}
		return nil
	}

	keys := engine.FilterByTags(listTags)
	if len(keys) == 0 {
		fmt.Println("No objects found.")
		return nil
	}

	wanted := make(map[string]bool, len(keys))
	for _, key := range keys {
		wanted[key] = true
	}

	width := terminalWidth()
	fmt.Printf("Objects (%d):\n\n", len(keys))
	for _, s := range engine.List() {
		if !wanted[s.Key] {
			continue
		}
		line := fmt.Sprintf("- %s (%s): %s [%s]", s.Name, s.Key, s.Formatted, scale.Group(s.Meters))
		fmt.Println(truncate(line, width))
		if verbose {
			if s.Description != "" {
				fmt.Printf("  %s\n", truncate(s.Description, width-2))
			}
			if len(s.Tags) > 0 {
				fmt.Printf("  Tags: %v\n", s.Tags)
			}
		}
	}

	return nil
}

// terminalWidth returns the width of stdout, or a conservative default when
// stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 100
	}
	return width
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

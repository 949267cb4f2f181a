// Package cli provides the command-line interface for magnitude.
package cli

import (
	"fmt"

	"github.com/mkarlsen/magnitude/internal/catalog"
	"github.com/mkarlsen/magnitude/internal/config"
	"github.com/mkarlsen/magnitude/internal/scale"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose     bool
	catalogPath string

	// Global config and engine, loaded once per invocation
	cfg    config.Config
	engine *scale.Engine
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "magnitude",
	Short: "Object size catalog and scale-analogy explorer",
	Long: `Magnitude compares the sizes of physical objects across 61 orders of
magnitude, from quantum particles to cosmic structures.

It renders catalog diameters in readable metric-prefix units, compares pairs
of objects, rescales the whole catalog proportionally ("if Earth were a golf
ball...") and finds nearest-size matches for scale analogies.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip catalog loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "units" || cmd.Name() == "convert" {
			return nil
		}

		cfg = config.Load()
		if catalogPath != "" {
			cfg.CatalogPath = catalogPath
		}

		cat, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		engine = scale.New(cat)

		if verbose {
			meta := cat.Metadata()
			fmt.Printf("Loaded %d objects from %s", cat.Len(), cfg.CatalogPath)
			if meta.Version != "" {
				fmt.Printf(" (catalog version %s)", meta.Version)
			}
			fmt.Println()
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "catalog file (overrides MAGNITUDE_CATALOG)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(analogyCmd)
	rootCmd.AddCommand(rangeCmd)
	rootCmd.AddCommand(exploreCmd)
}

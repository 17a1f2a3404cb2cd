package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sshravan91/fundscope/internal/mapping"
)

var (
	seedPath string
	seedOut  string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Build a funds/categories mapping skeleton from the seed YAML",
	Long:  "Converts the seed fund list into the mapping JSON consumed by run; metrics keys and scheme codes are filled in by hand or by run --update-mapping.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := seedPath
		if path == "" {
			path = cfg.Mapping.SeedPath
		}

		seed, err := mapping.LoadSeed(path)
		if err != nil {
			return err
		}

		records := mapping.RecordsFromSeed(seed.Funds)
		if err := mapping.ExportJSON(seedOut, records, seed.Categories); err != nil {
			return err
		}

		fmt.Printf("wrote %d funds and %d categories to %s\n", len(records), len(seed.Categories), seedOut)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedPath, "seed", "", "seed YAML path (default from config)")
	seedCmd.Flags().StringVar(&seedOut, "out", "funds_and_categories.json", "output mapping JSON path")
	rootCmd.AddCommand(seedCmd)
}

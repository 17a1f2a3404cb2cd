package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sshravan91/fundscope/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "fundscope",
	Short: "Mutual fund research and export pipeline",
	Long:  "Scrapes fund performance pages, enriches them with risk-ratio sheets and scheme stats, and exports a categorized report.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sshravan91/fundscope/internal/consolidate"
)

var consolidateOut string

var consolidateCmd = &cobra.Command{
	Use:   "consolidate <trailing-returns-sheet> <risk-ratios-sheet>",
	Short: "Merge trailing returns and risk ratios into one workbook",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := consolidate.Consolidate(args[0], args[1], consolidateOut); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", consolidateOut)
		return nil
	},
}

func init() {
	consolidateCmd.Flags().StringVar(&consolidateOut, "out", "consolidated-mft-returns.xlsx", "output workbook path")
	rootCmd.AddCommand(consolidateCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "statgen",
	Short: "Statistics question generator",
	Long:  "Statgen — generates randomized statistics word problems (means, trimmed means, weighted means, percentile ranks) with themed narratives and full answer keys.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path to the context bank workbook (overrides STATGEN_BANK env var)")
	rootCmd.PersistentFlags().String("refdata", "", "Path to the reference data workbook (overrides STATGEN_REFDATA env var)")
	rootCmd.PersistentFlags().String("cache-dir", "", "Directory for the parsed bank cache")
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed (0 uses the current time)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(contextsCmd)
	rootCmd.AddCommand(versionCmd)
}

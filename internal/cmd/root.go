package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adrank [input]",
	Short: "Rank ads by active duration",
	Long: `adrank reads an ads response JSON file, ranks the ads by how long each
has been active, and writes a fixed-width text report to stdout and a file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRank,
}

// Flags
var (
	rankNow    string
	rankOutput string
)

func init() {
	rootCmd.Flags().StringVar(&rankNow, "now", "", "ISO 8601 timestamp used as the current time for still-active ads (default: wall clock)")
	rootCmd.Flags().StringVar(&rankOutput, "output", "", "Report path (default: <input-stem>_ranked.txt next to the input)")

	rootCmd.AddCommand(exportCmd)
}

// RootCommand returns the root command for execution
func RootCommand() *cobra.Command {
	return rootCmd
}

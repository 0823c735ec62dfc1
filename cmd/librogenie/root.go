package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/librogenie/internal/api"
	"github.com/jackzampolin/librogenie/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "librogenie",
	Short: "Conversational library assistant backed by an LLM agent",
	Long: `LibroGenie answers natural-language questions about a library using
an LLM-driven agent loop over a fixed set of lookup tools.

The assistant can:
  - Find where a book is shelved and whether it is available
  - Recommend books matching a user's interests
  - Calculate overdue fines for a user's loans
  - List upcoming due dates`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.librogenie/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "librogenie home directory (default: ~/.librogenie)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}

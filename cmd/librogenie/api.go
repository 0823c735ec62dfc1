package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/librogenie/internal/api"
	"github.com/jackzampolin/librogenie/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running LibroGenie server via HTTP.

These commands require a running server (librogenie serve).
Use --server to specify a custom server URL.

Examples:
  librogenie api health                         # Check server health
  librogenie api ask "Where is Atomic Habits"   # Ask the assistant
  librogenie api tools                          # List lookup tools`,
	// Replaces the root PersistentPreRun for this subtree, so the output
	// format is set here as well.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		api.SetOutputFormat(outputFormat)
		client := api.NewClient(serverURL)
		if err := client.WaitReady(cmd.Context(), serverWaitTimeout); err != nil {
			return fmt.Errorf("server at %s is not responding: %w", serverURL, err)
		}
		return nil
	},
}

// serverWaitTimeout bounds the health poll before an api command runs.
const serverWaitTimeout = 5 * time.Second

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8990", "Server URL",
	)

	for _, ep := range endpoints.All() {
		if cmd := ep.Command(getServerURL); cmd != nil {
			apiCmd.AddCommand(cmd)
		}
	}

	rootCmd.AddCommand(apiCmd)
}

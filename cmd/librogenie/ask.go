package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/librogenie/internal/agent"
	"github.com/jackzampolin/librogenie/internal/config"
	"github.com/jackzampolin/librogenie/internal/library"
	"github.com/jackzampolin/librogenie/internal/oracle"
	"github.com/jackzampolin/librogenie/internal/providers"
	"github.com/jackzampolin/librogenie/internal/tools"
)

var askVerbose bool

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the library assistant directly, without a server",
	Long: `Ask runs the full agent loop in-process and prints the answer.

Requires the configured LLM provider's API key in the environment.

Examples:
  librogenie ask "Where can I find Atomic Habits?"
  librogenie ask "Any fines for alekhya?" --verbose`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if askVerbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))

		cfgMgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cfgMgr.Get()

		registry := providers.NewRegistryFromConfig(cfg.ToProviderRegistryConfig())
		llm, err := registry.GetLLM(cfg.Defaults.LLMProvider)
		if err != nil {
			return fmt.Errorf("LLM provider %q is not usable: check that its API key environment variable is set", cfg.Defaults.LLMProvider)
		}

		toolReg := tools.NewRegistry(library.DefaultLibrary())
		exec := agent.NewExecutor(agent.Config{
			Oracle: oracle.New(oracle.Config{
				Client:      llm,
				Registry:    toolReg,
				Temperature: cfg.Defaults.Temperature,
			}),
			Registry:    toolReg,
			MaxSteps:    cfg.Defaults.MaxSteps,
			MaxDuration: time.Duration(cfg.Defaults.MaxDurationSeconds) * time.Second,
			Logger:      logger,
		})

		result, err := exec.Run(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		switch result.Outcome {
		case agent.OutcomeAnswered:
			fmt.Println(result.Answer)
			return nil
		default:
			return fmt.Errorf("%s: %s", result.Outcome, result.Reason)
		}
	},
}

func init() {
	askCmd.Flags().BoolVarP(&askVerbose, "verbose", "v", false, "Log agent steps to stderr")
	rootCmd.AddCommand(askCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/librogenie/internal/config"
	"github.com/jackzampolin/librogenie/internal/home"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a commented default configuration file.

The file is written to ~/.librogenie/config.yaml unless --config points
elsewhere. Existing files are not overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			h, err := home.New(homeDir)
			if err != nil {
				return err
			}
			if err := h.EnsureExists(); err != nil {
				return err
			}
			if h.ConfigExists() {
				return fmt.Errorf("config already exists at %s", h.ConfigPath())
			}
			path = h.ConfigPath()
		}

		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("Wrote default config to %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

// Package cmd implements the CLI commands for msp-alert-engine.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "msp-alert-engine",
	Short: "Evaluate device metrics against alert rules and escalate",
	Long: "An API-first service that ingests metric samples from managed devices, " +
		"evaluates tenant alert rules, records alert instances and walks escalation " +
		"policies across email, SMS and realtime channels.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Root returns the root command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

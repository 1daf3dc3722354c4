// Package cmd implements the maectl CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/msp-alert-engine/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "maectl",
		Short: "CLI client for the MSP Alert Engine",
		Long: "maectl is a command-line client for the MSP Alert Engine API.\n" +
			"It manages alert rules, escalation policies, devices and role members,\n" +
			"acknowledges and resolves alerts, and can act as a metrics agent.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.maectl.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		String("tenant", "", "default tenant ID")
	rootCmd.PersistentFlags().
		Duration("timeout", 30*time.Second, "request timeout")
	rootCmd.PersistentFlags().
		Int("retries", 2, "retries on network errors and 5xx responses")

	for _, name := range []string{"server", "output", "tenant", "timeout", "retries"} {
		cobra.CheckErr(viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)))
	}

	rootCmd.AddCommand(rulesCmd())
	rootCmd.AddCommand(policiesCmd())
	rootCmd.AddCommand(alertsCmd())
	rootCmd.AddCommand(devicesCmd())
	rootCmd.AddCommand(rolesCmd())
	rootCmd.AddCommand(pushCmd())
	rootCmd.AddCommand(agentCmd())
	rootCmd.AddCommand(scanCmd())
	rootCmd.AddCommand(jobsCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".maectl")
	}

	viper.SetEnvPrefix("MAECTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"),
		apiclient.WithTimeout(viper.GetDuration("timeout")),
		apiclient.WithRetries(viper.GetInt("retries")),
	)
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}

func tenantFlag() string {
	return viper.GetString("tenant")
}

// requireTenant returns the --tenant value or an error when it is unset.
func requireTenant() (string, error) {
	t := tenantFlag()
	if t == "" {
		return "", fmt.Errorf("a tenant is required: pass --tenant or set MAECTL_TENANT")
	}
	return t, nil
}

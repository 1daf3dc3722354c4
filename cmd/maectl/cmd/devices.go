package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

func devicesCmd() *cobra.Command {
	devicesRoot := &cobra.Command{
		Use:   "devices",
		Short: "Manage monitored devices",
	}

	devicesRoot.AddCommand(
		deviceListCmd(),
		deviceGetCmd(),
		deviceRegisterCmd(),
	)

	return devicesRoot
}

func deviceListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List a tenant's devices",
		Example: `  maectl devices list --tenant acme`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tenant, err := requireTenant()
			if err != nil {
				return err
			}
			devices, err := newClient().ListDevices(cmd.Context(), tenant)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, devices)
			}
			if len(devices) == 0 {
				fmt.Fprintln(out, "No devices found.")
				return nil
			}
			return printDeviceTable(out, devices)
		},
	}
}

func deviceGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show a device",
		Example: `  maectl devices get D1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newClient().GetDevice(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, d)
			}
			return printDeviceTable(out, []domain.Device{*d})
		},
	}
}

func deviceRegisterCmd() *cobra.Command {
	var hostname string

	cmd := &cobra.Command{
		Use:     "register <id>",
		Short:   "Register a device for a tenant",
		Example: `  maectl devices register D1 --tenant acme --hostname web-01`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenant, err := requireTenant()
			if err != nil {
				return err
			}
			d, err := newClient().CreateDevice(cmd.Context(), args[0], tenant, hostname)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), d)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Device registered: %s (tenant %s)\n", d.ID, d.TenantID)
			return nil
		},
	}
	cmd.Flags().StringVar(&hostname, "hostname", "", "device hostname")
	return cmd
}

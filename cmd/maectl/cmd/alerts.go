package cmd

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/msp-alert-engine/internal/api/client"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

func alertsCmd() *cobra.Command {
	alertsRoot := &cobra.Command{
		Use:   "alerts",
		Short: "Inspect and act on alerts",
		Long: "List alert history, acknowledge or resolve alerts and inspect their\n" +
			"escalation. Acknowledging or resolving an alert stops its escalation.",
	}

	alertsRoot.AddCommand(
		alertListCmd(),
		alertGetCmd(),
		alertTransitionCmd("ack", "Acknowledge an alert", domain.AlertAcknowledged),
		alertTransitionCmd("resolve", "Resolve an alert", domain.AlertResolved),
		alertEscalationsCmd(),
	)

	return alertsRoot
}

func alertListCmd() *cobra.Command {
	var (
		f     apiclient.AlertFilter
		since time.Duration
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alerts",
		Example: `  maectl alerts list --tenant acme --status active
  maectl alerts list --tenant acme --severity critical --since 24h
  maectl alerts list --device D1 --status active --status acknowledged --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f.TenantID = tenantFlag()
			if since > 0 {
				f.Since = time.Now().Add(-since)
			}
			page, err := newClient().ListAlerts(cmd.Context(), &f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, page)
			}
			if len(page.Alerts) == 0 {
				fmt.Fprintln(out, "No alerts found.")
				return nil
			}
			if err := printAlertTable(out, page.Alerts); err != nil {
				return err
			}
			if page.Total > len(page.Alerts) {
				fmt.Fprintf(out, "\nShowing %d-%d of %d.\n",
					page.Offset+1, page.Offset+len(page.Alerts), page.Total)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&f.DeviceID, "device", "", "filter by device")
	cmd.Flags().StringVar(&f.RuleID, "rule", "", "filter by rule")
	cmd.Flags().StringVar(&f.Severity, "severity", "", "filter by severity")
	cmd.Flags().StringArrayVar(&f.Statuses, "status", nil, "filter by status (repeatable)")
	cmd.Flags().DurationVar(&since, "since", 0, "only alerts triggered within this duration")
	cmd.Flags().IntVar(&f.Limit, "limit", 50, "page size")
	cmd.Flags().IntVar(&f.Offset, "offset", 0, "page offset")
	cmd.Flags().StringVar(&f.OrderBy, "order-by", "", "triggered_at or severity")
	return cmd
}

func alertGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show alert details",
		Example: `  maectl alerts get 9a2e...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newClient().GetAlert(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), a)
			}
			return printAlertDetail(cmd.OutOrStdout(), a)
		},
	}
}

func alertTransitionCmd(use, short string, target domain.AlertStatus) *cobra.Command {
	var actor, note string

	cmd := &cobra.Command{
		Use:     use + " <id>",
		Short:   short,
		Example: "  maectl alerts " + use + ` 9a2e... --note "looking into it"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if actor == "" {
				actor = currentUser()
			}
			c := newClient()
			var (
				a   *domain.AlertInstance
				err error
			)
			if target == domain.AlertResolved {
				a, err = c.ResolveAlert(cmd.Context(), args[0], actor, note)
			} else {
				a, err = c.AcknowledgeAlert(cmd.Context(), args[0], actor, note)
			}
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), a)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Alert %s is now %s.\n", a.ID, a.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&actor, "actor", "", "who is acting (default: current user)")
	cmd.Flags().StringVar(&note, "note", "", "note recorded with the transition")
	return cmd
}

func alertEscalationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "escalations <id>",
		Short:   "Show escalation state and dispatches for an alert",
		Example: `  maectl alerts escalations 9a2e...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			esc, err := newClient().GetAlertEscalations(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, esc)
			}
			if len(esc.States) == 0 {
				fmt.Fprintln(out, "No escalation policy applies to this alert.")
				return nil
			}
			return printEscalations(out, esc.States, esc.Dispatches)
		},
	}
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if h, err := os.Hostname(); err == nil {
		return "maectl@" + h
	}
	return "maectl"
}

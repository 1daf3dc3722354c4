package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/msp-alert-engine/internal/api/client"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

func policiesCmd() *cobra.Command {
	policiesRoot := &cobra.Command{
		Use:   "policies",
		Short: "Manage escalation policies",
		Long: "Manage escalation policies. A policy starts escalating an alert of a\n" +
			"matching severity once it has been active for trigger_after_minutes and\n" +
			"then walks its ordered steps, notifying the step's roles on each enabled channel.",
	}

	policiesRoot.AddCommand(
		policyListCmd(),
		policyGetCmd(),
		policyApplyCmd(),
		policyDeleteCmd(),
	)

	return policiesRoot
}

func policyListCmd() *cobra.Command {
	var enabledOnly bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List escalation policies",
		Example: `  maectl policies list --tenant acme --enabled`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			policies, err := newClient().ListPolicies(cmd.Context(), tenantFlag(), enabledOnly)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, policies)
			}
			if len(policies) == 0 {
				fmt.Fprintln(out, "No policies found.")
				return nil
			}
			return printPolicyTable(out, policies)
		},
	}
	cmd.Flags().BoolVar(&enabledOnly, "enabled", false, "only enabled policies")
	return cmd
}

func policyGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show a policy and its steps",
		Example: `  maectl policies get 5c1d...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newClient().GetPolicy(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), p)
			}
			return printPolicyDetail(cmd.OutOrStdout(), p)
		},
	}
}

func policyApplyCmd() *cobra.Command {
	var (
		file string
		id   string
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create or replace a policy from a YAML or JSON file",
		Long: "Create or replace a policy from a document. The document is validated\n" +
			"locally before it is sent. Step orders must be unique and every step\n" +
			"needs a role and a channel.",
		Example: `  # on-call.yaml
  #   tenant_id: acme
  #   name: Critical on-call
  #   trigger_severities: [high, critical]
  #   trigger_after_minutes: 5
  #   steps:
  #     - order: 1
  #       roles: [tech]
  #       notify_realtime: true
  #     - order: 2
  #       wait_minutes_after_previous: 15
  #       roles: [tech, manager]
  #       notify_email: true
  #       notify_sms: true
  maectl policies apply -f on-call.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readInput(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			var req apiclient.PolicyRequest
			if err := decodeDocument(data, &req); err != nil {
				return err
			}
			if req.TenantID == "" {
				req.TenantID = tenantFlag()
			}
			if err := validatePolicyRequest(&req); err != nil {
				return err
			}

			c := newClient()
			var p *domain.EscalationPolicy
			verb := "created"
			if id != "" {
				p, err = c.UpdatePolicy(cmd.Context(), id, &req)
				verb = "updated"
			} else {
				p, err = c.CreatePolicy(cmd.Context(), &req)
			}
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Policy %s: %s (%s)\n", verb, p.Name, p.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "policy document (- for stdin)")
	cmd.Flags().StringVar(&id, "id", "", "replace this policy instead of creating one")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))
	return cmd
}

func validatePolicyRequest(req *apiclient.PolicyRequest) error {
	p := domain.EscalationPolicy{
		TenantID:            req.TenantID,
		Name:                req.Name,
		TriggerSeverities:   req.TriggerSeverities,
		TriggerAfterMinutes: req.TriggerAfterMinutes,
		Enabled:             req.Enabled == nil || *req.Enabled,
		Steps:               req.Steps,
	}
	return p.Validate()
}

func policyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a policy",
		Example: `  maectl policies delete 5c1d...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeletePolicy(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Policy %s deleted.\n", args[0])
			return nil
		},
	}
}

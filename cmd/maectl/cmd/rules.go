package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/msp-alert-engine/internal/api/client"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

func rulesCmd() *cobra.Command {
	rulesRoot := &cobra.Command{
		Use:   "rules",
		Short: "Manage alert rules",
		Long: "Manage alert rules. A rule compares one metric against a threshold and\n" +
			"applies either to one device or, without --device, to every device of\n" +
			"its tenant. Device rules take precedence over global rules for the same metric.",
	}

	rulesRoot.AddCommand(
		ruleListCmd(),
		ruleGetCmd(),
		ruleCreateCmd(),
		ruleApplyCmd(),
		ruleSetActiveCmd("enable", "Enable a rule", true),
		ruleSetActiveCmd("disable", "Disable a rule without deleting it", false),
		ruleDeleteCmd(),
	)

	return rulesRoot
}

func ruleListCmd() *cobra.Command {
	var f apiclient.RuleFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alert rules",
		Example: `  maectl rules list --tenant acme
  maectl rules list --tenant acme --device D1 --active`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f.TenantID = tenantFlag()
			rules, err := newClient().ListRules(cmd.Context(), f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, rules)
			}
			if len(rules) == 0 {
				fmt.Fprintln(out, "No rules found.")
				return nil
			}
			return printRuleTable(out, rules)
		},
	}
	cmd.Flags().StringVar(&f.DeviceID, "device", "", "only rules scoped to this device")
	cmd.Flags().BoolVar(&f.ActiveOnly, "active", false, "only active rules")
	cmd.Flags().BoolVar(&f.IncludeDeleted, "include-deleted", false, "include soft-deleted rules")
	return cmd
}

func ruleGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show rule details",
		Example: `  maectl rules get 0b6f...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newClient().GetRule(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), r)
			}
			return printRuleDetail(cmd.OutOrStdout(), r)
		},
	}
}

func ruleCreateCmd() *cobra.Command {
	var (
		name      string
		alertType string
		severity  string
		device    string
		condition string
		inactive  bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an alert rule",
		Example: `  # Global rule for every device of the tenant
  maectl rules create --tenant acme --name "High CPU" --severity high \
    --condition "cpu_percent > 90"

  # Device-scoped override
  maectl rules create --tenant acme --device D1 --name "DB CPU" \
    --severity critical --condition "cpu_percent >= 97"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tenant, err := requireTenant()
			if err != nil {
				return err
			}
			if name == "" || condition == "" {
				return fmt.Errorf("--name and --condition are required")
			}
			cond, err := domain.ParseCondition(condition)
			if err != nil {
				return err
			}
			req := &apiclient.RuleRequest{
				TenantID:  tenant,
				Name:      name,
				AlertType: alertType,
				Severity:  domain.Severity(severity),
				DeviceID:  device,
				Condition: cond,
			}
			if inactive {
				req.IsActive = new(bool)
			}

			created, err := newClient().CreateRule(cmd.Context(), req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rule created: %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "rule name")
	cmd.Flags().StringVar(&alertType, "type", "", "free-form alert type label")
	cmd.Flags().StringVar(&severity, "severity", string(domain.SeverityMedium), "low, medium, high or critical")
	cmd.Flags().StringVar(&device, "device", "", "scope the rule to one device")
	cmd.Flags().StringVar(&condition, "condition", "", `condition, e.g. "cpu_percent > 90"`)
	cmd.Flags().BoolVar(&inactive, "inactive", false, "create the rule disabled")
	return cmd
}

func ruleApplyCmd() *cobra.Command {
	var (
		file string
		id   string
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create or replace a rule from a YAML or JSON file",
		Example: `  maectl rules apply -f high-cpu.yaml
  maectl rules apply -f high-cpu.yaml --id 0b6f...
  cat rule.json | maectl rules apply -f -`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readInput(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			var req apiclient.RuleRequest
			if err := decodeDocument(data, &req); err != nil {
				return err
			}
			if req.TenantID == "" {
				req.TenantID = tenantFlag()
			}
			if err := req.Condition.Validate(); err != nil {
				return err
			}

			c := newClient()
			var r *domain.AlertRule
			verb := "created"
			if id != "" {
				r, err = c.UpdateRule(cmd.Context(), id, &req)
				verb = "updated"
			} else {
				r, err = c.CreateRule(cmd.Context(), &req)
			}
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), r)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rule %s: %s (%s)\n", verb, r.Name, r.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "rule document (- for stdin)")
	cmd.Flags().StringVar(&id, "id", "", "replace this rule instead of creating one")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))
	return cmd
}

func ruleSetActiveCmd(verb, short string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:     verb + " <id>",
		Short:   short,
		Example: "  maectl rules " + verb + " 0b6f...",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().SetRuleActive(cmd.Context(), args[0], active); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rule %s %sd.\n", args[0], verb)
			return nil
		},
	}
}

func ruleDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a rule",
		Long:    "Soft-deletes a rule. Its alert history is kept.",
		Example: `  maectl rules delete 0b6f...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteRule(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rule %s deleted.\n", args[0])
			return nil
		},
	}
}

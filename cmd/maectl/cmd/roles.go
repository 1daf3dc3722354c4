package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

func rolesCmd() *cobra.Command {
	rolesRoot := &cobra.Command{
		Use:   "roles",
		Short: "Manage role members used by escalation steps",
		Long: "Escalation steps notify roles (tech, manager, ...). Members added here\n" +
			"are resolved per tenant when a step executes.",
	}

	rolesRoot.AddCommand(
		roleMembersCmd(),
		roleAddCmd(),
		roleRemoveCmd(),
	)

	return rolesRoot
}

func roleMembersCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "members <role>",
		Short:   "List the members of a role",
		Example: `  maectl roles members tech --tenant acme`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenant, err := requireTenant()
			if err != nil {
				return err
			}
			members, err := newClient().ListRoleMembers(cmd.Context(), tenant, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, members)
			}
			if len(members) == 0 {
				fmt.Fprintf(out, "Role %q has no members.\n", args[0])
				return nil
			}
			return printMemberTable(out, members)
		},
	}
}

func roleAddCmd() *cobra.Command {
	var m domain.RoleMember

	cmd := &cobra.Command{
		Use:   "add <role>",
		Short: "Add a member to a role",
		Example: `  maectl roles add tech --tenant acme --name "Ana" \
    --email ana@acme.example --phone +15550100 --realtime user:ana`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenant, err := requireTenant()
			if err != nil {
				return err
			}
			if m.Name == "" {
				return fmt.Errorf("--name is required")
			}
			if m.Email == "" && m.Phone == "" && m.RealtimeChannel == "" {
				return fmt.Errorf("at least one of --email, --phone or --realtime is required")
			}
			m.TenantID = tenant
			m.Role = args[0]

			created, err := newClient().AddRoleMember(cmd.Context(), &m)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s (%s)\n", created.Name, created.Role, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&m.Name, "name", "", "member name")
	cmd.Flags().StringVar(&m.Email, "email", "", "email address")
	cmd.Flags().StringVar(&m.Phone, "phone", "", "phone number for SMS")
	cmd.Flags().StringVar(&m.RealtimeChannel, "realtime", "", "realtime channel the member subscribes to")
	return cmd
}

func roleRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <role> <member-id>",
		Short:   "Remove a member from a role",
		Example: `  maectl roles remove tech 7f3a...`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().RemoveRoleMember(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Member %s removed from %s.\n", args[1], args[0])
			return nil
		},
	}
}

package cmd

import (
	"github.com/spf13/cobra"
)

func scanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Trigger an escalation scan on the server",
		Long: "Advances every active alert's escalation once, as the scheduler would.\n" +
			"Steps already claimed by another scan are not executed twice.",
		Example: `  maectl scan`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := newClient().RunEscalationScan(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			tw := newTabWriter(out)
			tw.writef("Alerts:\t%d\n", res.Alerts)
			tw.writef("Executed:\t%d\n", res.Executed)
			tw.writef("Waiting:\t%d\n", res.Waiting)
			tw.writef("Completed:\t%d\n", res.Completed)
			tw.writef("Cancelled:\t%d\n", res.Cancelled)
			tw.writef("Claims Lost:\t%d\n", res.ClaimsLost)
			tw.writef("Errors:\t%d\n", res.Errors)
			return tw.finish()
		},
	}
}

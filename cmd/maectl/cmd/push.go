package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/msp-alert-engine/internal/api/client"
)

func pushCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "push <device-id>",
		Short: "Send a metric sample batch for a device",
		Long: "Sends samples from a YAML or JSON document to the agent endpoint and\n" +
			"prints the alerts the batch raised. The document is either\n" +
			"{samples: [...]} or a bare list of samples.",
		Example: `  # batch.json: {"samples":[{"values":{"cpu_percent":95,"online":true}}]}
  maectl push D1 -f batch.json
  echo '[{"values":{"disk_free_gb":3}}]' | maectl push D1 -f -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			samples, err := decodeSamples(data)
			if err != nil {
				return err
			}

			res, err := newClient().PushMetrics(cmd.Context(), args[0], samples)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			return printIngestResult(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "sample document (- for stdin)")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))
	return cmd
}

func decodeSamples(data []byte) ([]apiclient.Sample, error) {
	var batch struct {
		Samples []apiclient.Sample `json:"samples"`
	}
	if err := decodeDocument(data, &batch); err == nil && len(batch.Samples) > 0 {
		return batch.Samples, nil
	}

	var list []apiclient.Sample
	if err := decodeDocument(data, &list); err != nil {
		return nil, fmt.Errorf("document is neither {samples: [...]} nor a list of samples: %w", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("document contains no samples")
	}
	return list, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/freedomikeppp/mitsubishi-fx5/internal/metrics"
)

func newReportCmd() *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize a CSV file produced by bench",
		Example: `  fx5ctl bench --host 192.168.1.10:2555 --device D500 --ops 200 --csv run.csv
  fx5ctl report --csv run.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if csvPath == "" {
				return missingFlagError(cmd, "--csv")
			}
			samples, err := metrics.ReadCSV(csvPath)
			if err != nil {
				return fmt.Errorf("read %s: %w", csvPath, err)
			}
			fmt.Fprintf(os.Stdout, "%d samples from %s\n\n", len(samples), csvPath)
			fmt.Fprint(os.Stdout, metrics.FormatSummary(metrics.Summarize(samples)))
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV file written by bench (required)")
	return cmd
}

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/freedomikeppp/mitsubishi-fx5/internal/tui"
)

func newUICmd(flags *rootFlags) *cobra.Command {
	var intervalMs int

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Interactive terminal dashboard for the controller",
		Long: `UI opens a full-screen dashboard that polls the configured devices and
shows their values live. Devices can be added, written, and removed from
inside the dashboard.`,
		Example: `  fx5ctl ui --host 192.168.1.10:2555
  fx5ctl ui --config fx5.yaml --interval 250`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, log, err := flags.clientFor()
			if err != nil {
				return err
			}
			defer log.Sync()
			defer client.Close()

			interval := time.Duration(cfg.Watch.IntervalMs) * time.Millisecond
			if intervalMs > 0 {
				interval = time.Duration(intervalMs) * time.Millisecond
			}
			return tui.Run(client, cfg.Devices, interval)
		},
	}

	cmd.Flags().IntVar(&intervalMs, "interval", 0, "Poll interval in milliseconds (default from config)")
	return cmd
}

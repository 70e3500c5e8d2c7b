package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/freedomikeppp/mitsubishi-fx5/internal/metrics"
)

type benchFlags struct {
	device     string
	ops        int
	intervalMs int
	write      string
	csvPath    string
	ascii      bool
}

func newBenchCmd(flags *rootFlags) *cobra.Command {
	bf := &benchFlags{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure request round-trip times against one device",
		Long: `Bench issues a fixed number of reads (or writes, with --write) against a
single device, records every round trip, and prints a latency summary.
Samples can be written to CSV for later analysis with "fx5ctl report".`,
		Example: `  fx5ctl bench --host 192.168.1.10:2555 --device D500 --ops 200
  fx5ctl bench --host 192.168.1.10:2555 --device M1600 --write 1 --csv run.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, log, err := flags.clientFor()
			if err != nil {
				return err
			}
			defer log.Sync()
			defer client.Close()

			device := bf.device
			if device == "" {
				device = cfg.Bench.Device
			}
			ops := bf.ops
			if ops <= 0 {
				ops = cfg.Bench.Operations
			}
			intervalMs := bf.intervalMs
			if intervalMs < 0 {
				intervalMs = cfg.Bench.IntervalMs
			}
			interval := time.Duration(intervalMs) * time.Millisecond

			runID := uuid.NewString()
			sink := metrics.NewSink()
			op := metrics.OperationRead
			if bf.write != "" {
				op = metrics.OperationWrite
			}

			fmt.Fprintf(os.Stdout, "run %s: %d %s ops against %s on %s\n",
				runID, ops, op, device, client.Host())

			for i := 0; i < ops; i++ {
				start := time.Now()
				var opErr error
				if bf.write != "" {
					opErr = client.Write(device, bf.write, bf.ascii)
				} else {
					_, opErr = client.Read(device, bf.ascii)
				}
				rtt := time.Since(start)

				sample := metrics.Sample{
					Timestamp: start,
					RunID:     runID,
					Host:      client.Host(),
					Device:    device,
					Operation: op,
					Success:   opErr == nil,
					RTTMs:     float64(rtt.Microseconds()) / 1000.0,
				}
				if opErr != nil {
					sample.Error = opErr.Error()
				}
				sink.Record(sample)

				if interval > 0 && i < ops-1 {
					time.Sleep(interval)
				}
			}

			summary := sink.GetSummary()
			fmt.Fprint(os.Stdout, metrics.FormatSummary(summary))

			if bf.csvPath != "" {
				if err := metrics.WriteCSV(bf.csvPath, sink.Samples()); err != nil {
					return fmt.Errorf("write csv: %w", err)
				}
				fmt.Fprintf(os.Stdout, "samples written to %s\n", bf.csvPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bf.device, "device", "", "Device address to exercise (default from config)")
	cmd.Flags().IntVar(&bf.ops, "ops", 0, "Number of operations (default from config)")
	cmd.Flags().IntVar(&bf.intervalMs, "interval", -1, "Delay between operations in milliseconds (default from config)")
	cmd.Flags().StringVar(&bf.write, "write", "", "Write this value instead of reading")
	cmd.Flags().StringVar(&bf.csvPath, "csv", "", "Write per-operation samples to this CSV file")
	cmd.Flags().BoolVar(&bf.ascii, "ascii", false, "Treat the value as ASCII text")
	return cmd
}

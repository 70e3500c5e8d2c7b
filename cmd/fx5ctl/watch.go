package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

type watchFlags struct {
	intervalMs int
	count      int
	ascii      bool
}

func newWatchCmd(flags *rootFlags) *cobra.Command {
	wf := &watchFlags{}

	cmd := &cobra.Command{
		Use:   "watch [device...]",
		Short: "Poll devices and print their values",
		Long: `Watch reads the given devices on a fixed interval and prints each value
with a timestamp. When no devices are given on the command line the device
list from the configuration file is used. Stop with Ctrl-C, or limit the
number of rounds with --count.`,
		Example: `  fx5ctl watch --host 192.168.1.10:2555 D500 M1600
  fx5ctl watch --config fx5.yaml --interval 1000 --count 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			client, cfg, log, err := flags.clientFor()
			if err != nil {
				return err
			}
			defer log.Sync()
			defer client.Close()

			devices := args
			asciiByAddr := map[string]bool{}
			if len(devices) == 0 {
				for _, d := range cfg.Devices {
					devices = append(devices, d.Address)
					asciiByAddr[d.Address] = d.ASCII
				}
			}
			if len(devices) == 0 {
				_ = cmd.Help()
				return fmt.Errorf("no devices given and none configured")
			}

			interval := time.Duration(wf.intervalMs) * time.Millisecond
			if wf.intervalMs <= 0 {
				interval = time.Duration(cfg.Watch.IntervalMs) * time.Millisecond
			}

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sig)

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			round := 0
			for {
				stamp := time.Now().Format("15:04:05.000")
				for _, addr := range devices {
					ascii := wf.ascii || asciiByAddr[addr]
					v, err := client.Read(addr, ascii)
					if err != nil {
						fmt.Fprintf(os.Stdout, "%s  %-8s  error: %v\n", stamp, addr, err)
						continue
					}
					fmt.Fprintf(os.Stdout, "%s  %-8s  %s\n", stamp, addr, v.String())
				}
				round++
				if wf.count > 0 && round >= wf.count {
					return nil
				}
				select {
				case <-sig:
					return nil
				case <-ticker.C:
				}
			}
		},
	}

	cmd.Flags().IntVar(&wf.intervalMs, "interval", 0, "Poll interval in milliseconds (default from config)")
	cmd.Flags().IntVar(&wf.count, "count", 0, "Number of rounds to run (0 = until interrupted)")
	cmd.Flags().BoolVar(&wf.ascii, "ascii", false, "Decode word devices as ASCII text")
	return cmd
}

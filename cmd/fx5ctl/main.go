package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "fx5ctl",
		Short: "SLMP client for Mitsubishi FX5 controllers",
		Long: `fx5ctl reads and writes bit (M) and word (D) devices on Mitsubishi FX5
controllers over the SLMP protocol, one device point per exchange.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.host, "host", "", "Controller endpoint as ip:port (e.g. 192.168.1.10:2555)")
	pf.StringVar(&flags.configPath, "config", "", "Path to fx5.yaml")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: error, warn, info, debug")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format: text or json")
	pf.StringVar(&flags.logFile, "log-file", "", "Also write logs to this file")

	rootCmd.AddCommand(newReadCmd(flags))
	rootCmd.AddCommand(newWriteCmd(flags))
	rootCmd.AddCommand(newExecCmd(flags))
	rootCmd.AddCommand(newPingCmd(flags))
	rootCmd.AddCommand(newWatchCmd(flags))
	rootCmd.AddCommand(newBenchCmd(flags))
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newPcapCmd())
	rootCmd.AddCommand(newUICmd(flags))
	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "Usage:\n  %s <command> [arguments] [options]\n\n", cmd.Name())
		fmt.Fprintf(os.Stdout, "Available Commands:\n")
		for _, subCmd := range cmd.Commands() {
			if !subCmd.Hidden {
				fmt.Fprintf(os.Stdout, "  %-10s %s\n", subCmd.Name(), subCmd.Short)
			}
		}
		fmt.Fprintf(os.Stdout, "\nUse \"%s help <command>\" for more information about a command.\n", cmd.Name())
	})

	return rootCmd
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newWriteCmd(flags *rootFlags) *cobra.Command {
	var ascii bool

	cmd := &cobra.Command{
		Use:   "write <device> <value>",
		Short: "Write one device",
		Example: `  # Set a data register and an internal relay
  fx5ctl write --host 192.168.1.10:2555 D500 30
  fx5ctl write --host 192.168.1.10:2555 M1600 1

  # Store two ASCII characters in a register
  fx5ctl write --host 192.168.1.10:2555 --ascii D600 OK`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			client, _, log, err := flags.clientFor()
			if err != nil {
				return err
			}
			defer log.Sync()
			defer client.Close()

			if err := client.Write(args[0], args[1], ascii); err != nil {
				return presentError(err, client.Host())
			}
			fmt.Fprintf(os.Stdout, "%s = %s\n", args[0], args[1])
			return nil
		},
	}

	cmd.Flags().BoolVar(&ascii, "ascii", false, "Encode the value as ASCII text")
	return cmd
}

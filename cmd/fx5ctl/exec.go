package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExecCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <commands>",
		Short: "Run a comma-separated batch of writes",
		Long: `Exec runs a batch of device writes in one connection. The argument is a
comma-separated list of device=value assignments, applied left to right.
The batch stops at the first failure.`,
		Example: `  fx5ctl exec --host 192.168.1.10:2555 "D500=30,M1600=1,M1601=0"`,
		Args:    cobra.ExactArgs(1),
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

			if err := client.Exec(args[0]); err != nil {
				return presentError(err, client.Host())
			}
			fmt.Fprintln(os.Stdout, "ok")
			return nil
		},
	}
	return cmd
}

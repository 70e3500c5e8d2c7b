package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newPingCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check whether the controller accepts a connection",
		Long: `Ping opens a TCP connection to the controller and reports the result.
The exit status is 0 when the controller is reachable and 1 when it is not.`,
		Example: `  fx5ctl ping --host 192.168.1.10:2555`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, log, err := flags.clientFor()
			if err != nil {
				return err
			}
			defer log.Sync()
			defer client.Close()

			if !client.Probe() {
				fmt.Fprintln(os.Stdout, client.String())
				return fmt.Errorf("%s is not reachable", client.Host())
			}
			fmt.Fprintln(os.Stdout, client.String())
			return nil
		},
	}
	return cmd
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	uferrors "github.com/freedomikeppp/mitsubishi-fx5/internal/errors"
	"github.com/freedomikeppp/mitsubishi-fx5/internal/fx5"
)

func newReadCmd(flags *rootFlags) *cobra.Command {
	var ascii bool

	cmd := &cobra.Command{
		Use:   "read <device>...",
		Short: "Read one or more devices",
		Example: `  # Read a data register and an internal relay
  fx5ctl read --host 192.168.1.10:2555 D500 M1600

  # Read a register holding two ASCII characters
  fx5ctl read --host 192.168.1.10:2555 --ascii D600`,
		Args: cobra.MinimumNArgs(1),
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

			for _, addr := range args {
				v, err := client.Read(addr, ascii)
				if err != nil {
					return presentError(err, client.Host())
				}
				fmt.Fprintf(os.Stdout, "%s = %s\n", addr, v)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&ascii, "ascii", false, "Decode word devices as ASCII text")
	return cmd
}

// presentError dresses transport failures up for the terminal; everything
// else passes through untouched.
func presentError(err error, host string) error {
	var cerr *fx5.ConnectionError
	if errors.As(err, &cerr) {
		return uferrors.WrapConnectionError(err, host)
	}
	return err
}

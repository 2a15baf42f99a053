package cmd

import (
	"fmt"

	"toolkit/core/iprange"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// inrangeCmd checks IP range membership.
var inrangeCmd = &cobra.Command{
	Use:   "inrange [address] [lower-upper | lower upper]",
	Short: "Check whether an address lies within an inclusive range",
	Example: `  toolkit inrange 10.1.5.20 10.1.0.0-10.1.255.255
  toolkit inrange 2001:db8::5 2001:db8:: 2001:db8::ff`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		addr, err := iprange.Parse(args[0])
		if err != nil {
			return err
		}

		var ok bool
		if len(args) == 2 {
			var r iprange.Range
			if r, err = iprange.ParseRange(args[1]); err != nil {
				return err
			}
			ok, err = r.Contains(addr)
		} else {
			lower, perr := iprange.Parse(args[1])
			if perr != nil {
				return perr
			}
			upper, perr := iprange.Parse(args[2])
			if perr != nil {
				return perr
			}
			ok, err = iprange.InRange(addr, lower, upper)
		}
		if err != nil {
			return err
		}

		s.log.Debug("Range checked", zap.Stringer("address", addr), zap.Strings("range", args[1:]), zap.Bool("contains", ok))
		fmt.Fprintln(cmd.OutOrStdout(), ok)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(inrangeCmd)
}

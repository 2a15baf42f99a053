package cmd

import (
	"fmt"

	"toolkit/core/radix"
	"toolkit/core/utils"

	"github.com/spf13/cobra"
)

var baseRadix int

// baseCmd is the parent command for radix conversions.
var baseCmd = &cobra.Command{
	Use:   "base",
	Short: "Convert integers to and from bases 2 through 36",
}

var baseEncodeCmd = &cobra.Command{
	Use:   "encode [value]",
	Short: "Encode a non-negative decimal integer in the given base",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := utils.ToInt64(args[0])
		if err != nil {
			return err
		}
		out, err := radix.Encode(n, baseRadix)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var baseDecodeCmd = &cobra.Command{
	Use:   "decode [digits]",
	Short: "Decode digits in the given base to a decimal integer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := radix.Decode(args[0], baseRadix)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), n)
		return nil
	},
}

func init() {
	baseCmd.PersistentFlags().IntVarP(&baseRadix, "radix", "r", radix.MaxRadix, "base between 2 and 36")
	baseCmd.AddCommand(baseEncodeCmd, baseDecodeCmd)
	RootCmd.AddCommand(baseCmd)
}

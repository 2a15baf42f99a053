package cmd

import (
	"fmt"

	"toolkit/core/bytesize"
	"toolkit/core/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sizeCmd renders byte counts in human-readable units.
var sizeCmd = &cobra.Command{
	Use:   "size [bytes...]",
	Short: "Render byte counts as human-readable sizes",
	Long: `Renders each byte count with two decimals in the largest unit that keeps
the value at or above one, using the configured locale for digit grouping.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		tag, err := s.cfg.Format.Language()
		if err != nil {
			return err
		}

		for _, arg := range args {
			n, err := utils.ToInt64(arg)
			if err != nil {
				return err
			}
			s.log.Debug("Formatting size", zap.Int64("bytes", n))
			fmt.Fprintln(cmd.OutOrStdout(), bytesize.Format(n, tag))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(sizeCmd)
}

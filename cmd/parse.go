package cmd

import (
	"fmt"
	"time"

	"toolkit/core/utils"

	"github.com/spf13/cobra"
)

var parseSQL bool

// parseCmd is the parent command for single value parsing.
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a single value and print its normalized form",
}

var parseBoolCmd = &cobra.Command{
	Use:   "bool [token]",
	Short: "Parse true/t/1 or false/f/0/empty, case-insensitively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := utils.ParseBool(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), b)
		return nil
	},
}

var parseGUIDCmd = &cobra.Command{
	Use:   "guid [text]",
	Short: "Parse a GUID and print it in canonical form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := utils.ParseGUID(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), id.String())
		return nil
	},
}

var parseIntCmd = &cobra.Command{
	Use:   "int [text]",
	Short: "Parse a base 10 integer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := utils.ToInt64(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), n)
		return nil
	},
}

var parseTimeCmd = &cobra.Command{
	Use:   "time [text]",
	Short: "Parse a date using the configured layout and zone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		f, err := s.cfg.Format.DateFormat()
		if err != nil {
			return err
		}
		t, err := utils.ToTime(args[0], f)
		if err != nil {
			return err
		}

		if parseSQL {
			fmt.Fprintln(cmd.OutOrStdout(), utils.SQLTimeLiteral(t))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), utils.FormatTime(t, time.RFC3339))
		return nil
	},
}

func init() {
	parseTimeCmd.Flags().BoolVar(&parseSQL, "sql", false, "print as a quoted SQL literal")
	parseCmd.AddCommand(parseBoolCmd, parseGUIDCmd, parseIntCmd, parseTimeCmd)
	RootCmd.AddCommand(parseCmd)
}

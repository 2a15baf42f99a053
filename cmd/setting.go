package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// settingCmd is the parent command for the key/value settings store.
var settingCmd = &cobra.Command{
	Use:   "setting",
	Short: "Read and write named settings",
	Long: `Reads and writes the settings store in the configured settings directory.
Values come from settings.yaml, .env and TOOLKIT_ prefixed environment
variables; set writes settings.yaml.`,
}

var settingGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print the value of a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		store, err := s.settings()
		if err != nil {
			return err
		}
		v, ok := store.Get(args[0])
		if !ok {
			return fmt.Errorf("setting %q is not set", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

var settingSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Store a setting in settings.yaml",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		store, err := s.settings()
		if err != nil {
			return err
		}
		store.Set(args[0], args[1])
		if err := store.Save(); err != nil {
			return err
		}
		s.log.Info("Setting saved", zap.String("key", args[0]))
		return nil
	},
}

var settingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List setting keys known from settings.yaml and .env",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		store, err := s.settings()
		if err != nil {
			return err
		}
		keys := store.Keys()
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
		return nil
	},
}

func init() {
	settingCmd.AddCommand(settingGetCmd, settingSetCmd, settingListCmd)
	RootCmd.AddCommand(settingCmd)
}

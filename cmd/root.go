package cmd

import (
	"fmt"
	"os"

	"toolkit/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir is the directory LoadConfig reads .env from.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "toolkit",
	Short: "Value transformation toolkit",
	Long: `Toolkit parses, formats and converts values: byte sizes, integers in any
base from 2 to 36, IP range membership, booleans, GUIDs, dates and whole
documents between XML, JSON, YAML and a binary envelope.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug config for readable timestamps on a terminal
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "directory holding the .env configuration")
}

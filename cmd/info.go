package cmd

import (
	"fmt"

	"toolkit/core/buildinfo"

	"github.com/spf13/cobra"
)

// infoCmd prints process metadata.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print version, build number and directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		version := buildinfo.Version()
		build, err := buildinfo.BuildNumber(version)
		if err != nil {
			return err
		}
		exeDir, err := buildinfo.ExecutableDir()
		if err != nil {
			return err
		}
		baseDir, err := buildinfo.BaseDir()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Version:        %s\n", version)
		fmt.Fprintf(out, "Build:          %s\n", build)
		fmt.Fprintf(out, "Executable Dir: %s\n", exeDir)
		fmt.Fprintf(out, "Base Dir:       %s\n", baseDir)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(infoCmd)
}

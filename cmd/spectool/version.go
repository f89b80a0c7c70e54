package main

import (
	"fmt"

	"github.com/servo/spectool/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of spectool",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "spectool %s\n", version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

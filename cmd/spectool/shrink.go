package main

import (
	"os"

	"github.com/servo/spectool/internal/shrink"
	"github.com/spf13/cobra"
)

var shrinkCmd = &cobra.Command{
	Use:   "shrink-test-output -- <command> [args...]",
	Short: "Run a command, condensing go test -v result lines to single characters",
	Long: `Runs the given command and streams its stdout, rewriting each per-test
result line to a single progress character (. pass, F fail, I skip). All
other output passes through unchanged, and the exit code is the child's.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := shrink.Run(cmd.Context(), args, os.Stdout, os.Stderr)
		if err != nil {
			return err
		}
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shrinkCmd)
}

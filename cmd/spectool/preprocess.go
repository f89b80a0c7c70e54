package main

import (
	"github.com/servo/spectool/internal/fixtures"
	"github.com/spf13/cobra"
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess-tests <src-dir> <dst-dir>",
	Short: "Reserialize tokenizer test fixtures without unicode escapes",
	Long: `Rewrites every *.test fixture from the subdirectory of <src-dir> named
after <dst-dir>'s base name into <dst-dir>, re-encoding the JSON without
\uXXXX escapes.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg)

		n, err := fixtures.Reserialize(args[0], args[1], log)
		if err != nil {
			return err
		}
		log.Info("fixtures reserialized", "count", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(preprocessCmd)
}

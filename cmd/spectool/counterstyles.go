package main

import (
	"github.com/servo/spectool/internal/counterstyles"
	"github.com/servo/spectool/internal/fetch"
	"github.com/spf13/cobra"
)

var counterStylesOut string

var counterStylesCmd = &cobra.Command{
	Use:   "update-counter-styles",
	Short: "Regenerate predefined_counter_styles.txt from the CSS Counter Styles draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if counterStylesOut != "" {
			cfg.CounterStylesOut = counterStylesOut
		}
		log := newLogger(cfg)

		client := fetch.NewClient(cfg.HTTPTimeout, log)
		u := counterstyles.NewUpdater(client, log)
		return u.Update(cmd.Context(), cfg.CounterStylesURL, cfg.CounterStylesOut)
	},
}

func init() {
	counterStylesCmd.Flags().StringVar(&counterStylesOut, "out", "", "Output file (default $SPECTOOL_COUNTER_STYLES_OUT or predefined_counter_styles.txt)")
	rootCmd.AddCommand(counterStylesCmd)
}

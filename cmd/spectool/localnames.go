package main

import (
	"github.com/servo/spectool/internal/anchors"
	"github.com/servo/spectool/internal/fetch"
	"github.com/spf13/cobra"
)

var anchorsDir string

var localNamesCmd = &cobra.Command{
	Use:   "update-local-names",
	Short: "Regenerate local_names.txt from the CSSWG Shepherd anchors API",
	Long: `Fetches the Shepherd anchors dataset (cached as anchors.json in the target
directory; delete the cache to re-download) and distills the element and
attribute names into local_names.txt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if anchorsDir != "" {
			cfg.AnchorsDir = anchorsDir
		}
		log := newLogger(cfg)

		client := fetch.NewClient(cfg.HTTPTimeout, log)
		u := anchors.NewUpdater(client, log)
		return u.Update(cmd.Context(), cfg.AnchorsURL, cfg.AnchorsDir)
	},
}

func init() {
	localNamesCmd.Flags().StringVar(&anchorsDir, "dir", "", "Directory for anchors.json and local_names.txt (default $SPECTOOL_ANCHORS_DIR or .)")
	rootCmd.AddCommand(localNamesCmd)
}

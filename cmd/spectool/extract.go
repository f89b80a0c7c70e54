package main

import (
	"github.com/servo/spectool/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	specFile  string
	section   string
	statesOut string
	graphOut  string
	statesPkg string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the tokenizer state machine from the spec document",
	Long: `Extract locates the Tokenization section of the spec document, catalogs
the states it defines, scans the prose for transition references, and writes
the transition digraph (and optionally the state enum source).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if specFile != "" {
			cfg.SpecFile = specFile
		}
		if section != "" {
			cfg.Section = section
		}
		if cmd.Flags().Changed("states-out") {
			cfg.StatesOut = statesOut
		}
		if graphOut != "" {
			cfg.GraphOut = graphOut
		}
		if statesPkg != "" {
			cfg.StatesPackage = statesPkg
		}
		log := newLogger(cfg)

		runner := pipeline.NewRunner(cfg, log)
		res, err := runner.Run(cmd.Context(), cfg.SpecFile)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		FormatSummary(out, res.Summary.States, res.Summary.Edges)
		if cfg.GraphOut != "" {
			if err := runner.WriteGraph(res, cfg.GraphOut); err != nil {
				return err
			}
			FormatArtifact(out, "graph", cfg.GraphOut)
		}
		if cfg.StatesOut != "" {
			if err := runner.WriteStates(res, cfg.StatesOut); err != nil {
				return err
			}
			FormatArtifact(out, "states", cfg.StatesOut)
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&specFile, "spec", "", "Spec document to extract from (default $SPECTOOL_SPEC_FILE or webapps.html)")
	extractCmd.Flags().StringVar(&section, "section", "", "Anchor heading text of the section to extract")
	extractCmd.Flags().StringVar(&statesOut, "states-out", "", "Write the state enum source here (empty = skip)")
	extractCmd.Flags().StringVar(&graphOut, "graph-out", "", "Write the transition digraph here")
	extractCmd.Flags().StringVar(&statesPkg, "pkg", "", "Package name for the generated enum source")
	rootCmd.AddCommand(extractCmd)
}

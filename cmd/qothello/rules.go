package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-othello/internal/config"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the resolved match config",
	Long: `Loads the match config the same way play does (--config, then
~/.qothello/configs/match.yaml, then ./configs/match.yaml, then the
built-in defaults), applies --preset and prints the result as YAML.

Examples:
  qothello rules
  qothello rules --preset chaos > match.yaml`,
	Args: cobra.NoArgs,
	Run:  runRules,
}

func runRules(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig, flagPreset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# %d pieces per player, pass policy %s\n", cfg.PiecesPerPlayer(), cfg.PassPolicy)
	os.Stdout.Write(out)
}

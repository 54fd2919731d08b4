// qothello is quantum Othello for the terminal: every piece carries a
// probability of keeping its owner's color when placed.
//
// Usage:
//
//	qothello list               - List available variants
//	qothello play [variant]     - Play a variant (hot seat)
//	qothello play --plain       - Play on plain stdin/stdout
//	qothello menu               - Pick variants from a menu
//	qothello serve              - Start SSH server for remote play
//	qothello rules              - Print the resolved match config
//
// Global flags:
//
//	--seed <value>       - Set resolver seed for reproducible matches
//	--config <path>      - Match config YAML
//	--preset <name>      - Tier preset: quantum, classic, chaos
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-othello/internal/config"
	"github.com/vovakirdan/quantum-othello/internal/core"
	"github.com/vovakirdan/quantum-othello/internal/games/qothello"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagPreset   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "qothello",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "qothello",
	Short: "Quantum Othello - Othello with probabilistic pieces",
	Long: `Quantum Othello is Othello where every piece has a probability tier.
When a piece is placed it keeps its owner's color with that probability,
otherwise it lands as the opponent's color and captures for them.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  rules    - Print the resolved match config

Examples:
  qothello list
  qothello play
  qothello play chaos --seed 42
  qothello play --plain < moves.txt
  qothello serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)

		if _, err := config.ParsePreset(flagPreset); err != nil {
			return err
		}
		qothello.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "UI tick rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Resolver seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to match config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Tier preset: quantum, classic, chaos")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(rulesCmd)
}

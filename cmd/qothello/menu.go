package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-othello/internal/games/qothello"
	"github.com/vovakirdan/quantum-othello/internal/platform/tui"
	"github.com/vovakirdan/quantum-othello/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Press B or Esc in a match to return to the menu.

Examples:
  qothello menu
  qothello menu --config ./match.yaml`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := terminalConfig()
	status := ""

	for {
		menuResult, err := tui.RunMenu(cfg, status)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config
		if menuResult.Quit || menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed per match unless one was fixed
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		result, err := tui.Run(game, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}

		status = ""
		if result.State.GameOver {
			status = qothello.DescribeResult(game.Match().Result())
		}
		if !result.BackToMenu {
			break
		}
	}
}

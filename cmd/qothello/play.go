package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quantum-othello/internal/config"
	"github.com/vovakirdan/quantum-othello/internal/core"
	"github.com/vovakirdan/quantum-othello/internal/platform/console"
	"github.com/vovakirdan/quantum-othello/internal/platform/tui"
	"github.com/vovakirdan/quantum-othello/internal/registry"
)

var flagPlain bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start a hot-seat match: both players share the keyboard.

Controls:
  Arrows/hjkl    - Move the cursor
  Tab/t          - Next probability tier (Shift+Tab/T: previous)
  Enter/Space    - Place a piece
  P              - Pass (only when no placement is possible, unless
                   pass_policy is free)
  R              - New match (after game over)
  ?              - Toggle full help
  Q/Ctrl+C       - Quit

With --plain the match runs on stdin/stdout instead; enter moves as
"row,col,tier" (e.g. 2,3,90) or "d3 90", and "pass" to pass.

Examples:
  qothello play
  qothello play classic
  qothello play --preset chaos --seed 7
  qothello play --plain --config ./match.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Line-based console mode on stdin/stdout")
}

// variantArg picks the variant from the argument, then --preset.
func variantArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	preset, _ := config.ParsePreset(flagPreset)
	return string(preset)
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, args []string) {
	variant := variantArg(args)

	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'qothello list' to see available variants.")
		os.Exit(1)
	}

	if flagPlain {
		if err := runPlain(variant); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	game, err := registry.Create(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	result, err := tui.Run(game, terminalConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	if result.State.GameOver {
		res := game.Match().Result()
		logger.Info("match finished", "variant", variant,
			"outcome", res.Outcome.String(), "black", res.Black, "white", res.White)
	}
}

// runPlain plays one match on stdin/stdout.
func runPlain(variant string) error {
	cfg, err := config.Load(flagConfig, variant)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("plain match", "variant", variant, "seed", seed, "pieces", cfg.PiecesPerPlayer())

	session, err := console.New(os.Stdin, os.Stdout, cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := session.Run(ctx)
	if errors.Is(err, console.ErrAborted) || errors.Is(err, context.Canceled) {
		logger.Info("match abandoned", "variant", variant, "moves", len(session.Match().History()))
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("match finished", "variant", variant,
		"outcome", res.Outcome.String(), "black", res.Black, "white", res.White)
	return nil
}

// Package qothello is the playable quantum Othello game: it owns the cursor
// and tier selection, turns platform actions into engine calls and renders
// the match into a core.Screen.
package qothello

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/quantum-othello/internal/config"
	"github.com/vovakirdan/quantum-othello/internal/core"
	"github.com/vovakirdan/quantum-othello/internal/othello"
	"github.com/vovakirdan/quantum-othello/internal/registry"
)

// Package-level variables for config
var (
	configPath string
)

// SetConfigPath sets the YAML file variants load on Reset. Empty means the
// default search order.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements registry.Game for one preset.
type Game struct {
	preset config.Preset
	cfg    config.MatchConfig
	rng    *rand.Rand
	match  othello.Match
	tick   uint64

	cursor  othello.Coord
	tierIdx int

	message    string
	msgColor   core.Color
	flashTicks int
	tickRate   int

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game for the given preset.
func New(preset config.Preset) *Game {
	return &Game{preset: preset}
}

func init() {
	for _, p := range config.Presets() {
		p := p
		registry.Register(string(p), func() registry.Game {
			return New(p)
		})
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return string(g.preset)
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.preset {
	case config.PresetClassic:
		return "Othello (Classic)"
	case config.PresetChaos:
		return "Quantum Othello (Chaos)"
	default:
		return "Quantum Othello"
	}
}

// Description returns a one-line summary of the variant.
func (g *Game) Description() string {
	return g.preset.Description()
}

// Reset starts a new match.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.cursor = othello.Coord{Row: 2, Col: 3}
	g.tierIdx = 0
	g.flashTicks = 0
	g.setMessage("Black to move", core.ColorDefault)

	g.cfg = g.loadConfig()
	match, err := othello.StartMatch(g.cfg.Rules())
	if err != nil {
		// loadConfig only returns validated configs; keep a playable match anyway.
		g.cfg = config.DefaultMatchConfig()
		match, _ = othello.StartMatch(g.cfg.Rules())
		g.setMessage(err.Error(), core.ColorError)
	}
	g.match = match

	g.checkScreenSize()
}

// loadConfig reads the YAML configuration and applies the preset's tiers.
func (g *Game) loadConfig() config.MatchConfig {
	cfg, err := config.LoadMatch(configPath)
	if err != nil {
		cfg = config.DefaultMatchConfig()
		g.setMessage(err.Error(), core.ColorError)
	}
	config.ApplyPreset(&cfg, g.preset)
	return cfg
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < MinWidth || g.screenH < MinHeight
}

// Resize updates the screen size without restarting the match.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

func (g *Game) setMessage(msg string, c core.Color) {
	g.message = msg
	g.msgColor = c
}

// Step applies the actions collected since the previous tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.match.Terminal() {
		if in.Has(core.ActionRestart) {
			g.restart()
			return core.StepResult{State: g.State(), Event: "new match"}
		}
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	switch {
	case in.Has(core.ActionNextTier):
		g.cycleTier(1)
	case in.Has(core.ActionPrevTier):
		g.cycleTier(-1)
	}

	var event string
	switch {
	case in.Has(core.ActionPlace):
		event = g.place()
	case in.Has(core.ActionPass):
		event = g.pass()
	}

	return core.StepResult{State: g.State(), Event: event}
}

func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Wrap(g.cursor.Row-1, othello.BoardSize)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Wrap(g.cursor.Row+1, othello.BoardSize)
	}
	switch {
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Wrap(g.cursor.Col-1, othello.BoardSize)
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Wrap(g.cursor.Col+1, othello.BoardSize)
	}
}

func (g *Game) cycleTier(delta int) {
	tiers := g.match.AvailableTiers()
	if len(tiers) == 0 {
		return
	}
	g.tierIdx = core.Wrap(g.selectedIndex()+delta, len(tiers))
}

// selectedIndex clamps the tier cursor to the current player's tiers.
func (g *Game) selectedIndex() int {
	tiers := g.match.AvailableTiers()
	if len(tiers) == 0 {
		return 0
	}
	return core.Clamp(g.tierIdx, 0, len(tiers)-1)
}

// SelectedTier returns the tier the next placement will use.
func (g *Game) SelectedTier() (othello.Tier, bool) {
	tiers := g.match.AvailableTiers()
	if len(tiers) == 0 {
		return 0, false
	}
	return tiers[g.selectedIndex()], true
}

// place attempts a placement at the cursor with the selected tier.
func (g *Game) place() string {
	player := g.match.Current()
	if g.match.MustPass() {
		g.setMessage(fmt.Sprintf("%s cannot place a piece: press P to pass", player), core.ColorError)
		return ""
	}

	tier, _ := g.SelectedTier()
	next, err := g.match.Move(g.cursor, tier, g.rng)
	if err != nil {
		g.setMessage(describeError(err, g.cursor, tier), core.ColorError)
		return ""
	}
	g.match = next
	g.tierIdx = core.Clamp(g.tierIdx, 0, max(len(g.match.AvailableTiers())-1, 0))

	history := g.match.History()
	rec := history[len(history)-1]
	summary := DescribeRecord(rec)
	color := core.ColorSuccess
	if rec.Color != rec.Player {
		color = core.ColorError
	}
	g.setMessage(summary, color)
	g.flashTicks = g.tickRate
	g.announceEnd()
	return summary
}

// pass records a pass for the current player, subject to the pass policy.
func (g *Game) pass() string {
	player := g.match.Current()
	if !g.cfg.FreePass() && !g.match.MustPass() {
		g.setMessage(fmt.Sprintf("%s still has a legal placement", player), core.ColorError)
		return ""
	}

	next, err := g.match.Pass()
	if err != nil {
		g.setMessage(err.Error(), core.ColorError)
		return ""
	}
	g.match = next
	summary := fmt.Sprintf("%s passes", player)
	g.setMessage(summary, core.ColorAccent)
	g.announceEnd()
	return summary
}

func (g *Game) announceEnd() {
	if !g.match.Terminal() {
		return
	}
	g.setMessage(DescribeResult(g.match.Result()), core.ColorAccent)
}

// restart begins a new match with a fresh seed, keeping screen settings.
func (g *Game) restart() {
	g.Reset(core.RuntimeConfig{
		ScreenW:  g.screenW,
		ScreenH:  g.screenH,
		TickRate: g.tickRate,
		Seed:     g.rng.Int63(),
	})
}

// State returns the platform summary of the match.
func (g *Game) State() core.GameState {
	black, white := g.match.Score()
	turn := ""
	if !g.match.Terminal() {
		turn = g.match.Current().String()
	}
	return core.GameState{
		Black:    black,
		White:    white,
		Turn:     turn,
		GameOver: g.match.Terminal(),
	}
}

// Match returns the engine state.
func (g *Game) Match() othello.Match {
	return g.match
}

// describeError turns engine errors into a status line.
func describeError(err error, c othello.Coord, t othello.Tier) string {
	switch {
	case errors.Is(err, othello.ErrInvalidCell):
		return fmt.Sprintf("%s is not a legal move", c.Notation())
	case errors.Is(err, othello.ErrTierUnavailable):
		return fmt.Sprintf("no %s pieces left", t)
	case errors.Is(err, othello.ErrTerminal):
		return "the match is over"
	default:
		return err.Error()
	}
}

// DescribeRecord renders one history entry as a sentence.
func DescribeRecord(rec othello.Record) string {
	if rec.Pass {
		return fmt.Sprintf("%s passed", rec.Player)
	}
	verdict := "kept"
	if rec.Color != rec.Player {
		verdict = "turned " + rec.Color.String()
	}
	return fmt.Sprintf("%s %s at %s: rolled %d, %s, flipped %d",
		rec.Player, rec.Tier, rec.Coord.Notation(), rec.Roll, verdict, len(rec.Flipped))
}

// DescribeResult renders a terminal result.
func DescribeResult(r othello.Result) string {
	return fmt.Sprintf("Game over (%s): %s %d-%d", r.Reason, r.Outcome, r.Black, r.White)
}

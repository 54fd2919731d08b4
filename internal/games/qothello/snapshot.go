package qothello

import "github.com/vovakirdan/quantum-othello/internal/othello"

// Snapshot captures the complete game state for determinism tests and replay.
type Snapshot struct {
	Tick    uint64
	Variant string
	Board   othello.Board
	Turn    othello.Player
	Phase   string
	Black   int
	White   int
	Passes  int
	Moves   int // history entries, passes included
	Cursor  othello.Coord
	Tier    othello.Tier // selected tier, 0 when none is left
	Message string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	black, white := g.match.Score()
	tier, _ := g.SelectedTier()
	return Snapshot{
		Tick:    g.tick,
		Variant: g.ID(),
		Board:   g.match.Board(),
		Turn:    g.match.Current(),
		Phase:   g.match.Phase().String(),
		Black:   black,
		White:   white,
		Passes:  g.match.Passes(),
		Moves:   len(g.match.History()),
		Cursor:  g.cursor,
		Tier:    tier,
		Message: g.message,
	}
}

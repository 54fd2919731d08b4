package othello

import "fmt"

// Tier is a declared success probability expressed as a whole percentage.
type Tier int

// String renders the tier as a percentage.
func (t Tier) String() string {
	return fmt.Sprintf("%d%%", int(t))
}

// Valid reports whether the tier lies in [0, 100].
func (t Tier) Valid() bool {
	return t >= 0 && t <= 100
}

// RandomSource supplies uniform integers in [0, n). *math/rand.Rand
// satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Resolution is the outcome of one draw.
type Resolution struct {
	Roll  int  // 1..100
	Color Cell // color the piece actually takes
}

// Success reports whether the piece kept the acting player's color.
func (r Resolution) Success(actor Player) bool {
	return r.Color == actor
}

// Resolve draws a roll in 1..100 from src. A roll at or below the tier keeps
// the actor's color; any higher roll yields the opponent's color. Tier 100
// therefore always succeeds and tier 0 always fails.
func Resolve(t Tier, actor Player, src RandomSource) Resolution {
	roll := src.Intn(100) + 1
	if roll <= int(t) {
		return Resolution{Roll: roll, Color: actor}
	}
	return Resolution{Roll: roll, Color: actor.Opponent()}
}

// FixedRoll is a RandomSource that replays a fixed sequence of rolls
// (each in 1..100), cycling when exhausted. Intended for tests and replays.
type FixedRoll struct {
	Rolls []int
	next  int
}

// NewFixedRoll creates a source replaying the given rolls.
func NewFixedRoll(rolls ...int) *FixedRoll {
	return &FixedRoll{Rolls: rolls}
}

// Intn returns the next roll minus one, reduced modulo n.
func (f *FixedRoll) Intn(n int) int {
	if len(f.Rolls) == 0 {
		return 0
	}
	r := f.Rolls[f.next%len(f.Rolls)]
	f.next++
	v := (r - 1) % n
	if v < 0 {
		v += n
	}
	return v
}

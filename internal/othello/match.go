package othello

import (
	"fmt"
	"slices"
)

// Stock is the number of pieces a player holds at one tier.
type Stock struct {
	Tier  Tier
	Count int
}

// Inventory lists a player's remaining pieces per tier, in configured order.
type Inventory []Stock

// Count returns the remaining pieces at tier t.
func (inv Inventory) Count(t Tier) int {
	for _, s := range inv {
		if s.Tier == t {
			return s.Count
		}
	}
	return 0
}

// Available returns the tiers with at least one piece left, in order.
func (inv Inventory) Available() []Tier {
	var tiers []Tier
	for _, s := range inv {
		if s.Count > 0 {
			tiers = append(tiers, s.Tier)
		}
	}
	return tiers
}

// Total returns the number of pieces left across all tiers.
func (inv Inventory) Total() int {
	total := 0
	for _, s := range inv {
		total += s.Count
	}
	return total
}

// take returns a copy with one piece removed from tier t.
func (inv Inventory) take(t Tier) Inventory {
	next := slices.Clone(inv)
	for i := range next {
		if next[i].Tier == t && next[i].Count > 0 {
			next[i].Count--
			break
		}
	}
	return next
}

// Config describes the pieces each player starts with.
type Config struct {
	Stock []Stock
}

// DefaultConfig returns two pieces at each of 90%, 80%, 70% and 60%.
func DefaultConfig() Config {
	return Config{
		Stock: []Stock{
			{Tier: 90, Count: 2},
			{Tier: 80, Count: 2},
			{Tier: 70, Count: 2},
			{Tier: 60, Count: 2},
		},
	}
}

// Validate checks that tiers are in range and unique and counts are
// non-negative.
func (c Config) Validate() error {
	if len(c.Stock) == 0 {
		return fmt.Errorf("%w: no tiers configured", ErrInvalidConfig)
	}
	seen := make(map[Tier]bool, len(c.Stock))
	for _, s := range c.Stock {
		if !s.Tier.Valid() {
			return fmt.Errorf("%w: tier %d out of range 0..100", ErrInvalidConfig, int(s.Tier))
		}
		if seen[s.Tier] {
			return fmt.Errorf("%w: duplicate tier %s", ErrInvalidConfig, s.Tier)
		}
		if s.Count < 0 {
			return fmt.Errorf("%w: negative count for tier %s", ErrInvalidConfig, s.Tier)
		}
		seen[s.Tier] = true
	}
	return nil
}

// Outcome is the final verdict of a match.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeBlackWins
	OutcomeWhiteWins
	OutcomeDraw
)

// String returns a human-readable outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeBlackWins:
		return "Black wins"
	case OutcomeWhiteWins:
		return "White wins"
	case OutcomeDraw:
		return "Draw"
	default:
		return "In progress"
	}
}

// EndReason records why a match terminated.
type EndReason int

const (
	EndNone EndReason = iota
	EndBoardFull
	EndDoublePass
)

// String returns a human-readable reason.
func (r EndReason) String() string {
	switch r {
	case EndBoardFull:
		return "board full"
	case EndDoublePass:
		return "both players passed"
	default:
		return ""
	}
}

// Result is the final score of a terminal match.
type Result struct {
	Outcome Outcome
	Reason  EndReason
	Black   int
	White   int
}

// Phase is the controller state.
type Phase int

const (
	PhaseAwaitingMove Phase = iota
	PhaseForcedPass
	PhaseTerminal
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingMove:
		return "awaiting_move"
	case PhaseForcedPass:
		return "forced_pass"
	case PhaseTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Record is one history entry. Pass entries only carry Player.
type Record struct {
	Player  Player
	Pass    bool
	Coord   Coord
	Tier    Tier
	Roll    int
	Color   Cell
	Flipped []Coord
}

// Match is the complete state of one game. It is a value: Move and Pass
// return a new Match and leave the receiver unchanged, including on error.
// A single Match must not be advanced from several goroutines at once.
type Match struct {
	board       Board
	current     Player
	inventories [2]Inventory
	passes      int
	history     []Record
	terminal    bool
	result      Result
}

// StartMatch creates a match at the opening position with Black to move and
// full inventories for both players.
func StartMatch(cfg Config) (Match, error) {
	if err := cfg.Validate(); err != nil {
		return Match{}, err
	}
	stock := Inventory(slices.Clone(cfg.Stock))
	return Match{
		board:       NewBoard(),
		current:     Black,
		inventories: [2]Inventory{stock, slices.Clone(stock)},
	}, nil
}

func playerIndex(p Player) int {
	if p == White {
		return 1
	}
	return 0
}

// clone returns a copy that shares nothing mutable with m.
func (m Match) clone() Match {
	next := m
	next.inventories = [2]Inventory{
		slices.Clone(m.inventories[0]),
		slices.Clone(m.inventories[1]),
	}
	next.history = slices.Clone(m.history)
	return next
}

// Board returns a copy of the board.
func (m Match) Board() Board { return m.board }

// Cell returns the content of one square.
func (m Match) Cell(c Coord) Cell { return m.board.At(c) }

// Current returns the player to act.
func (m Match) Current() Player { return m.current }

// Passes returns the consecutive pass counter.
func (m Match) Passes() int { return m.passes }

// Terminal reports whether the match is over.
func (m Match) Terminal() bool { return m.terminal }

// Result returns the final result; Outcome is OutcomeNone until terminal.
func (m Match) Result() Result { return m.result }

// Inventory returns a snapshot of p's remaining pieces.
func (m Match) Inventory(p Player) Inventory {
	return slices.Clone(m.inventories[playerIndex(p)])
}

// History returns a snapshot of the move log.
func (m Match) History() []Record {
	return slices.Clone(m.history)
}

// Score returns the current piece counts.
func (m Match) Score() (black, white int) {
	return CountPieces(m.board)
}

// LegalMoves returns the legal cells for the player to act.
func (m Match) LegalMoves() []Coord {
	if m.terminal {
		return nil
	}
	return LegalMoves(m.board, m.current)
}

// AvailableTiers returns the current player's tiers with pieces left.
func (m Match) AvailableTiers() []Tier {
	return m.inventories[playerIndex(m.current)].Available()
}

// CanPlace reports whether the current player has both a legal cell and a
// usable tier.
func (m Match) CanPlace() bool {
	if m.terminal {
		return false
	}
	return len(m.AvailableTiers()) > 0 && len(m.LegalMoves()) > 0
}

// MustPass reports whether the current player is blocked from placing.
func (m Match) MustPass() bool {
	return !m.terminal && !m.CanPlace()
}

// Phase returns the controller state.
func (m Match) Phase() Phase {
	switch {
	case m.terminal:
		return PhaseTerminal
	case !m.CanPlace():
		return PhaseForcedPass
	default:
		return PhaseAwaitingMove
	}
}

// Move places a piece of tier t at c for the current player. The tier's
// success probability is resolved against src, the board is updated with the
// resolved color, one piece is removed from the tier and the turn passes to
// the opponent. On error the returned Match equals the receiver.
func (m Match) Move(c Coord, t Tier, src RandomSource) (Match, error) {
	if m.terminal {
		return m, fmt.Errorf("move %s: %w", c, ErrTerminal)
	}
	if !IsLegal(m.board, c, m.current) {
		return m, fmt.Errorf("move %s for %s: %w", c, m.current, ErrInvalidCell)
	}
	idx := playerIndex(m.current)
	if m.inventories[idx].Count(t) == 0 {
		return m, fmt.Errorf("move %s with tier %s: %w", c, t, ErrTierUnavailable)
	}

	res := Resolve(t, m.current, src)
	board, flipped, err := ApplyMove(m.board, c, res.Color)
	if err != nil {
		return m, err
	}

	next := m.clone()
	next.board = board
	next.inventories[idx] = next.inventories[idx].take(t)
	next.passes = 0
	next.history = append(next.history, Record{
		Player:  m.current,
		Coord:   c,
		Tier:    t,
		Roll:    res.Roll,
		Color:   res.Color,
		Flipped: flipped,
	})

	if IsFull(board) {
		next.finish(EndBoardFull)
		return next, nil
	}
	next.current = m.current.Opponent()
	return next, nil
}

// Pass records a pass for the current player. Two consecutive passes end
// the match. Passing while a placement is possible is not rejected here;
// callers decide whether to offer it.
func (m Match) Pass() (Match, error) {
	if m.terminal {
		return m, fmt.Errorf("pass: %w", ErrTerminal)
	}

	next := m.clone()
	next.passes++
	next.history = append(next.history, Record{Player: m.current, Pass: true})

	if next.passes >= 2 {
		next.finish(EndDoublePass)
		return next, nil
	}
	next.current = m.current.Opponent()
	return next, nil
}

// finish marks the match terminal and scores it.
func (m *Match) finish(reason EndReason) {
	black, white := CountPieces(m.board)
	outcome := OutcomeDraw
	switch {
	case black > white:
		outcome = OutcomeBlackWins
	case white > black:
		outcome = OutcomeWhiteWins
	}
	m.terminal = true
	m.result = Result{Outcome: outcome, Reason: reason, Black: black, White: white}
}

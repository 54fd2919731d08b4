// Package console runs a match as a line-oriented dialogue on plain
// streams, for terminals without cursor control and for scripted games.
//
// Each turn the board is printed and the player to move enters one of:
//
//	row,col,tier   zero-indexed row and column, tier in percent ("2,3,90")
//	d3 [tier]      board notation, tier defaults to the first one left
//	pass           give up the turn
//	help           list the commands
//	quit           abandon the match
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/quantum-othello/internal/config"
	"github.com/vovakirdan/quantum-othello/internal/othello"
)

// ErrAborted is returned when the player quits or the input ends before the
// match is over.
var ErrAborted = errors.New("console: match aborted")

// Session is one console match.
type Session struct {
	in    *bufio.Scanner
	out   io.Writer
	cfg   config.MatchConfig
	src   othello.RandomSource
	match othello.Match
}

// New creates a session reading commands from r and writing to w.
func New(r io.Reader, w io.Writer, cfg config.MatchConfig, src othello.RandomSource) (*Session, error) {
	match, err := othello.StartMatch(cfg.Rules())
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}
	return &Session{
		in:    bufio.NewScanner(r),
		out:   w,
		cfg:   cfg,
		src:   src,
		match: match,
	}, nil
}

// Match returns the current match state.
func (s *Session) Match() othello.Match {
	return s.match
}

// Run plays until the match ends, the player quits, the input runs out or
// ctx is cancelled. It returns the final result when the match finished.
func (s *Session) Run(ctx context.Context) (othello.Result, error) {
	for !s.match.Terminal() {
		if err := ctx.Err(); err != nil {
			return othello.Result{}, err
		}

		s.printBoard()
		s.printPrompt()

		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return othello.Result{}, fmt.Errorf("console: read input: %w", err)
			}
			fmt.Fprintln(s.out)
			return othello.Result{}, ErrAborted
		}

		quit, err := s.handle(s.in.Text())
		if quit {
			return othello.Result{}, ErrAborted
		}
		if err != nil {
			fmt.Fprintf(s.out, "! %v\n", err)
		}
	}

	s.printBoard()
	res := s.match.Result()
	fmt.Fprintf(s.out, "Game over (%s): %s, Black %d - White %d\n", res.Reason, res.Outcome, res.Black, res.White)
	return res, nil
}

// handle executes one input line. It reports whether the player quit.
func (s *Session) handle(line string) (bool, error) {
	line = strings.TrimSpace(strings.ToLower(line))
	player := s.match.Current()

	switch line {
	case "":
		return false, nil
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		s.printHelp()
		return false, nil
	case "pass", "p":
		if !s.cfg.FreePass() && !s.match.MustPass() {
			return false, fmt.Errorf("%s still has a legal placement", player)
		}
		next, err := s.match.Pass()
		if err != nil {
			return false, err
		}
		s.match = next
		fmt.Fprintf(s.out, "%s passes.\n", player)
		return false, nil
	}

	if s.match.MustPass() {
		return false, fmt.Errorf("%s cannot place a piece, enter pass", player)
	}

	coord, tier, err := s.parseMove(line)
	if err != nil {
		return false, err
	}

	next, err := s.match.Move(coord, tier, s.src)
	if err != nil {
		return false, err
	}
	s.match = next

	history := next.History()
	s.printRecord(history[len(history)-1])
	return false, nil
}

// parseMove reads "row,col,tier", "row,col", "d3 tier" or "d3".
func (s *Session) parseMove(line string) (othello.Coord, othello.Tier, error) {
	var coordText, tierText string
	if parts := strings.Split(line, ","); len(parts) == 3 {
		coordText = parts[0] + "," + parts[1]
		tierText = parts[2]
	} else {
		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			coordText = fields[0]
		case 2:
			coordText, tierText = fields[0], fields[1]
		default:
			return othello.Coord{}, 0, fmt.Errorf("cannot read %q, type help", line)
		}
	}

	coord, err := othello.ParseCoord(coordText)
	if err != nil {
		return othello.Coord{}, 0, err
	}

	if tierText == "" {
		tiers := s.match.AvailableTiers()
		if len(tiers) == 0 {
			return othello.Coord{}, 0, othello.ErrTierUnavailable
		}
		return coord, tiers[0], nil
	}

	tier, err := othello.ParseTier(tierText)
	if err != nil {
		return othello.Coord{}, 0, err
	}
	return coord, tier, nil
}

func (s *Session) printBoard() {
	board := s.match.Board()
	legal := make(map[othello.Coord]bool)
	if s.match.CanPlace() {
		for _, c := range s.match.LegalMoves() {
			legal[c] = true
		}
	}

	var b strings.Builder
	b.WriteString("\n   a b c d e f g h\n")
	for row := 0; row < othello.BoardSize; row++ {
		fmt.Fprintf(&b, "%d ", row+1)
		for col := 0; col < othello.BoardSize; col++ {
			c := othello.Coord{Row: row, Col: col}
			b.WriteByte(' ')
			b.WriteRune(cellRune(board.At(c), legal[c]))
		}
		b.WriteByte('\n')
	}
	black, white := s.match.Score()
	fmt.Fprintf(&b, "Black (X) %d  White (O) %d\n", black, white)
	io.WriteString(s.out, b.String())
}

func cellRune(c othello.Cell, hint bool) rune {
	switch c {
	case othello.Black:
		return 'X'
	case othello.White:
		return 'O'
	}
	if hint {
		return '*'
	}
	return '.'
}

func (s *Session) printPrompt() {
	player := s.match.Current()
	stock := make([]string, 0, len(s.match.Inventory(player)))
	for _, st := range s.match.Inventory(player) {
		stock = append(stock, fmt.Sprintf("%sx%d", st.Tier, st.Count))
	}

	if s.match.MustPass() {
		fmt.Fprintf(s.out, "%s has no placement and must pass [%s]\n", player, strings.Join(stock, " "))
	}
	fmt.Fprintf(s.out, "%s [%s] > ", player, strings.Join(stock, " "))
}

func (s *Session) printRecord(rec othello.Record) {
	verdict := "stays " + rec.Color.String()
	if rec.Color != rec.Player {
		verdict = "collapses to " + rec.Color.String()
	}
	fmt.Fprintf(s.out, "%s plays %s at %s: rolled %d, %s, %d flipped.\n",
		rec.Player, rec.Tier, rec.Coord.Notation(), rec.Roll, verdict, len(rec.Flipped))
}

func (s *Session) printHelp() {
	io.WriteString(s.out, `Commands:
  row,col,tier   place at a zero-indexed cell, e.g. 2,3,90
  d3 [tier]      place using board notation, first tier left if omitted
  pass           pass the turn
  quit           abandon the match
`)
}

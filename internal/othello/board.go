// Package othello implements the rules engine for quantum Othello: board
// storage, legal-move enumeration, captures, the probabilistic color
// resolver and the match controller. It contains no external dependencies
// and performs no I/O so it can be driven from any presentation layer.
package othello

import "fmt"

// BoardSize is the board dimension.
const BoardSize = 8

// Cell is the content of a single board square.
type Cell int8

const (
	Empty Cell = iota
	Black
	White
)

// Player identifies one side. Only Black and White are valid players.
type Player = Cell

// String returns a human-readable name for the cell.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Unknown"
	}
}

// Opponent returns the opposing color. Empty maps to Empty.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// Coord addresses a square by zero-indexed row and column.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// InBounds reports whether the coordinate lies on the board.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// Step returns the neighbouring coordinate in the given direction.
func (c Coord) Step(d Direction) Coord {
	return Coord{Row: c.Row + d.DR, Col: c.Col + d.DC}
}

// Direction is a unit step on the board.
type Direction struct {
	DR, DC int
}

// Directions lists the eight compass directions.
var Directions = [8]Direction{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// Board is an 8x8 grid of cells. It is a value type: assigning or passing a
// Board copies it, so engine functions never alias a caller's board.
type Board [BoardSize][BoardSize]Cell

// NewBoard returns the canonical opening position.
func NewBoard() Board {
	var b Board
	mid := BoardSize / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black
	return b
}

// At returns the cell at c, or Empty when c is off the board.
func (b Board) At(c Coord) Cell {
	if !c.InBounds() {
		return Empty
	}
	return b[c.Row][c.Col]
}

// CaptureRun returns the opponent pieces that a piece of color p placed at c
// would capture in direction d. The run is empty when the first neighbour is
// not an opponent piece or when the run is not closed by a piece of color p.
func CaptureRun(b Board, c Coord, d Direction, p Player) []Coord {
	opp := p.Opponent()
	if opp == Empty {
		return nil
	}

	var run []Coord
	cur := c.Step(d)
	for cur.InBounds() && b[cur.Row][cur.Col] == opp {
		run = append(run, cur)
		cur = cur.Step(d)
	}

	if len(run) == 0 || !cur.InBounds() || b[cur.Row][cur.Col] != p {
		return nil
	}
	return run
}

// IsLegal reports whether p may place a piece at c.
func IsLegal(b Board, c Coord, p Player) bool {
	if !c.InBounds() || b[c.Row][c.Col] != Empty {
		return false
	}
	for _, d := range Directions {
		if len(CaptureRun(b, c, d, p)) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal placement for p in row-major order.
func LegalMoves(b Board, p Player) []Coord {
	var moves []Coord
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			c := Coord{Row: row, Col: col}
			if IsLegal(b, c, p) {
				moves = append(moves, c)
			}
		}
	}
	return moves
}

// ApplyMove places a piece of the given color at c and flips every captured
// run. Runs are computed against the board as it was before placement.
// Returns the new board and the flipped cells; the input board is untouched.
func ApplyMove(b Board, c Coord, color Cell) (Board, []Coord, error) {
	if !c.InBounds() {
		return b, nil, fmt.Errorf("%w: %s is off the board", ErrInvalidMove, c)
	}
	if b[c.Row][c.Col] != Empty {
		return b, nil, fmt.Errorf("%w: %s is occupied", ErrInvalidMove, c)
	}
	if color != Black && color != White {
		return b, nil, fmt.Errorf("%w: cannot place %s", ErrInvalidMove, color)
	}

	var flipped []Coord
	for _, d := range Directions {
		flipped = append(flipped, CaptureRun(b, c, d, color)...)
	}

	next := b
	next[c.Row][c.Col] = color
	for _, f := range flipped {
		next[f.Row][f.Col] = color
	}
	return next, flipped, nil
}

// CountPieces tallies black and white pieces.
func CountPieces(b Board) (black, white int) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch b[row][col] {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	return black, white
}

// IsFull reports whether no empty square remains.
func IsFull(b Board) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == Empty {
				return false
			}
		}
	}
	return true
}

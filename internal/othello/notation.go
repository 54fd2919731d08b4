package othello

import (
	"fmt"
	"strconv"
	"strings"
)

// Notation renders the coordinate in board notation: column letter a-h
// followed by row number 1-8, so Coord{2, 3} is "d3".
func (c Coord) Notation() string {
	if !c.InBounds() {
		return c.String()
	}
	return fmt.Sprintf("%c%d", 'a'+c.Col, c.Row+1)
}

// ParseCoord accepts either board notation ("d3") or a zero-indexed
// "row,col" pair ("2,3").
func ParseCoord(s string) (Coord, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if row, col, ok := strings.Cut(s, ","); ok {
		r, err := strconv.Atoi(strings.TrimSpace(row))
		if err != nil {
			return Coord{}, fmt.Errorf("bad row %q: %w", row, err)
		}
		c, err := strconv.Atoi(strings.TrimSpace(col))
		if err != nil {
			return Coord{}, fmt.Errorf("bad column %q: %w", col, err)
		}
		coord := Coord{Row: r, Col: c}
		if !coord.InBounds() {
			return Coord{}, fmt.Errorf("%s is off the board", coord)
		}
		return coord, nil
	}

	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Coord{}, fmt.Errorf("bad coordinate %q (want a1..h8 or row,col)", s)
	}
	return Coord{Row: int(s[1] - '1'), Col: int(s[0] - 'a')}, nil
}

// ParseTier accepts "80", "80%" or "0.8".
func ParseTier(s string) (Tier, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("bad tier %q: %w", s, err)
		}
		t := Tier(f*100 + 0.5)
		if f < 0 || !t.Valid() {
			return 0, fmt.Errorf("tier %q out of range", s)
		}
		return t, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad tier %q: %w", s, err)
	}
	t := Tier(n)
	if !t.Valid() {
		return 0, fmt.Errorf("tier %q out of range", s)
	}
	return t, nil
}

package core

// Color is the foreground color of a screen cell. The platform layer maps
// each value to a terminal style.
type Color uint8

// Palette used by the board renderer.
const (
	ColorDefault Color = iota
	ColorFrame
	ColorBlackPiece
	ColorWhitePiece
	ColorHint
	ColorCursor
	ColorAccent
	ColorSuccess
	ColorError
	ColorDim
)

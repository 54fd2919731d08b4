package othello

import "errors"

var (
	ErrInvalidCell     = errors.New("cell is not a legal move")
	ErrTierUnavailable = errors.New("tier unavailable")
	ErrTerminal        = errors.New("match is over")
	ErrInvalidMove     = errors.New("invalid move")
	ErrInvalidConfig   = errors.New("invalid configuration")
)

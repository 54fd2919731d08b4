package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/quantum-othello/internal/config"
	"github.com/vovakirdan/quantum-othello/internal/othello"
)

func classicConfig() config.MatchConfig {
	cfg := config.DefaultMatchConfig()
	config.ApplyPreset(&cfg, config.PresetClassic)
	return cfg
}

func play(t *testing.T, cfg config.MatchConfig, input string, rolls ...int) (*Session, othello.Result, string, error) {
	t.Helper()
	var out bytes.Buffer
	s, err := New(strings.NewReader(input), &out, cfg, othello.NewFixedRoll(rolls...))
	require.NoError(t, err)
	res, err := s.Run(context.Background())
	return s, res, out.String(), err
}

func TestSessionTranscript(t *testing.T) {
	input := strings.Join([]string{
		"d3",       // Black, first tier
		"2,2,100",  // White c3
		"pass",     // refused: Black can still place
		"zz",       // unreadable
		"quit",
	}, "\n")

	s, _, out, err := play(t, classicConfig(), input, 50)
	require.True(t, errors.Is(err, ErrAborted))

	require.Contains(t, out, "   a b c d e f g h")
	require.Contains(t, out, "Black plays 100% at d3: rolled 50, stays Black, 1 flipped.")
	require.Contains(t, out, "White plays 100% at c3: rolled 50, stays White, 1 flipped.")
	require.Contains(t, out, "! Black still has a legal placement")
	require.Contains(t, out, `! bad coordinate "zz"`)

	m := s.Match()
	require.Len(t, m.History(), 2)
	require.Equal(t, othello.Black, m.Current())
	black, white := m.Score()
	require.Equal(t, 3, black)
	require.Equal(t, 3, white)
}

func TestSessionQuantumCollapse(t *testing.T) {
	s, _, out, err := play(t, config.DefaultMatchConfig(), "2,3,60\n", 61)
	require.True(t, errors.Is(err, ErrAborted), "input ends mid match")

	require.Contains(t, out, "Black plays 60% at d3: rolled 61, collapses to White, 0 flipped.")
	require.Equal(t, othello.White, s.Match().Cell(othello.Coord{Row: 2, Col: 3}))
	require.Equal(t, 1, s.Match().Inventory(othello.Black).Count(60))
}

func TestSessionEngineErrors(t *testing.T) {
	_, _, out, err := play(t, config.DefaultMatchConfig(), "a1 90\nd3 55\nd3 1.5\n", 1)
	require.True(t, errors.Is(err, ErrAborted))

	require.Contains(t, out, "is not a legal move")
	require.Contains(t, out, "tier unavailable")
	require.Contains(t, out, "out of range")
}

func TestSessionDoublePassFinishes(t *testing.T) {
	cfg := config.DefaultMatchConfig()
	cfg.PassPolicy = config.PassFree

	_, res, out, err := play(t, cfg, "pass\npass\n")
	require.NoError(t, err)

	require.Equal(t, othello.OutcomeDraw, res.Outcome)
	require.Equal(t, othello.EndDoublePass, res.Reason)
	require.Contains(t, out, "Black passes.")
	require.Contains(t, out, "White passes.")
	require.Contains(t, out, "Game over (both players passed): Draw, Black 2 - White 2")
}

func TestSessionForcedPass(t *testing.T) {
	cfg := config.MatchConfig{
		Tiers:      []config.TierConfig{{Percent: 100, Count: 1}},
		PassPolicy: config.PassForced,
	}

	_, res, out, err := play(t, cfg, "d3\nc3\nd6\npass\npass\n", 1)
	require.NoError(t, err)

	require.Contains(t, out, "Black has no placement and must pass")
	require.Contains(t, out, "! Black cannot place a piece, enter pass")
	require.Equal(t, othello.EndDoublePass, res.Reason)
}

func TestSessionHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := New(strings.NewReader("d3\n"), &bytes.Buffer{}, config.DefaultMatchConfig(), othello.NewFixedRoll(1))
	require.NoError(t, err)

	_, err = s.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(strings.NewReader(""), &bytes.Buffer{}, config.MatchConfig{}, othello.NewFixedRoll(1))
	require.ErrorIs(t, err, othello.ErrInvalidConfig)
}

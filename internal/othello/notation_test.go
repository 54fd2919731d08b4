package othello

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotation(t *testing.T) {
	require.Equal(t, "d3", Coord{2, 3}.Notation())
	require.Equal(t, "a1", Coord{0, 0}.Notation())
	require.Equal(t, "h8", Coord{7, 7}.Notation())
	require.Equal(t, "(9,0)", Coord{9, 0}.Notation())
}

func TestParseCoord(t *testing.T) {
	tests := []struct {
		in      string
		want    Coord
		wantErr bool
	}{
		{in: "d3", want: Coord{2, 3}},
		{in: " H8 ", want: Coord{7, 7}},
		{in: "2,3", want: Coord{2, 3}},
		{in: "2, 3", want: Coord{2, 3}},
		{in: "8,0", wantErr: true},
		{in: "x,1", wantErr: true},
		{in: "i1", wantErr: true},
		{in: "a9", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCoord(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		in      string
		want    Tier
		wantErr bool
	}{
		{in: "80", want: 80},
		{in: "80%", want: 80},
		{in: "0.7", want: 70},
		{in: "1.0", want: 100},
		{in: "0.0", want: 0},
		{in: "101", wantErr: true},
		{in: "1.5", wantErr: true},
		{in: "-0.5", wantErr: true},
		{in: "high", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTier(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

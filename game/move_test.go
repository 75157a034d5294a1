package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	t.Run("parsing well-formed input", func(t *testing.T) {
		move, err := ParseMove("3 b", 5)

		require.NoError(t, err)
		require.Equal(t, Move{Row: 2, Col: 1}, move)
	})

	t.Run("tolerating extra whitespace", func(t *testing.T) {
		move, err := ParseMove("  1   a ", 2)

		require.NoError(t, err)
		require.Equal(t, Move{Row: 0, Col: 0}, move)
	})

	t.Run("rejecting junk", func(t *testing.T) {
		for _, input := range []string{"", "3", "b 3 x", "x b", "3 bb"} {
			_, err := ParseMove(input, 5)
			require.ErrorIs(t, err, ErrMalformedMove, "input %q should not parse", input)
		}
	})

	t.Run("rejecting out-of-range coordinates", func(t *testing.T) {
		for _, input := range []string{"0 a", "6 a", "1 f", "1 A"} {
			_, err := ParseMove(input, 5)
			require.ErrorIs(t, err, ErrMalformedMove, "input %q should be out of range", input)
		}
	})
}

func TestMoveString(t *testing.T) {
	require.Equal(t, "3 b", Move{Row: 2, Col: 1}.String())
	require.Equal(t, "1 a", Move{}.String())
	require.Equal(t, "-", NoMove.String())
}

func TestCellState(t *testing.T) {
	require.Equal(t, ".", Empty.String())
	require.Equal(t, "B", Blue.String())
	require.Equal(t, "R", Red.String())

	require.Equal(t, Red, Blue.Opponent())
	require.Equal(t, Blue, Red.Opponent())
	require.Equal(t, Empty, Empty.Opponent())
}

package agent

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hex/game"
	"hex/searcher"
)

func TestHumanPlayerChooseMove(t *testing.T) {
	t.Run("accepting a well-formed move", func(t *testing.T) {
		board, err := game.NewBoard(3)
		require.NoError(t, err)
		var out bytes.Buffer
		p := NewHumanPlayer(strings.NewReader("2 b\n"), &out)

		move, err := p.ChooseMove(board, game.Blue)

		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 1, Col: 1}, move)
		require.Contains(t, out.String(), "Enter the row as a number")
	})

	t.Run("re-prompting until the input is playable", func(t *testing.T) {
		board, err := game.NewBoard(3)
		require.NoError(t, err)
		require.NoError(t, board.MakeMove(0, 0, game.Red))
		var out bytes.Buffer
		p := NewHumanPlayer(strings.NewReader("garbage\n9 z\n1 a\n3 c\n"), &out)

		move, err := p.ChooseMove(board, game.Blue)

		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 2, Col: 2}, move, "The first playable input should win")
		require.Contains(t, out.String(), "Invalid input! Try again.")
		require.Contains(t, out.String(), "Invalid move! Try again.")
	})

	t.Run("surfacing exhausted input", func(t *testing.T) {
		board, err := game.NewBoard(3)
		require.NoError(t, err)
		p := NewHumanPlayer(strings.NewReader(""), io.Discard)

		_, err = p.ChooseMove(board, game.Blue)

		require.ErrorIs(t, err, io.EOF)
	})
}

func TestMCTSPlayerChooseMove(t *testing.T) {
	t.Run("returning a playable move", func(t *testing.T) {
		board, err := game.NewBoard(3)
		require.NoError(t, err)
		p := NewMCTSPlayer(searcher.DefaultExploration, 100*time.Millisecond, false, false)

		move, err := p.ChooseMove(board, game.Blue)

		require.NoError(t, err)
		require.True(t, board.IsValidMove(move.Row, move.Col))
	})

	t.Run("rejecting a parallel verbose robot", func(t *testing.T) {
		board, err := game.NewBoard(3)
		require.NoError(t, err)
		p := NewMCTSPlayer(searcher.DefaultExploration, 100*time.Millisecond, true, true)

		_, err = p.ChooseMove(board, game.Blue)

		require.ErrorIs(t, err, searcher.ErrIncompatibleConfig)
	})
}

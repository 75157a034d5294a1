package engine

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"hex/agent"
	"hex/game"
)

// Engine drives a local game of Hex between two players on one board. Blue
// always opens.
type Engine struct {
	board   *game.Board
	players [2]agent.Player
	out     io.Writer
}

func NewLocal(board *game.Board, blue, red agent.Player, out io.Writer) *Engine {
	if blue == nil || red == nil {
		panic("engine needs both players")
	}
	return &Engine{board: board, players: [2]agent.Player{blue, red}, out: out}
}

// Run alternates turns until the board has a winner, then announces and
// returns it. The engine owns all board mutation: players only ever see the
// board to read it.
func (e *Engine) Run() (game.CellState, error) {
	sides := [2]game.CellState{game.Blue, game.Red}
	current := 0

	log.Info().Msgf("player %s is starting", sides[current])
	for e.board.Winner() == game.Empty {
		side := sides[current]
		fmt.Fprintf(e.out, "\nPlayer %s's turn:\n", side)
		e.board.Render(e.out)

		move, err := e.players[current].ChooseMove(e.board, side)
		if err != nil {
			return game.Empty, fmt.Errorf("player %s could not choose a move: %w", side, err)
		}
		fmt.Fprintf(e.out, "\nPlayer %s chose move: %s\n", side, move)

		if err := e.board.MakeMove(move.Row, move.Col, side); err != nil {
			return game.Empty, fmt.Errorf("player %s returned an unplayable move %s: %w", side, move, err)
		}
		log.Info().Msgf("player %s played %s", side, move)

		current = 1 - current
	}

	winner := e.board.Winner()
	e.board.Render(e.out)
	fmt.Fprintf(e.out, "Player %s wins!\n", winner)
	return winner, nil
}

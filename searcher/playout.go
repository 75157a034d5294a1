package searcher

import (
	"fmt"

	"golang.org/x/exp/rand"

	"hex/game"
	"hex/logger"
)

// simulateRandomPlayout plays the node's move on the given board, then
// completes the game with uniformly random moves, alternating players until
// one of them connects. It returns the winner. The board is mutated, so
// callers pass a private copy; rng is per caller, never shared.
//
// The moves played are always drawn from ValidMoves, so a move failure here
// is a programming error, not a game state.
func simulateRandomPlayout(n *node, board *game.Board, rng *rand.Rand, log *logger.Logger) game.CellState {
	current := n.player
	if err := board.MakeMove(n.move.Row, n.move.Col, current); err != nil {
		panic(fmt.Sprintf("playout from unplayable node %v: %v", n.move, err))
	}
	log.SimulationStart(n.move, board)

	for board.Winner() == game.Empty {
		current = current.Opponent()
		moves := board.ValidMoves()
		move := moves[rng.Intn(len(moves))]
		log.SimulationStep(current, board, move)
		if err := board.MakeMove(move.Row, move.Col, current); err != nil {
			panic(fmt.Sprintf("playout picked unplayable move %v: %v", move, err))
		}
		if board.Winner() != game.Empty {
			log.SimulationEnd(current, board)
			break
		}
	}

	return current
}

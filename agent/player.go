package agent

import "hex/game"

// Player is anything that can pick a move for a side on the current board:
// a human at the console or the search robot. Implementations must return a
// move that satisfies IsValidMove on the supplied board, or an error.
type Player interface {
	ChooseMove(board *game.Board, side game.CellState) (game.Move, error)
}

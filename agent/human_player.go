package agent

import (
	"bufio"
	"fmt"
	"io"

	"hex/game"
)

// HumanPlayer reads moves in the form "<row> <column letter>" (row
// 1-indexed, column letter from 'a') and re-prompts until the input names an
// empty cell on the board.
type HumanPlayer struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHumanPlayer(in io.Reader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{in: bufio.NewScanner(in), out: out}
}

// NewHumanPlayerFromScanner shares an existing scanner, so a menu and the
// move input can read from the same stream without stealing each other's
// buffered lines.
func NewHumanPlayerFromScanner(in *bufio.Scanner, out io.Writer) *HumanPlayer {
	return &HumanPlayer{in: in, out: out}
}

func (p *HumanPlayer) ChooseMove(board *game.Board, side game.CellState) (game.Move, error) {
	for {
		fmt.Fprint(p.out, "Enter the row as a number and the column as a letter separated by space: ")
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return game.NoMove, fmt.Errorf("reading move: %w", err)
			}
			return game.NoMove, fmt.Errorf("reading move: %w", io.EOF)
		}

		move, err := game.ParseMove(p.in.Text(), board.Size())
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input! Try again.")
			continue
		}
		if !board.IsValidMove(move.Row, move.Col) {
			fmt.Fprintln(p.out, "Invalid move! Try again.")
			continue
		}
		return move, nil
	}
}

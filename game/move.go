package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedMove = errors.New("malformed move")

// Move is a zero-indexed board coordinate.
type Move struct {
	Row int
	Col int
}

// NoMove is the sentinel coordinate carried by the search tree root.
var NoMove = Move{Row: -1, Col: -1}

// String renders the move in the human input form: 1-indexed row followed by
// the column letter, e.g. "3 b".
func (m Move) String() string {
	if m == NoMove {
		return "-"
	}
	return fmt.Sprintf("%d %c", m.Row+1, 'a'+rune(m.Col))
}

// ParseMove parses the human input form "<row> <column letter>" where the
// row is 1-indexed and the column letter starts at 'a'. The result is
// zero-indexed and within bounds for the given board size; occupancy is not
// checked here.
func ParseMove(input string, size int) (Move, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return NoMove, fmt.Errorf("%w: expected \"<row> <column letter>\", got %q", ErrMalformedMove, input)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return NoMove, fmt.Errorf("%w: row %q is not a number", ErrMalformedMove, fields[0])
	}
	if row < 1 || row > size {
		return NoMove, fmt.Errorf("%w: row %d is outside 1..%d", ErrMalformedMove, row, size)
	}

	if len(fields[1]) != 1 {
		return NoMove, fmt.Errorf("%w: column %q is not a single letter", ErrMalformedMove, fields[1])
	}
	col := int(fields[1][0] - 'a')
	if col < 0 || col >= size {
		return NoMove, fmt.Errorf("%w: column %q is outside a..%c", ErrMalformedMove, fields[1], 'a'+rune(size-1))
	}

	return Move{Row: row - 1, Col: col}, nil
}

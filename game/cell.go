package game

// CellState is the content of a single cell on the Hex board. Blue owns the
// top and bottom edges, Red owns the left and right edges.
type CellState uint8

const (
	Empty CellState = iota
	Blue
	Red
)

func (c CellState) String() string {
	switch c {
	case Blue:
		return "B"
	case Red:
		return "R"
	default:
		return "."
	}
}

// Opponent returns the other player. Empty has no opponent and maps to
// itself.
func (c CellState) Opponent() CellState {
	switch c {
	case Blue:
		return Red
	case Red:
		return Blue
	default:
		return Empty
	}
}

package agent

import (
	"time"

	"hex/game"
	"hex/searcher"
)

// MCTSPlayer is the search robot. It builds a fresh searcher for every
// decision, so no tree carries over between moves.
type MCTSPlayer struct {
	Exploration  float64
	DecisionTime time.Duration
	Parallel     bool
	Verbose      bool
}

func NewMCTSPlayer(exploration float64, decisionTime time.Duration, parallel, verbose bool) *MCTSPlayer {
	return &MCTSPlayer{
		Exploration:  exploration,
		DecisionTime: decisionTime,
		Parallel:     parallel,
		Verbose:      verbose,
	}
}

func (p *MCTSPlayer) ChooseMove(board *game.Board, side game.CellState) (game.Move, error) {
	m, err := searcher.NewMCTS(
		searcher.WithExploration(p.Exploration),
		searcher.WithDuration(p.DecisionTime),
		searcher.WithParallel(p.Parallel),
		searcher.WithVerbose(p.Verbose),
	)
	if err != nil {
		return game.NoMove, err
	}
	return m.ChooseMove(board, side)
}

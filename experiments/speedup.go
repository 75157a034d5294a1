package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hex/game"
	"hex/searcher"
)

// RunSpeedupExperiment plays self-play games at a few board sizes with a
// serial and a parallel searcher under the same move budget, and stores the
// per-game and per-decision metrics as CSV. Comparing playouts per decision
// between the two configs gives the parallel speedup.
func RunSpeedupExperiment() error {
	const numGames = 4
	const moveTime = 200 * time.Millisecond
	sizes := []int{5, 7}
	configs := []SearcherConfig{
		{ID: 1, Exploration: searcher.DefaultExploration, Duration: moveTime, Parallel: false},
		{ID: 2, Exploration: searcher.DefaultExploration, Duration: moveTime, Parallel: true},
	}

	writer, err := NewWriter()
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteConfigs(configs); err != nil {
		return fmt.Errorf("failed to store searcher configs: %w", err)
	}

	log.Info().Msg("starting speedup experiment...")

	var gameRecords []GameRecord
	var decisionRecords []DecisionRecord
	count := 0
	for _, size := range sizes {
		for _, config := range configs {
			log.Info().Msgf("starting config %d (parallel=%t) on board size %d...", config.ID, config.Parallel, size)

			for i := 0; i < numGames; i++ {
				count++
				gameRecord, decisions, err := runSelfPlay(count, size, config)
				if err != nil {
					return fmt.Errorf("self-play game %d failed: %w", count, err)
				}
				gameRecords = append(gameRecords, gameRecord)
				decisionRecords = append(decisionRecords, decisions...)

				log.Info().Msgf("completed game %d of %d with winner %s in %d moves",
					i+1, numGames, gameRecord.Winner, gameRecord.Moves)
			}
		}
	}

	log.Info().Msg("completed speedup experiment")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteDecisionRecords(decisionRecords); err != nil {
		return fmt.Errorf("failed to write decision records: %w", err)
	}
	log.Info().Msg("stored experiment records")
	return nil
}

// runSelfPlay plays one game where both sides use the same searcher config,
// collecting the metrics of every decision.
func runSelfPlay(id, size int, config SearcherConfig) (GameRecord, []DecisionRecord, error) {
	board, err := game.NewBoard(size)
	if err != nil {
		return GameRecord{}, nil, err
	}

	var decisions []DecisionRecord
	side := game.Blue
	moveNumber := 0
	start := time.Now()
	for board.Winner() == game.Empty {
		m, err := searcher.NewMCTS(
			searcher.WithExploration(config.Exploration),
			searcher.WithDuration(config.Duration),
			searcher.WithParallel(config.Parallel),
			searcher.WithMetrics(),
		)
		if err != nil {
			return GameRecord{}, nil, err
		}

		move, err := m.ChooseMove(board, side)
		if err != nil {
			return GameRecord{}, nil, err
		}
		if err := board.MakeMove(move.Row, move.Col, side); err != nil {
			return GameRecord{}, nil, err
		}

		moveNumber++
		metrics := m.Metrics()
		decisions = append(decisions, DecisionRecord{
			Game:       id,
			MoveNumber: moveNumber,
			Player:     side.String(),
			Duration:   metrics.Duration,
			Iterations: metrics.Iterations,
			Playouts:   metrics.Playouts,
		})

		side = side.Opponent()
	}
	end := time.Now()

	return GameRecord{
		ID:        id,
		Config:    config.ID,
		BoardSize: size,
		Winner:    board.Winner().String(),
		Moves:     moveNumber,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}, decisions, nil
}

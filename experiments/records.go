package experiments

import "time"

// SearcherConfig describes one searcher variant under measurement.
type SearcherConfig struct {
	ID          int
	Exploration float64
	Duration    time.Duration
	Parallel    bool
}

// GameRecord summarizes one self-play game.
type GameRecord struct {
	ID        int
	Config    int // SearcherConfig.ID
	BoardSize int
	Winner    string
	Moves     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// DecisionRecord holds the search metrics of a single move decision.
type DecisionRecord struct {
	Game       int // GameRecord.ID
	MoveNumber int
	Player     string
	Duration   time.Duration
	Iterations int64
	Playouts   int64
}

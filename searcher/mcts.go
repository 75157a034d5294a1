package searcher

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"hex/game"
	"hex/logger"
)

var (
	ErrIncompatibleConfig = errors.New("incompatible configuration")
	ErrNoBudget           = errors.New("insufficient statistics")
)

// RandFactory builds the random generator for one playout worker. Workers
// never share a generator; a shared one behind a lock would serialize the
// playouts.
type RandFactory func(worker int) *rand.Rand

type Option func(*MCTS)

func WithExploration(exploration float64) Option {
	return func(m *MCTS) {
		if exploration > 0 {
			m.exploration = exploration
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithParallel runs hardware-concurrency playouts per iteration instead of
// one.
func WithParallel(parallel bool) Option {
	return func(m *MCTS) {
		m.parallel = parallel
	}
}

func WithVerbose(verbose bool) Option {
	return func(m *MCTS) {
		m.verbose = verbose
	}
}

func WithRand(factory RandFactory) Option {
	return func(m *MCTS) {
		if factory != nil {
			m.newRand = factory
		}
	}
}

// WithLogger replaces the process-wide logger, mostly for tests.
func WithLogger(log *logger.Logger) Option {
	return func(m *MCTS) {
		m.log = log
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

// MCTS is a flat Monte Carlo tree search over the moves available right now:
// only the root is ever expanded, and everything below it is random
// playouts. Each ChooseMove call builds a fresh one-level tree and discards
// it; nothing carries over between moves.
type MCTS struct {
	exploration float64
	duration    time.Duration
	parallel    bool
	verbose     bool
	newRand     RandFactory
	log         *logger.Logger
	metrics     MetricsCollector
	root        *node
}

// NewMCTS builds a searcher with a 1.41 exploration constant and a one
// second decision budget unless options say otherwise. Parallel playouts and
// verbose tracing are mutually exclusive: interleaved traces from several
// workers would be unreadable.
func NewMCTS(options ...Option) (*MCTS, error) {
	m := &MCTS{
		exploration: DefaultExploration,
		duration:    time.Second,
		newRand:     seededRand,
		metrics:     NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.parallel && m.verbose {
		return nil, fmt.Errorf("%w: concurrent playouts and verbose mode do not make sense together", ErrIncompatibleConfig)
	}
	if m.log == nil {
		m.log = logger.Instance(m.verbose)
	}
	return m, nil
}

// Metrics returns the collected statistics of the last decision. Without
// WithMetrics it returns zeroes.
func (m *MCTS) Metrics() DecisionMetrics {
	return m.metrics.Complete()
}

// ChooseMove picks a move for player on the given board. The board is only
// read; playouts run on private copies. It returns ErrNoBudget when the
// deadline expired before any root child collected a single visit.
func (m *MCTS) ChooseMove(board *game.Board, player game.CellState) (game.Move, error) {
	m.log.MCTSStart(player)
	m.metrics.Start()

	m.root = newNode(player, game.NoMove, nil)
	m.expandRoot(board)
	if len(m.root.children) == 0 {
		return game.NoMove, fmt.Errorf("%w: no valid moves to search", ErrNoBudget)
	}

	workers := 1
	if m.parallel {
		if workers = runtime.NumCPU(); workers < 1 {
			workers = 1
		}
	}
	rngs := make([]*rand.Rand, workers)
	for i := range rngs {
		rngs[i] = m.newRand(i)
	}

	iterations := 0
	end := time.Now().Add(m.duration)
	// The deadline is polled between iterations only; a playout in flight is
	// never aborted.
	for time.Now().Before(end) {
		m.log.IterationNumber(iterations + 1)
		child := m.selectChild(m.root)
		if m.parallel {
			m.parallelPlayouts(child, board, rngs)
		} else {
			winner := simulateRandomPlayout(child, board.Clone(), rngs[0], m.log)
			m.backpropagate(child, winner)
		}
		if m.verbose {
			m.logRootStats()
		}
		iterations++
		m.metrics.AddIteration()
	}
	m.log.TimerRanOut(iterations)

	best := m.bestChild()
	if best == nil {
		return game.NoMove, fmt.Errorf("%w: the deadline was too short for the given board size", ErrNoBudget)
	}
	ratio, _ := best.winRatio()
	m.log.BestChildChosen(iterations, best.move, ratio)
	m.log.MCTSEnd()
	return best.move, nil
}

// expandRoot creates one child per valid move, in row-major move order.
// Children carry the root's player: the child for "player moves at (r,c)" is
// still tagged with player, and backpropagation credits nodes whose player
// matches the playout winner.
func (m *MCTS) expandRoot(board *game.Board) {
	for _, move := range board.ValidMoves() {
		m.root.children = append(m.root.children, newNode(m.root.player, move, m.root))
		m.log.ExpandedChild(move)
	}
}

// selectChild returns the root child with the highest UCT score. Ties keep
// the first child encountered, which is the row-major expansion order.
func (m *MCTS) selectChild(parent *node) *node {
	_, parentVisits := parent.stats()

	best := parent.children[0]
	wins, visits := best.stats()
	maxScore := uctScore(wins, visits, parentVisits, m.exploration)
	for _, child := range parent.children[1:] {
		wins, visits = child.stats()
		if score := uctScore(wins, visits, parentVisits, m.exploration); score > maxScore {
			maxScore = score
			best = child
		}
	}
	m.log.SelectedChild(best.move, maxScore)
	return best
}

// parallelPlayouts fans out one playout per worker from the same child, each
// against its own board copy and with its own generator, joins them all, and
// backpropagates the results sequentially in worker order.
func (m *MCTS) parallelPlayouts(child *node, board *game.Board, rngs []*rand.Rand) {
	winners := make([]game.CellState, len(rngs))
	var wg sync.WaitGroup
	for i := range rngs {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			winners[worker] = simulateRandomPlayout(child, board.Clone(), rngs[worker], m.log)
		}(i)
	}
	wg.Wait()

	for _, winner := range winners {
		m.backpropagate(child, winner)
	}
}

// backpropagate walks from the node to the root, crediting each node on the
// way. In the flat tree that is exactly two nodes.
func (m *MCTS) backpropagate(start *node, winner game.CellState) {
	for n := start; n != nil; n = n.parent {
		wins, visits := n.record(winner)
		m.log.BackpropagationResult(n.move, wins, visits)
	}
	m.metrics.AddPlayout()
}

func (m *MCTS) logRootStats() {
	wins, visits := m.root.stats()
	m.log.RootStats(visits, wins, len(m.root.children))
	for _, child := range m.root.children {
		w, v := child.stats()
		m.log.ChildStats(child.move, w, v)
	}
}

// bestChild returns the visited child with the highest win ratio, or nil
// when no child has been visited. Unvisited children are skipped; ties keep
// the earlier child.
func (m *MCTS) bestChild() *node {
	var best *node
	maxRatio := -1.0
	for _, child := range m.root.children {
		wins, visits := child.stats()
		m.log.NodeWinRatio(child.move, wins, visits)
		if visits == 0 {
			continue
		}
		if ratio := float64(wins) / float64(visits); ratio > maxRatio {
			maxRatio = ratio
			best = child
		}
	}
	return best
}

func seededRand(worker int) *rand.Rand {
	seed := uint64(time.Now().UnixNano()) + uint64(worker)*0x9e3779b97f4a7c15
	return rand.New(rand.NewSource(seed))
}

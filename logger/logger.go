package logger

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"hex/game"
)

// Logger traces the internals of the search. One instance is shared by the
// whole process; its mutex serializes writes so multi-line board snapshots
// never interleave. Write failures are swallowed: logging must never abort a
// decision.
type Logger struct {
	mu      sync.Mutex
	verbose bool
	zl      zerolog.Logger
}

var (
	instance *Logger
	once     sync.Once
)

// Instance returns the process-wide logger, creating it with the given
// verbosity on first use. The verbosity of later calls is ignored; it stays
// fixed for the life of the process.
func Instance(verbose bool) *Logger {
	once.Do(func() {
		instance = New(os.Stdout, verbose)
	})
	return instance
}

// New builds a standalone logger writing to w. Tests use this to capture
// output without touching the singleton.
func New(w io.Writer, verbose bool) *Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.MessageFieldName},
	}
	return &Logger{verbose: verbose, zl: zerolog.New(console)}
}

func (l *Logger) Verbose() bool {
	return l.verbose
}

func (l *Logger) print(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	// Log carries no level, so the global level that quiets the narration
	// does not filter the trace.
	l.zl.Log().Msg(message)
}

// MCTSStart opens a decision. In verbose mode it prints the banner; otherwise
// it prints the single non-verbose line of the whole decision.
func (l *Logger) MCTSStart(player game.CellState) {
	if l.verbose {
		l.print(fmt.Sprintf("\n-------------MCTS VERBOSE START - %s to move-------------\n", player))
	} else {
		l.print("Thinking silently...")
	}
}

func (l *Logger) IterationNumber(iteration int) {
	if !l.verbose {
		return
	}
	l.print(fmt.Sprintf("\n------------------STARTING SIMULATION %d------------------\n", iteration))
}

func (l *Logger) ExpandedChild(move game.Move) {
	if !l.verbose {
		return
	}
	l.print(fmt.Sprintf("EXPANDED CHILD %d, %d", move.Row, move.Col))
}

// SelectedChild reports the UCT winner of a selection round. The +Inf
// sentinel of unvisited children prints as "infinity".
func (l *Logger) SelectedChild(move game.Move, uctScore float64) {
	if !l.verbose {
		return
	}
	score := "infinity"
	if !math.IsInf(uctScore, 1) {
		score = fmt.Sprintf("%.4g", uctScore)
	}
	l.print(fmt.Sprintf("\nSELECTED CHILD %d, %d with UCT of %s", move.Row, move.Col, score))
}

func (l *Logger) SimulationStart(move game.Move, board *game.Board) {
	if !l.verbose {
		return
	}
	l.print(fmt.Sprintf("\nSIMULATING A RANDOM PLAYOUT from node %d, %d. Simulation board is in state:\n%s",
		move.Row, move.Col, board))
}

func (l *Logger) SimulationStep(current game.CellState, board *game.Board, move game.Move) {
	if !l.verbose {
		return
	}
	l.print(fmt.Sprintf("Current player in simulation is %s in Board state:\n%s%s makes random move %d,%d. ",
		current, board, current, move.Row, move.Col))
}

func (l *Logger) SimulationEnd(winner game.CellState, board *game.Board) {
	if !l.verbose {
		return
	}
	l.print(fmt.Sprintf("DETECTED WIN for player %s in Board state:\n%s", winner, board))
}

func (l *Logger) BackpropagationResult(move game.Move, winCount, visitCount int) {
	if !l.verbose {
		return
	}
	l.print(fmt.Sprintf("BACKPROPAGATED result to node %d, %d. It currently has %d wins and %d visits.",
		move.Row, move.Col, winCount, visitCount))
}

func (l *Logger) RootStats(visitCount, winCount, childCount int) {
	if !l.verbose {
		return
	}
	l.print(fmt.Sprintf("\nAFTER BACKPROPAGATION, root node has %d visits, %d wins, and %d child nodes. Their details are:\n",
		visitCount, winCount, childCount))
}

func (l *Logger) ChildStats(move game.Move, winCount, visitCount int) {
	if !l.verbose {
		return
	}
	l.print(fmt.Sprintf("Child node %d,%d: Wins: %d, Visits: %d. Win ratio: %s",
		move.Row, move.Col, winCount, visitCount, winRatio(winCount, visitCount)))
}

func (l *Logger) TimerRanOut(iterations int) {
	if !l.verbose {
		return
	}
	l.print(fmt.Sprintf("\nTIMER RAN OUT. %d iterations completed. CHOOSING A MOVE FROM ROOT'S CHILDREN:\n", iterations))
}

func (l *Logger) NodeWinRatio(move game.Move, winCount, visitCount int) {
	if !l.verbose {
		return
	}
	l.print(fmt.Sprintf("Child %d,%d has a win ratio of %s",
		move.Row, move.Col, winRatio(winCount, visitCount)))
}

func (l *Logger) BestChildChosen(iterations int, move game.Move, ratio float64) {
	if !l.verbose {
		return
	}
	l.print(fmt.Sprintf("\nAfter %d iterations, chose child %d, %d with win ratio %.4g",
		iterations, move.Row, move.Col, ratio))
}

func (l *Logger) MCTSEnd() {
	if !l.verbose {
		return
	}
	l.print("\n--------------------MCTS VERBOSE END--------------------\n")
}

func winRatio(winCount, visitCount int) string {
	if visitCount == 0 {
		return "N/A (no visits yet)"
	}
	return fmt.Sprintf("%.2f", float64(winCount)/float64(visitCount))
}

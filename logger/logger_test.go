package logger

import (
	"bytes"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"hex/game"
)

func TestSilentMode(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.MCTSStart(game.Blue)
	l.IterationNumber(1)
	l.ExpandedChild(game.Move{Row: 0, Col: 0})
	l.TimerRanOut(10)
	l.MCTSEnd()

	out := buf.String()
	require.Contains(t, out, "Thinking silently...")
	require.Equal(t, 1, strings.Count(out, "\n"), "Silent mode should emit exactly one line per decision")
}

func TestVerboseTrace(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)
	board, err := game.NewBoard(2)
	require.NoError(t, err)

	l.MCTSStart(game.Red)
	l.IterationNumber(3)
	l.ExpandedChild(game.Move{Row: 1, Col: 0})
	l.SelectedChild(game.Move{Row: 1, Col: 0}, 1.25)
	l.SimulationStart(game.Move{Row: 1, Col: 0}, board)
	l.BackpropagationResult(game.Move{Row: 1, Col: 0}, 1, 2)
	l.RootStats(2, 1, 4)
	l.ChildStats(game.Move{Row: 1, Col: 0}, 1, 2)
	l.ChildStats(game.Move{Row: 0, Col: 1}, 0, 0)
	l.TimerRanOut(3)
	l.NodeWinRatio(game.Move{Row: 1, Col: 0}, 1, 2)
	l.BestChildChosen(3, game.Move{Row: 1, Col: 0}, 0.5)
	l.MCTSEnd()

	out := buf.String()
	require.Contains(t, out, "MCTS VERBOSE START - R to move")
	require.Contains(t, out, "STARTING SIMULATION 3")
	require.Contains(t, out, "EXPANDED CHILD 1, 0")
	require.Contains(t, out, "SELECTED CHILD 1, 0 with UCT of 1.25")
	require.Contains(t, out, "SIMULATING A RANDOM PLAYOUT from node 1, 0")
	require.Contains(t, out, ". - . 1", "Simulation trace should include the board snapshot")
	require.Contains(t, out, "BACKPROPAGATED result to node 1, 0. It currently has 1 wins and 2 visits.")
	require.Contains(t, out, "root node has 2 visits, 1 wins, and 4 child nodes")
	require.Contains(t, out, "Child node 1,0: Wins: 1, Visits: 2. Win ratio: 0.50")
	require.Contains(t, out, "Child node 0,1: Wins: 0, Visits: 0. Win ratio: N/A (no visits yet)")
	require.Contains(t, out, "TIMER RAN OUT. 3 iterations completed.")
	require.Contains(t, out, "Child 1,0 has a win ratio of 0.50")
	require.Contains(t, out, "After 3 iterations, chose child 1, 0 with win ratio 0.5")
	require.Contains(t, out, "MCTS VERBOSE END")
	require.NotContains(t, out, "Thinking silently")
}

func TestInfinitySentinel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)

	l.SelectedChild(game.Move{Row: 0, Col: 2}, math.Inf(1))

	require.Contains(t, buf.String(), "SELECTED CHILD 0, 2 with UCT of infinity")
}

func TestConcurrentLogging(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				l.BackpropagationResult(game.Move{Row: 1, Col: 1}, j, j+1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 400, strings.Count(buf.String(), "BACKPROPAGATED"),
		"Every concurrent log call should land exactly once")
}

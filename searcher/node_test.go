package searcher

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"hex/game"
)

func TestNodeRecord(t *testing.T) {
	t.Run("crediting a win for the node's player", func(t *testing.T) {
		n := newNode(game.Blue, game.Move{Row: 0, Col: 0}, nil)

		wins, visits := n.record(game.Blue)

		require.Equal(t, 1, wins)
		require.Equal(t, 1, visits)
	})

	t.Run("counting a loss as a visit only", func(t *testing.T) {
		n := newNode(game.Blue, game.Move{Row: 0, Col: 0}, nil)

		wins, visits := n.record(game.Red)

		require.Equal(t, 0, wins)
		require.Equal(t, 1, visits)
	})

	t.Run("concurrent recording keeps the counters coherent", func(t *testing.T) {
		n := newNode(game.Blue, game.Move{Row: 0, Col: 0}, nil)

		const winners = 100
		const losers = 60
		var wg sync.WaitGroup
		for i := 0; i < winners+losers; i++ {
			wg.Add(1)
			i := i
			go func() {
				defer wg.Done()
				if i < winners {
					n.record(game.Blue)
				} else {
					n.record(game.Red)
				}
			}()
		}
		wg.Wait()

		wins, visits := n.stats()
		require.Equal(t, winners, wins)
		require.Equal(t, winners+losers, visits)
	})
}

func TestNodeWinRatio(t *testing.T) {
	n := newNode(game.Red, game.Move{Row: 1, Col: 1}, nil)

	_, ok := n.winRatio()
	require.False(t, ok, "Unvisited node has no ratio")

	n.record(game.Red)
	n.record(game.Blue)

	ratio, ok := n.winRatio()
	require.True(t, ok)
	require.Equal(t, 0.5, ratio)
}

package searcher

import (
	"sync"

	"hex/game"
)

// node is one node of the search tree. The counters are guarded by mu so
// parallel playout results can be folded in safely; the tree structure
// itself is built and walked only by the search goroutine. Children are
// owned by their parent, the parent pointer is a non-owning back-reference
// for backpropagation.
type node struct {
	mu         sync.Mutex
	move       game.Move
	player     game.CellState
	winCount   int
	visitCount int
	parent     *node
	children   []*node
}

func newNode(player game.CellState, move game.Move, parent *node) *node {
	return &node{move: move, player: player, parent: parent}
}

// record folds one playout outcome into the counters and returns the new
// values.
func (n *node) record(winner game.CellState) (wins, visits int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.visitCount++
	if winner == n.player {
		n.winCount++
	}
	return n.winCount, n.visitCount
}

func (n *node) stats() (wins, visits int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.winCount, n.visitCount
}

// winRatio returns the empirical win ratio; ok is false while the node is
// unvisited.
func (n *node) winRatio() (ratio float64, ok bool) {
	wins, visits := n.stats()
	if visits == 0 {
		return 0, false
	}
	return float64(wins) / float64(visits), true
}

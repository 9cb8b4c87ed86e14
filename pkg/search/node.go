// Package search implements the best-first, width-limited lookahead tree
// that picks a command sequence for the current piece (spec.md §4.5),
// grounded on original_source's searchtree.rs and akirobo.rs. Node parent
// links use plain *Node pointers and rely on the Go garbage collector in
// place of the original's Rc<T>.
package search

import (
	"github.com/kagedrop/bot/pkg/eval"
	"github.com/kagedrop/bot/pkg/movegen"
	"github.com/kagedrop/bot/pkg/piece"
	"github.com/kagedrop/bot/pkg/tetris"
)

// Node is one placement in the search tree: the board it was placed onto,
// the placement itself, the resulting board and counters after hard_drop,
// which piece is now held, a parent link, and the node's evaluation.
type Node struct {
	Board            tetris.Bitboard
	Placement        movegen.Placement
	BoardAfterClears tetris.Bitboard
	Data             tetris.BoardData
	Held             piece.Shape
	Parent           *Node
	Score            eval.Score
	Depth            int

	// rootAction is only set on depth-0 nodes: the command sequence that
	// reaches this placement from the snapshot's falling piece, including a
	// leading Hold if the root alternated into the held piece.
	rootAction []tetris.Command
	// seq breaks ties deterministically between equal-Score nodes, since
	// float equality must never decide ordering (spec.md §4.4).
	seq uint64
}

// NewNode locks placement onto board, clears lines via hard_drop using the
// counters inherited from parent (or dataIfRoot when parent is nil), scores
// the result, and records depth = parent.Depth + 1.
func NewNode(board tetris.Bitboard, placement movegen.Placement, held piece.Shape, parent *Node, dataIfRoot tetris.BoardData, weights eval.Weights, seq uint64) *Node {
	filled := board.Lock(placement.Cells)

	var data tetris.BoardData
	if parent != nil {
		data = parent.Data
	} else {
		data = dataIfRoot
	}

	boardAfterClears, newData := filled.HardDrop(placement.AllSpin, data)

	return &Node{
		Board:            board,
		Placement:        placement,
		BoardAfterClears: boardAfterClears,
		Data:             newData,
		Held:             held,
		Parent:           parent,
		Score:            eval.Evaluate(boardAfterClears, newData, weights),
		Depth:            depthOf(parent),
		seq:              seq,
	}
}

func depthOf(parent *Node) int {
	if parent == nil {
		return 0
	}
	return parent.Depth + 1
}

// Root walks parent links up to the depth-0 ancestor.
func (n *Node) Root() *Node {
	if n.Parent == nil {
		return n
	}
	return n.Parent.Root()
}

// RootAction returns the command sequence recorded at the root ancestor.
func (n *Node) RootAction() []tetris.Command {
	return n.Root().rootAction
}

// Less orders nodes by Score, breaking ties by insertion sequence so the
// ordering never depends on float equality.
func (n *Node) Less(other *Node) bool {
	if n.Score != other.Score {
		return n.Score < other.Score
	}
	return n.seq < other.seq
}

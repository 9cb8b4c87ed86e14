package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kagedrop/bot/pkg/eval"
	"github.com/kagedrop/bot/pkg/movegen"
	"github.com/kagedrop/bot/pkg/piece"
	"github.com/kagedrop/bot/pkg/tetris"
)

func onePlacement(t *testing.T, board tetris.Bitboard, shape piece.Shape) movegen.Placement {
	t.Helper()
	for p := range movegen.Generate(board, shape) {
		return p
	}
	require.Fail(t, "no placement found")
	return movegen.Placement{}
}

func TestNewNodeScoresAgainstBoardAfterClears(t *testing.T) {
	var board tetris.Bitboard
	placement := onePlacement(t, board, piece.O)

	n := NewNode(board, placement, piece.T, nil, tetris.BoardData{}, eval.DefaultWeights, 0)

	assert.Equal(t, 0, n.Depth)
	assert.Nil(t, n.Parent)
	assert.Equal(t, eval.Evaluate(n.BoardAfterClears, n.Data, eval.DefaultWeights), n.Score)
}

func TestNewNodeClearsFullRow(t *testing.T) {
	// bottom two rows are complete except column 9; row 2 carries a residual
	// block in column 0 so the clear is a clean Double, not a Perfect Clear.
	board := tetris.BoardFromRows(
		"[][][][][][][][][]  ",
		"[][][][][][][][][]  ",
		"[]                  ",
	)

	p, ok := board.TryCommands(piece.New(piece.I), []tetris.Command{
		tetris.RotateCw, tetris.MoveRight, tetris.MoveRight, tetris.MoveRight, tetris.MoveRight, tetris.SonicDrop,
	})
	require.True(t, ok)
	placement := movegen.Placement{Cells: p.Coords, AllSpin: false}

	n := NewNode(board, placement, piece.T, nil, tetris.BoardData{}, eval.DefaultWeights, 0)

	assert.Equal(t, uint32(1), n.Data.CumulativeAttack)
	assert.Equal(t, uint32(1), n.Data.Combo)
	// the residual column-0 block shifted down two rows, so this wasn't a
	// perfect clear.
	assert.True(t, n.BoardAfterClears.At(0, 0))
}

func TestNodeDepthFollowsParentChain(t *testing.T) {
	var board tetris.Bitboard
	placement := onePlacement(t, board, piece.O)

	root := NewNode(board, placement, piece.T, nil, tetris.BoardData{}, eval.DefaultWeights, 0)
	child := NewNode(root.BoardAfterClears, placement, piece.T, root, tetris.BoardData{}, eval.DefaultWeights, 1)
	grandchild := NewNode(child.BoardAfterClears, placement, piece.T, child, tetris.BoardData{}, eval.DefaultWeights, 2)

	assert.Equal(t, 1, child.Depth)
	assert.Equal(t, 2, grandchild.Depth)
	assert.Same(t, root, grandchild.Root())
}

func TestNodeRootActionComesFromRoot(t *testing.T) {
	var board tetris.Bitboard
	placement := onePlacement(t, board, piece.O)

	root := NewNode(board, placement, piece.T, nil, tetris.BoardData{}, eval.DefaultWeights, 0)
	root.rootAction = []tetris.Command{tetris.MoveLeft, tetris.SonicDrop}
	child := NewNode(root.BoardAfterClears, placement, piece.T, root, tetris.BoardData{}, eval.DefaultWeights, 1)

	assert.Equal(t, root.rootAction, child.RootAction())
}

func TestNodeLessBreaksTiesBySeq(t *testing.T) {
	var board tetris.Bitboard
	placement := onePlacement(t, board, piece.O)

	a := NewNode(board, placement, piece.T, nil, tetris.BoardData{}, eval.DefaultWeights, 5)
	b := NewNode(board, placement, piece.T, nil, tetris.BoardData{}, eval.DefaultWeights, 9)

	// same board/placement/weights means equal Score; seq must decide.
	assert.Equal(t, a.Score, b.Score)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

// Package eval scores a post-lock board with a weighted sum of heuristics
// (spec.md §4.4), grounded in shape on original_source's default_eval.rs
// but carrying spec.md's own weights rather than the original's tuning.
package eval

import (
	"math/bits"

	"github.com/kagedrop/bot/pkg/tetris"
)

// Weights holds the per-heuristic multipliers. Mutable, so a caller can
// retune the bot without touching the evaluator itself (spec.md §6).
type Weights struct {
	Bumpiness float64
	Attack    float64
	Height    float64
	Holes     float64
	Garbage   float64
	Depends   float64
}

// DefaultWeights is the wire-exact weight table from spec.md §4.4.
var DefaultWeights = Weights{
	Bumpiness: -0.2,
	Attack:    1.0,
	Height:    1.0,
	Holes:     2.0,
	Garbage:   1.0,
	Depends:   1.0,
}

// Evaluate scores board/data under w. The result is totally ordered by
// plain float64 comparison; callers must never compare scores for bit-exact
// equality and should break ties by insertion order instead (spec.md §4.4, §9).
func Evaluate(board tetris.Bitboard, data tetris.BoardData, w Weights) Score {
	heights := columnHeights(board)

	var s float64
	s += bumpiness(board) * w.Bumpiness
	s += float64(data.CumulativeAttack) * w.Attack
	s += height(heights) * w.Height
	s += holes(board, heights) * w.Holes
	s += -float64(data.SimulatedGarbage) * w.Garbage
	s += depends(heights) * w.Depends
	return Score(s)
}

func columnHeights(board tetris.Bitboard) [tetris.Width]int {
	var heights [tetris.Width]int
	for c := 0; c < tetris.Width; c++ {
		heights[c] = board.ColumnHeight(c)
	}
	return heights
}

func bumpiness(board tetris.Bitboard) float64 {
	var score int
	for c := 0; c < tetris.Width-1; c++ {
		score += bits.OnesCount32(board.Cols[c] ^ board.Cols[c+1])
	}
	return float64(score)
}

// height penalizes tall stacks: flat through h<=4, mild growth to h=10,
// a steep cliff from h=15 up, matching spec.md's described curve.
func height(heights [tetris.Width]int) float64 {
	max := 0
	for _, h := range heights {
		if h > max {
			max = h
		}
	}
	switch {
	case max <= 4:
		return 0
	case max <= 6:
		return -0.5
	case max <= 8:
		return -1.5
	case max <= 10:
		return -3.0
	case max <= 12:
		return -6.0
	case max <= 14:
		return -11.0
	case max <= 15:
		return -16.0
	case max <= 17:
		return -26.0
	case max <= 19:
		return -45.0
	default:
		return -90.0
	}
}

// holes penalizes, per column, each pocket of empty cells beneath the
// highest filled cell: a pocket's first cell costs 1.0 and each further
// cell of the same pocket costs a fifth of the previous one. The total is
// capped at 2.0 per column.
func holes(board tetris.Bitboard, heights [tetris.Width]int) float64 {
	var score float64
	for c := 0; c < tetris.Width; c++ {
		col := board.Cols[c]
		h := heights[c]
		var colScore float64
		penalty := 1.0
		inPocket := false
		for row := h - 2; row >= 0; row-- {
			if col&(1<<uint(row)) != 0 {
				inPocket = false
				continue
			}
			if !inPocket {
				penalty = 1.0
				inPocket = true
			}
			colScore += penalty
			penalty *= 0.2
		}
		if colScore > 2.0 {
			colScore = 2.0
		}
		score -= colScore
	}
	return score
}

// depends penalizes a column sitting in a well relative to its neighbors:
// interior columns compare both neighbors, edge columns their single one.
func depends(heights [tetris.Width]int) float64 {
	var score float64
	for c := 1; c < tetris.Width-1; c++ {
		left, right := heights[c-1], heights[c+1]
		neighbor := left
		if right < neighbor {
			neighbor = right
		}
		score += wellPenalty(neighbor - heights[c])
	}
	score += wellPenalty(heights[1] - heights[0])
	score += wellPenalty(heights[tetris.Width-2] - heights[tetris.Width-1])
	return score
}

func wellPenalty(depth int) float64 {
	if depth <= 0 {
		return 0
	}
	switch depth {
	case 1:
		return 0
	case 2:
		return -1.0
	case 3, 4:
		return -2.0
	default:
		return -(float64(depth) - 2.5)
	}
}

// Package movegen enumerates every placement reachable by a falling piece,
// including spins reached by a post-drop rotation (spec.md §4.2), grounded
// on original_source's movegen.rs.
package movegen

import (
	"github.com/kagedrop/bot/pkg/piece"
	"github.com/kagedrop/bot/pkg/tetris"
)

// Placement is a locked piece position together with whether it could not
// be nudged left, right or up from where it landed (an all-spin).
type Placement struct {
	Cells   piece.Cells
	AllSpin bool
}

func newPlacement(board tetris.Bitboard, p piece.FallingPiece) Placement {
	allSpin := true
	for _, d := range [3][2]int8{{0, 1}, {1, 0}, {-1, 0}} {
		if !board.Collides(p.Shift(d[1], d[0])) {
			allSpin = false
			break
		}
	}
	return Placement{Cells: p.Coords, AllSpin: allSpin}
}

var rotationSets = [][]tetris.Command{
	{},
	{tetris.RotateCw},
	{tetris.RotateCcw},
	{tetris.RotateCcw, tetris.RotateCcw},
}

// Generate returns the set of reachable placements for shape dropped onto
// board, keyed by their locked cells so duplicate landing spots collapse.
func Generate(board tetris.Bitboard, shape piece.Shape) map[Placement]struct{} {
	out := make(map[Placement]struct{})
	for p := range floodAndSonic(board, shape) {
		out[newPlacement(board, p)] = struct{}{}
	}
	for _, spinDir := range [2]piece.Direction{piece.Ccw, piece.Cw} {
		for p := range floodAndSonic(board, shape) {
			if spun, ok := board.TryCommand(p, rotateCommand(spinDir)); ok {
				landed := board.ForceSonicDrop(spun)
				placement := newPlacement(board, landed)
				if _, seen := out[placement]; !seen {
					out[placement] = struct{}{}
				}
			}
		}
	}
	return out
}

// GenerateWithActions is Generate, but also returns one reconstructible
// command sequence per placement. Where several sequences reach the same
// placement only one is kept: a post-drop spin never replaces a sequence
// already recorded, while among the rotate/flood/sonic-drop sequences the
// one kept depends on map iteration order.
func GenerateWithActions(board tetris.Bitboard, shape piece.Shape) map[Placement][]tetris.Command {
	spawn := piece.New(shape)
	if board.Collides(spawn) {
		return map[Placement][]tetris.Command{}
	}

	rotatedActions := map[piece.FallingPiece][]tetris.Command{}
	for _, set := range rotationSets {
		if rotated, ok := board.TryCommands(spawn, set); ok {
			rotatedActions[rotated] = set
		}
	}

	movedAndSoniced := map[piece.FallingPiece][]tetris.Command{}
	for p, action := range rotatedActions {
		for _, dir := range [2]tetris.Command{tetris.MoveLeft, tetris.MoveRight} {
			moving := p
			movingAction := append([]tetris.Command(nil), action...)
			for {
				moved, ok := board.TryCommand(moving, dir)
				if !ok {
					break
				}
				moving = moved
				movingAction = append(movingAction, dir)
				val := append(append([]tetris.Command(nil), movingAction...), tetris.SonicDrop)
				movedAndSoniced[board.ForceSonicDrop(moving)] = val
			}
		}
		val := append(append([]tetris.Command(nil), action...), tetris.SonicDrop)
		movedAndSoniced[board.ForceSonicDrop(p)] = val
	}

	generated := map[Placement][]tetris.Command{}
	for p, action := range movedAndSoniced {
		generated[newPlacement(board, p)] = action
	}
	for _, spinDir := range [2]piece.Direction{piece.Ccw, piece.Cw} {
		spin := rotateCommand(spinDir)
		for p, action := range movedAndSoniced {
			spun, ok := board.TryCommand(p, spin)
			if !ok {
				continue
			}
			placement := newPlacement(board, board.ForceSonicDrop(spun))
			if _, exists := generated[placement]; !exists {
				val := append(append([]tetris.Command(nil), action...), spin)
				generated[placement] = val
			}
		}
	}
	return generated
}

// floodAndSonic returns every resting orientation reached by rotating to
// each of the four spawn rotations, then flooding left/right one cell at a
// time and sonic-dropping from every stop along the way.
func floodAndSonic(board tetris.Bitboard, shape piece.Shape) map[piece.FallingPiece]struct{} {
	spawn := piece.New(shape)
	if board.Collides(spawn) {
		return map[piece.FallingPiece]struct{}{}
	}

	rotated := map[piece.FallingPiece]struct{}{}
	for _, set := range rotationSets {
		if p, ok := board.TryCommands(spawn, set); ok {
			rotated[p] = struct{}{}
		}
	}

	out := map[piece.FallingPiece]struct{}{}
	for p := range rotated {
		for _, dir := range [2]tetris.Command{tetris.MoveLeft, tetris.MoveRight} {
			moving := p
			for {
				moved, ok := board.TryCommand(moving, dir)
				if !ok {
					break
				}
				moving = moved
				out[board.ForceSonicDrop(moving)] = struct{}{}
			}
		}
		out[board.ForceSonicDrop(p)] = struct{}{}
	}
	return out
}

func rotateCommand(dir piece.Direction) tetris.Command {
	if dir == piece.Cw {
		return tetris.RotateCw
	}
	return tetris.RotateCcw
}

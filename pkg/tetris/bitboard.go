// Package tetris implements the bit-packed playfield: collision queries,
// rotation with kicks, sonic/hard drop, line clearing, garbage insertion
// and attack computation (spec.md §4.1).
package tetris

import (
	"math/bits"

	"github.com/kagedrop/bot/pkg/piece"
)

// Bitboard is a column-major packed playfield. Each of the ten columns is a
// 32-bit word; bit r set means row r is occupied. Row 0 is the bottom.
type Bitboard struct {
	Cols [Width]uint32
}

// At reports whether (row, col) is occupied.
func (b Bitboard) At(row, col int) bool {
	return b.Cols[col]&(1<<uint(row)) != 0
}

// Set occupies or clears (row, col).
func (b *Bitboard) Set(row, col int, v bool) {
	if v {
		b.Cols[col] |= 1 << uint(row)
	} else {
		b.Cols[col] &^= 1 << uint(row)
	}
}

// ColumnHeight returns the height of the stack in column c: one past the
// highest occupied row.
func (b Bitboard) ColumnHeight(col int) int {
	return Height - bits.LeadingZeros32(b.Cols[col])
}

// StackHeight returns the height of the tallest column.
func (b Bitboard) StackHeight() int {
	var union uint32
	for _, c := range b.Cols {
		union |= c
	}
	return Height - bits.LeadingZeros32(union)
}

// Collides reports whether any of the piece's four cells is out of bounds
// or overlaps an occupied cell.
func (b Bitboard) Collides(p piece.FallingPiece) bool {
	for _, cell := range p.Coords {
		if cell.Col < 0 || cell.Row < 0 || int(cell.Col) >= Width || int(cell.Row) >= Height {
			return true
		}
		if b.At(int(cell.Row), int(cell.Col)) {
			return true
		}
	}
	return false
}

// ForceSonicDrop translates the piece down until it rests, without locking.
// Returns the input unchanged if it cannot drop at all.
func (b Bitboard) ForceSonicDrop(p piece.FallingPiece) piece.FallingPiece {
	if dropped, ok := b.TryCommand(p, SonicDrop); ok {
		return dropped
	}
	return p
}

// TryCommand applies one command to the piece. Translations return false if
// the result collides or is unchanged; rotations walk the kick table and
// return false if none succeed. Hold is not handled here (spec.md §4.3).
func (b Bitboard) TryCommand(p piece.FallingPiece, cmd Command) (piece.FallingPiece, bool) {
	switch cmd {
	case MoveLeft:
		next := p.Shift(0, -1)
		if b.Collides(next) || next == p {
			return p, false
		}
		return next, true

	case MoveRight:
		next := p.Shift(0, 1)
		if b.Collides(next) || next == p {
			return p, false
		}
		return next, true

	case Drop:
		next := p.Shift(-1, 0)
		if b.Collides(next) || next == p {
			return p, false
		}
		return next, true

	case SonicDrop:
		distance := b.sonicDropDistance(p)
		if distance == 0 {
			return p, false
		}
		return p.Shift(int8(-distance), 0), true

	case RotateCw, RotateCcw:
		dir := piece.Cw
		if cmd == RotateCcw {
			dir = piece.Ccw
		}
		rotated := p.Rotate(dir)
		for _, k := range p.Shape.Kicks(dir, rotated.Rotation) {
			kicked := rotated.Shift(k.DRow, k.DCol)
			if !b.Collides(kicked) {
				return kicked, true
			}
		}
		return p, false

	default:
		panic("try_command: not a falling-piece command")
	}
}

// sonicDropDistance returns the maximal downward shift common to all four
// cells: for a cell at (y, x), the run of unoccupied rows below it in
// column x, found via leading-ones of the inverted column shifted so row y
// sits at the MSB.
func (b Bitboard) sonicDropDistance(p piece.FallingPiece) int {
	distance := -1
	for _, cell := range p.Coords {
		var d int
		if cell.Row == 0 {
			d = 0
		} else {
			col := b.Cols[cell.Col]
			shifted := ^col << (uint(Height) - uint(cell.Row))
			d = bits.LeadingZeros32(^shifted) // leading_ones(shifted)
		}
		if distance == -1 || d < distance {
			distance = d
		}
	}
	if distance < 0 {
		return 0
	}
	return distance
}

// Lock OR's the piece's four cells into the board. Cells are assumed
// in-bounds and non-overlapping (the caller must have checked Collides).
func (b Bitboard) Lock(cells piece.Cells) Bitboard {
	locked := b
	for _, cell := range cells {
		locked.Set(int(cell.Row), int(cell.Col), true)
	}
	return locked
}

// TryCommands folds TryCommand over a sequence, short-circuiting on failure.
func (b Bitboard) TryCommands(p piece.FallingPiece, cmds []Command) (piece.FallingPiece, bool) {
	cur := p
	for _, c := range cmds {
		next, ok := b.TryCommand(cur, c)
		if !ok {
			return p, false
		}
		cur = next
	}
	return cur, true
}

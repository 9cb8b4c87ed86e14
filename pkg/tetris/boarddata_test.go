package tetris_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kagedrop/bot/pkg/piece"
	"github.com/kagedrop/bot/pkg/tetris"
)

func TestGarbageInsertionOnNonClearingLock(t *testing.T) {
	b := tetris.BoardFromRows("[][][][][]            ")
	data := tetris.BoardData{Incoming: [tetris.GarbageScheduleSlots]uint32{2, 0, 0, 0, 0, 0, 0, 0}}

	result, newData := b.HardDrop(false, data)

	assert.True(t, result.At(0, 9))
	assert.True(t, result.At(1, 9))
	assert.Equal(t, uint32(2), newData.SimulatedGarbage)
	assert.Equal(t, uint32(0), newData.Incoming[0])
}

func TestConsecutiveClearsIncrementCombo(t *testing.T) {
	var data tetris.BoardData
	var board tetris.Bitboard

	for i := 0; i < 10; i++ {
		board = tetris.BoardFromRows("[][][][][][][][][][]")
		_, data = board.HardDrop(false, data)
	}
	assert.Equal(t, uint32(10), data.Combo)
}

func TestNoClearResetsCombo(t *testing.T) {
	data := tetris.BoardData{Combo: 5}
	board := tetris.BoardFromRows("[][][][][]            ")

	_, newData := board.HardDrop(false, data)
	assert.Equal(t, uint32(0), newData.Combo)
}

// dropVerticalI rotates a spawning I piece clockwise, shifts it into column
// 9, and sonic-drops it: the same column-9-filling maneuver the bitboard
// tests use to build deterministic clear fixtures.
func dropVerticalI(t *testing.T, b tetris.Bitboard) tetris.Bitboard {
	t.Helper()
	p, ok := b.TryCommands(piece.New(piece.I), []tetris.Command{
		tetris.RotateCw, tetris.MoveRight, tetris.MoveRight, tetris.MoveRight, tetris.MoveRight, tetris.SonicDrop,
	})
	require.True(t, ok)
	return b.Lock(p.Coords)
}

func TestQuadClearEstablishesBackToBack(t *testing.T) {
	// four rows complete except column 9, plus a residual block in row 4 so
	// the clear empties exactly those four rows, not the whole board.
	b := tetris.BoardFromRows(
		"[][][][][][][][][]  ",
		"[][][][][][][][][]  ",
		"[][][][][][][][][]  ",
		"[][][][][][][][][]  ",
		"[]                  ",
	)

	filled := dropVerticalI(t, b)
	_, data := filled.HardDrop(false, tetris.BoardData{})

	assert.Equal(t, uint32(4), data.CumulativeAttack)
	assert.True(t, data.B2B)
}

func TestPerfectClearAddsBonus(t *testing.T) {
	// four rows complete except column 9 and nothing above them: clearing
	// all four empties the board outright.
	b := tetris.BoardFromRows(
		"[][][][][][][][][]  ",
		"[][][][][][][][][]  ",
		"[][][][][][][][][]  ",
		"[][][][][][][][][]  ",
	)

	filled := dropVerticalI(t, b)
	result, data := filled.HardDrop(false, tetris.BoardData{})

	assert.Equal(t, uint32(14), data.CumulativeAttack)
	assert.Equal(t, tetris.Bitboard{}, result)
}

func TestGarbageScheduleAgesForward(t *testing.T) {
	// incoming[0] is always consumed on this placement (here, zero garbage
	// lands); the rest of the schedule then shifts one slot earlier.
	data := tetris.BoardData{Incoming: [tetris.GarbageScheduleSlots]uint32{0, 3, 1, 0, 0, 0, 0, 0}}
	board := tetris.BoardFromRows("[][][][][]            ")

	_, newData := board.HardDrop(false, data)
	assert.Equal(t, uint32(3), newData.Incoming[0])
	assert.Equal(t, uint32(1), newData.Incoming[1])
}

package tetris

import "math/bits"

// BoardData carries the counters that travel alongside a board through a
// search path: back-to-back state, combo count, cumulative attack produced
// since the search root, simulated permanent-garbage rows, and the
// incoming-garbage schedule (spec.md §3).
type BoardData struct {
	B2B              bool
	Combo            uint32
	CumulativeAttack uint32
	SimulatedGarbage uint32
	Incoming         [GarbageScheduleSlots]uint32
}

// HardDrop clears completed rows from b (rows below SimulatedGarbage never
// clear), updates combo/b2b/attack bookkeeping, and otherwise inserts
// scheduled garbage. allSpin marks whether the piece that was just locked
// could not be nudged up/left/right (spec.md §4.1).
func (b Bitboard) HardDrop(allSpin bool, data BoardData) (Bitboard, BoardData) {
	newBoard := b
	newData := data

	rowsToClear := ^uint32(0)
	for _, col := range newBoard.Cols {
		rowsToClear &= col
	}
	rowsToClear &= ^uint32(0) << data.SimulatedGarbage

	cleared := 0
	for rowsToClear != 0 {
		row := bits.TrailingZeros32(rowsToClear)
		rowsToClear &= rowsToClear - 1 // clear lsb
		cleared++

		maskBelowRow := uint32(1<<uint(row)) - 1
		maskAboveRow := ^((maskBelowRow << 1) + 1)
		for i, col := range newBoard.Cols {
			below := col & maskBelowRow
			newBoard.Cols[i] = (col&maskAboveRow)>>1 | below
		}
		rowsToClear >>= 1
	}

	if cleared > 0 {
		newData.Combo++
		newData.B2B = allSpin || cleared == 4
		attack := clearAttack(allSpin, cleared)
		attack += comboBonus(newData.Combo)
		if isEmpty(newBoard) {
			attack += PerfectClear.Attack()
		}
		if data.B2B && newData.B2B {
			attack += B2BAttack
		}
		newData.CumulativeAttack += attack

		for i := range newData.Incoming {
			if attack <= newData.Incoming[i] {
				newData.Incoming[i] -= attack
				break
			}
			attack -= newData.Incoming[i]
			newData.Incoming[i] = 0
		}
	} else {
		newData.Combo = 0
		n := newData.Incoming[0]
		if n >= Height {
			for i := range newBoard.Cols {
				newBoard.Cols[i] = ^uint32(0)
			}
		} else if n > 0 {
			for i, col := range newBoard.Cols {
				newBoard.Cols[i] = (col << n) | (uint32(1)<<n - 1)
			}
		}
		newData.SimulatedGarbage += n
		newData.Incoming[0] = 0
	}

	// incoming[0] has been handled above (inserted on a non-clearing lock,
	// reduced by attack on a clear); merge incoming[1] into it and age the
	// rest of the schedule forward by one placement step.
	newData.Incoming[0] += newData.Incoming[1]
	copy(newData.Incoming[1:], newData.Incoming[2:])

	return newBoard, newData
}

func isEmpty(b Bitboard) bool {
	for _, col := range b.Cols {
		if col != 0 {
			return false
		}
	}
	return true
}

package tetris

import "fmt"

const (
	// Width is the number of playfield columns.
	Width = 10
	// Height is the bitboard's addressable row count: one bit per column word.
	Height = 32
	// CeilingRow is the row above which the board is considered dead (spec.md §3).
	CeilingRow = 29

	// GarbageScheduleSlots is the width of the incoming-garbage schedule.
	GarbageScheduleSlots = 8
	// PlacementsPerTick approximates the server's tick rate for converting a
	// garbage delay (in ticks) into "placements from now" (spec.md §9 Open Question).
	PlacementsPerTick = 2

	// B2BAttack is the bonus added when a back-to-back clear follows another.
	B2BAttack uint32 = 1
)

// ClearName classifies a line clear for the attack table below.
type ClearName uint8

const (
	Single ClearName = iota
	Double
	Triple
	Quad
	AllSpinSingle
	AllSpinDouble
	AllSpinTriple
	PerfectClear
)

// Attack returns the wire-exact attack value for a clear type (spec.md §4.1).
func (c ClearName) Attack() uint32 {
	switch c {
	case Single:
		return 0
	case Double:
		return 1
	case Triple:
		return 2
	case Quad:
		return 4
	case AllSpinSingle:
		return 4
	case AllSpinDouble:
		return 4
	case AllSpinTriple:
		return 6
	case PerfectClear:
		return 10
	default:
		return 0
	}
}

// ComboTable is indexed by combo count, saturating at the last entry.
var ComboTable = [...]uint32{0, 0, 1, 1, 1, 2, 2, 3, 3, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4}

func comboBonus(combo uint32) uint32 {
	if int(combo) >= len(ComboTable) {
		return ComboTable[len(ComboTable)-1]
	}
	return ComboTable[combo]
}

func clearAttack(allSpin bool, lines int) uint32 {
	if allSpin {
		switch lines {
		case 1:
			return AllSpinSingle.Attack()
		case 2:
			return AllSpinDouble.Attack()
		case 3:
			return AllSpinTriple.Attack()
		default:
			panic(fmt.Sprintf("impossible all-spin clear of %d lines", lines))
		}
	}
	switch lines {
	case 1:
		return Single.Attack()
	case 2:
		return Double.Attack()
	case 3:
		return Triple.Attack()
	case 4:
		return Quad.Attack()
	default:
		panic(fmt.Sprintf("impossible clear of %d lines", lines))
	}
}

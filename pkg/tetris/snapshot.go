package tetris

import (
	"math/rand/v2"

	"github.com/kagedrop/bot/pkg/piece"
)

// Snapshot is a single periodic state delivered by the server: the board,
// the piece currently falling, the upcoming queue, hold state, combo/b2b
// counters and the incoming-garbage schedule (spec.md §3).
type Snapshot struct {
	Board    Bitboard
	Falling  piece.FallingPiece
	Queue    []piece.Shape
	Held     piece.Shape
	HeldSet  bool
	CanHold  bool
	Combo    uint32
	B2B      bool
	Incoming [GarbageScheduleSlots]uint32
}

// ExtendQueue appends shuffled 7-bag groups to Queue until it holds at
// least n pieces, so lookahead can run past the guaranteed preview (spec.md
// §1 Non-goals: "extends the known queue with random bags for lookahead").
// Uses math/rand/v2, since the bot never needs to reproduce server RNG.
func (s *Snapshot) ExtendQueue(n int) {
	for len(s.Queue) < n {
		bag := []piece.Shape{piece.I, piece.J, piece.L, piece.O, piece.S, piece.T, piece.Z}
		rand.Shuffle(len(bag), func(i, j int) { bag[i], bag[j] = bag[j], bag[i] })
		s.Queue = append(s.Queue, bag...)
	}
}

// GarbageFromDelays converts a list of server-tick delays into the 8-slot
// "placements from now" schedule, assuming PlacementsPerTick placements per
// tick (spec.md §6, §9 Open Question).
func GarbageFromDelays(delays []int) [GarbageScheduleSlots]uint32 {
	var incoming [GarbageScheduleSlots]uint32
	for _, delay := range delays {
		slot := delay * PlacementsPerTick
		if slot >= GarbageScheduleSlots {
			slot = GarbageScheduleSlots - 1
		}
		incoming[slot]++
	}
	return incoming
}

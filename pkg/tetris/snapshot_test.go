package tetris_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kagedrop/bot/pkg/piece"
	"github.com/kagedrop/bot/pkg/tetris"
)

func TestExtendQueueFillsToRequestedLength(t *testing.T) {
	s := tetris.Snapshot{Queue: []piece.Shape{piece.T}}
	s.ExtendQueue(10)
	assert.GreaterOrEqual(t, len(s.Queue), 10)
	assert.Equal(t, piece.T, s.Queue[0])
}

func TestExtendQueueIsNoopWhenAlreadyLongEnough(t *testing.T) {
	queue := []piece.Shape{piece.I, piece.J, piece.L}
	s := tetris.Snapshot{Queue: queue}
	s.ExtendQueue(2)
	assert.Equal(t, queue, s.Queue)
}

func TestExtendQueueAddsFullSevenBagGroups(t *testing.T) {
	s := tetris.Snapshot{}
	s.ExtendQueue(1)

	// a single extension appends whole 7-bags, so even asking for one piece
	// yields a multiple of 7 and every shape appears exactly once per bag.
	assert.Equal(t, 0, len(s.Queue)%piece.NumShapes)

	seen := map[piece.Shape]int{}
	for _, s := range s.Queue[:piece.NumShapes] {
		seen[s]++
	}
	assert.Len(t, seen, piece.NumShapes)
}

func TestGarbageFromDelaysClampsToLastSlot(t *testing.T) {
	incoming := tetris.GarbageFromDelays([]int{0, 1, 100})
	assert.Equal(t, uint32(1), incoming[0])
	assert.Equal(t, uint32(1), incoming[tetris.PlacementsPerTick])
	assert.Equal(t, uint32(1), incoming[tetris.GarbageScheduleSlots-1])
}

func TestGarbageFromDelaysAccumulatesSameSlot(t *testing.T) {
	incoming := tetris.GarbageFromDelays([]int{0, 0, 0})
	assert.Equal(t, uint32(3), incoming[0])
}

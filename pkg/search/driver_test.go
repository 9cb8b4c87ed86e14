package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kagedrop/bot/pkg/eval"
	"github.com/kagedrop/bot/pkg/piece"
	"github.com/kagedrop/bot/pkg/tetris"
)

func smallOptions() Options {
	return Options{
		LookaheadDepth:  2,
		DepthZeroWidth:  10,
		MaxSearchWidth:  10,
		BranchingFactor: 0,
		Weights:         eval.DefaultWeights,
	}
}

func TestSuggestReturnsHoldWhenNoHeldPiece(t *testing.T) {
	snap := tetris.Snapshot{
		Falling: piece.New(piece.T),
		Queue:   []piece.Shape{piece.I, piece.J},
	}

	cmds := Suggest(snap, smallOptions())
	assert.Equal(t, []tetris.Command{tetris.Hold}, cmds)
}

func TestSuggestReturnsDeathWiggleWhenNoPlacementExists(t *testing.T) {
	rows := make([]string, 0, 24)
	for i := 0; i < 24; i++ {
		rows = append(rows, "[][][][][][][][][][]")
	}

	snap := tetris.Snapshot{
		Board:   tetris.BoardFromRows(rows...),
		Falling: piece.New(piece.T),
		Held:    piece.O,
		HeldSet: true,
		CanHold: true,
		Queue:   []piece.Shape{piece.I, piece.J},
	}

	cmds := Suggest(snap, smallOptions())
	assert.Equal(t, deathWiggle, cmds)
}

func TestSuggestReturnsNonemptySequenceOnOpenBoard(t *testing.T) {
	snap := tetris.Snapshot{
		Falling: piece.New(piece.T),
		Held:    piece.O,
		HeldSet: true,
		CanHold: true,
		Queue:   []piece.Shape{piece.I, piece.J},
	}

	cmds := Suggest(snap, smallOptions())
	require.NotEmpty(t, cmds)
	assert.NotEqual(t, deathWiggle, cmds)
}

func TestSuggestExtendsQueueWhenTooShort(t *testing.T) {
	snap := tetris.Snapshot{
		Falling: piece.New(piece.T),
		Held:    piece.O,
		HeldSet: true,
		CanHold: true,
		Queue:   nil,
	}

	assert.NotPanics(t, func() {
		Suggest(snap, smallOptions())
	})
}

func TestLaunchHaltReturnsSuggestion(t *testing.T) {
	snap := tetris.Snapshot{
		Falling: piece.New(piece.T),
		Held:    piece.O,
		HeldSet: true,
		CanHold: true,
		Queue:   []piece.Shape{piece.I, piece.J},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	h, out := Launch(ctx, snap, smallOptions())
	select {
	case result := <-out:
		require.NotEmpty(t, result)
	case <-time.After(5 * time.Second):
		t.Fatal("search did not complete in time")
	}

	// Halt after completion returns the same recorded result.
	result := h.Halt()
	require.NotEmpty(t, result)
}

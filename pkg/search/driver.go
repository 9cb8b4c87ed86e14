package search

import (
	"context"
	"sync"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/seekerror/stdlib/pkg/util/iox"

	"github.com/kagedrop/bot/pkg/eval"
	"github.com/kagedrop/bot/pkg/movegen"
	"github.com/kagedrop/bot/pkg/tetris"
)

// Options configures a search run (spec.md §4.5, §6).
type Options struct {
	// LookaheadDepth is the number of queue pieces considered past the
	// falling piece. 0 considers only the current piece.
	LookaheadDepth int
	// DepthZeroWidth caps how many depth-0 placements get expanded.
	DepthZeroWidth int
	// MaxSearchWidth caps how many placements get expanded at depth >= 1.
	MaxSearchWidth int
	// BranchingFactor, if nonzero, caps how many children a single node may
	// contribute to the next depth (keeping only its top BranchingFactor).
	BranchingFactor int
	// Weights is the evaluator's heuristic weighting.
	Weights eval.Weights
}

// DefaultOptions mirrors akirobo.rs's tuned constants.
var DefaultOptions = Options{
	LookaheadDepth:  6,
	DepthZeroWidth:  30,
	MaxSearchWidth:  500,
	BranchingFactor: 0,
	Weights:         eval.DefaultWeights,
}

// deathWiggle is emitted when no placement at all is reachable: the board
// is effectively dead, so the bot shakes in place rather than topping out
// silently (spec.md §4.5 edge case).
var deathWiggle = []tetris.Command{tetris.SonicLeft, tetris.SonicRight, tetris.SonicLeft, tetris.SonicRight}

// Suggest runs the lookahead search synchronously and returns the command
// sequence for the best placement found, grounded on akirobo.rs's
// suggest_action. If genesis has no held piece, the hold slot is required
// non-empty (spec.md §3) so Suggest short-circuits to a single Hold
// (spec.md §7, scenario S6) instead of searching.
func Suggest(genesis tetris.Snapshot, opt Options) []tetris.Command {
	if !genesis.HeldSet {
		return []tetris.Command{tetris.Hold}
	}
	genesis.ExtendQueue(opt.LookaheadDepth)

	genesisData := tetris.BoardData{
		B2B:      genesis.B2B,
		Combo:    genesis.Combo,
		Incoming: genesis.Incoming,
	}

	levels := make([][]*Node, opt.LookaheadDepth+1)
	var seq uint64

	firstPiece := genesis.Falling.Shape
	for placement, action := range movegen.GenerateWithActions(genesis.Board, firstPiece) {
		n := NewNode(genesis.Board, placement, genesis.Held, nil, genesisData, opt.Weights, seq)
		seq++
		n.rootAction = action
		levels[0] = append(levels[0], n)
	}
	if genesis.CanHold {
		for placement, action := range movegen.GenerateWithActions(genesis.Board, genesis.Held) {
			n := NewNode(genesis.Board, placement, firstPiece, nil, genesisData, opt.Weights, seq)
			seq++
			n.rootAction = append([]tetris.Command{tetris.Hold}, action...)
			levels[0] = append(levels[0], n)
		}
	}

	for depth := 1; depth <= opt.LookaheadDepth; depth++ {
		width := opt.MaxSearchWidth
		if depth == 1 {
			width = opt.DepthZeroWidth
		}
		expand := topK(levels[depth-1], width)
		nextPiece := genesis.Queue[depth-1]

		for _, parent := range expand {
			var children []*Node
			for placement := range movegen.Generate(parent.BoardAfterClears, nextPiece) {
				n := NewNode(parent.BoardAfterClears, placement, parent.Held, parent, tetris.BoardData{}, opt.Weights, seq)
				seq++
				children = append(children, n)
			}
			for placement := range movegen.Generate(parent.BoardAfterClears, parent.Held) {
				n := NewNode(parent.BoardAfterClears, placement, nextPiece, parent, tetris.BoardData{}, opt.Weights, seq)
				seq++
				children = append(children, n)
			}

			if opt.BranchingFactor > 0 {
				children = topK(children, opt.BranchingFactor)
			}
			levels[depth] = append(levels[depth], children...)
		}
	}

	for d := len(levels) - 1; d >= 0; d-- {
		if top := best(levels[d]); top != nil {
			return top.RootAction()
		}
	}
	return deathWiggle
}

// Handle lets a caller halt an in-flight asynchronous search.
type Handle interface {
	Halt() []tetris.Command
}

// Launch runs Suggest on a background goroutine and streams its (single)
// result on the returned channel, grounded on teacher's searchctl.Launcher
// pattern (iox.AsyncCloser-gated handle, contextx quit-cancellation).
func Launch(ctx context.Context, genesis tetris.Snapshot, opt Options) (Handle, <-chan []tetris.Command) {
	out := make(chan []tetris.Command, 1)
	h := &handle{quit: iox.NewAsyncCloser(), done: iox.NewAsyncCloser()}
	go h.process(ctx, genesis, opt, out)
	return h, out
}

type handle struct {
	quit, done iox.AsyncCloser

	mu     sync.Mutex
	result []tetris.Command
}

func (h *handle) process(ctx context.Context, genesis tetris.Snapshot, opt Options, out chan []tetris.Command) {
	defer h.done.Close()
	defer close(out)

	wctx, cancel := contextx.WithQuitCancel(ctx, h.quit.Closed())
	defer cancel()
	if contextx.IsCancelled(wctx) {
		return
	}

	result := Suggest(genesis, opt)

	h.mu.Lock()
	h.result = result
	h.mu.Unlock()

	logw.Debugf(ctx, "search suggestion: %v", tetris.FormatCommands(result))
	out <- result
}

func (h *handle) Halt() []tetris.Command {
	h.quit.Close()
	<-h.done.Closed()

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.result
}

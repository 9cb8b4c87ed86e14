// Package engine encapsulates bot session state: the current snapshot,
// search options, and the active lookahead search, grounded on teacher's
// pkg/engine.Engine (functional options, mutex-guarded state, Reset/
// Analyze/Halt shape) but replacing the chess position with a tetris
// snapshot and alpha-beta with the width-limited lookahead tree.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"

	"github.com/kagedrop/bot/pkg/eval"
	"github.com/kagedrop/bot/pkg/search"
	"github.com/kagedrop/bot/pkg/tetris"
)

var version = build.NewVersion(0, 1, 0)

// Options are search creation options, overlaying search.Options with
// zero-value defaults resolved against search.DefaultOptions.
type Options struct {
	LookaheadDepth  uint
	DepthZeroWidth  uint
	MaxSearchWidth  uint
	BranchingFactor uint
	Weights         eval.Weights
}

func (o Options) String() string {
	return fmt.Sprintf("{lookahead=%v, w0=%v, wmax=%v, branch=%v}", o.LookaheadDepth, o.DepthZeroWidth, o.MaxSearchWidth, o.BranchingFactor)
}

func (o Options) resolve() search.Options {
	opt := search.DefaultOptions
	if o.LookaheadDepth > 0 {
		opt.LookaheadDepth = int(o.LookaheadDepth)
	}
	if o.DepthZeroWidth > 0 {
		opt.DepthZeroWidth = int(o.DepthZeroWidth)
	}
	if o.MaxSearchWidth > 0 {
		opt.MaxSearchWidth = int(o.MaxSearchWidth)
	}
	opt.BranchingFactor = int(o.BranchingFactor)
	if o.Weights != (eval.Weights{}) {
		opt.Weights = o.Weights
	}
	return opt
}

// Engine encapsulates one bot session: the current snapshot, tunable
// search options, and the active asynchronous search, if any.
type Engine struct {
	name, author string
	opts         Options

	snap   tetris.Snapshot
	active search.Handle
	mu     sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets default runtime search options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{name: name, author: author}
	for _, fn := range opts {
		fn(e)
	}

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts
}

func (e *Engine) SetLookaheadDepth(depth uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.LookaheadDepth = depth
}

func (e *Engine) SetWeights(w eval.Weights) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Weights = w
}

// Snapshot returns the current snapshot.
func (e *Engine) Snapshot() tetris.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.snap
}

// Reset installs a new snapshot as the engine's current state, halting any
// active search against the previous one.
func (e *Engine) Reset(ctx context.Context, snap tetris.Snapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.haltSearchIfActive(ctx)
	e.snap = snap

	logw.Infof(ctx, "New snapshot: held=%v queue=%v", e.snap.Held, e.snap.Queue)
}

// Suggest runs the search synchronously against the current snapshot.
func (e *Engine) Suggest(ctx context.Context) []tetris.Command {
	e.mu.Lock()
	snap, opt := e.snap, e.opts.resolve()
	e.mu.Unlock()

	logw.Infof(ctx, "Suggest %v", opt)
	return search.Suggest(snap, opt)
}

// Analyze launches the search asynchronously against the current snapshot.
func (e *Engine) Analyze(ctx context.Context) (<-chan []tetris.Command, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active != nil {
		return nil, fmt.Errorf("search already active")
	}

	logw.Infof(ctx, "Analyze %v", e.opts)

	handle, out := search.Launch(ctx, e.snap, e.opts.resolve())
	e.active = handle
	return out, nil
}

// Halt halts the active search and returns its result, if any.
func (e *Engine) Halt(ctx context.Context) ([]tetris.Command, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Halt")

	cmds, ok := e.haltSearchIfActive(ctx)
	if !ok {
		return nil, fmt.Errorf("no active search")
	}
	return cmds, nil
}

func (e *Engine) haltSearchIfActive(ctx context.Context) ([]tetris.Command, bool) {
	if e.active != nil {
		cmds := e.active.Halt()
		logw.Infof(ctx, "Search halted: %v", tetris.FormatCommands(cmds))

		e.active = nil
		return cmds, true
	}
	return nil, false
}

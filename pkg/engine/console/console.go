// Package console is a line-oriented debug driver for the bot engine,
// grounded on teacher's pkg/engine/console (switch-on-first-token loop,
// iox.AsyncCloser lifecycle, ASCII board renderer) re-themed from a chess
// board to a tetris playfield.
package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"

	"github.com/kagedrop/bot/pkg/engine"
	"github.com/kagedrop/bot/pkg/piece"
	"github.com/kagedrop/bot/pkg/tetris"
)

const ProtocolName = "console"

// Driver implements a console driver for debugging.
type Driver struct {
	iox.AsyncCloser

	e *engine.Engine

	out    chan<- string
	active atomic.Bool // user is waiting for the engine to suggest
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		out:         out,
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())
	d.printBoard(ctx)

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Split(strings.TrimSpace(line), " ")
			if len(parts) == 0 {
				break
			}

			cmd := parts[0]
			args := parts[1:]

			switch strings.ToLower(cmd) {
			case "reset", "r":
				// reset [<piece letter>]

				d.ensureInactive(ctx)

				shape := piece.I
				if len(args) > 0 {
					if s, ok := piece.ParseShape(strings.ToUpper(args[0])); ok {
						shape = s
					}
				}
				d.e.Reset(ctx, tetris.Snapshot{
					Falling: piece.New(shape),
					Held:    shape,
					HeldSet: true,
					CanHold: true,
				})
				d.printBoard(ctx)

			case "print", "p":
				d.printBoard(ctx)

			case "analyze", "a":
				d.ensureInactive(ctx)

				out, err := d.e.Analyze(ctx)
				if err != nil {
					logw.Errorf(ctx, "Analyze failed: %v", err)
					return
				}
				d.active.Store(true)

				go func() {
					for cmds := range out {
						d.searchCompleted(ctx, cmds)
					}
				}()

			case "suggest", "s":
				d.ensureInactive(ctx)
				d.searchCompleted(ctx, d.e.Suggest(ctx))

			case "depth", "d":
				if len(args) > 0 {
					depth, _ := strconv.Atoi(args[0])
					d.e.SetLookaheadDepth(uint(depth))
				}

			case "halt", "stop":
				cmds, err := d.e.Halt(ctx)
				if err == nil {
					d.searchCompleted(ctx, cmds)
				}

			case "quit", "exit", "q":
				d.ensureInactive(ctx)
				return

			case "":
				// ignore empty command

			default:
				d.out <- fmt.Sprintf("unrecognized command: '%v'", cmd)
			}

		case <-d.Closed():
			d.ensureInactive(ctx)

			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

func (d *Driver) ensureInactive(ctx context.Context) {
	d.active.Store(false)
	_, _ = d.e.Halt(ctx)
}

func (d *Driver) searchCompleted(ctx context.Context, cmds []tetris.Command) {
	if d.active.CompareAndSwap(true, false) || len(cmds) > 0 {
		d.out <- fmt.Sprintf("suggestion %v", tetris.FormatCommands(cmds))
	}
}

const (
	horizontal = "  --------------------"
	vertical   = "|"
)

func (d *Driver) printBoard(ctx context.Context) {
	snap := d.e.Snapshot()

	d.out <- ""
	d.out <- horizontal
	for row := tetris.CeilingRow; row >= 0; row-- {
		var sb strings.Builder
		sb.WriteString(vertical)
		for col := 0; col < tetris.Width; col++ {
			if snap.Board.At(row, col) {
				sb.WriteString("[]")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString(vertical)
		d.out <- sb.String()
	}
	d.out <- horizontal
	held := "none"
	if snap.HeldSet {
		held = snap.Held.String()
	}
	d.out <- fmt.Sprintf("falling: %v  held: %v (can_hold=%v)  combo: %v  b2b: %v", snap.Falling.Shape, held, snap.CanHold, snap.Combo, snap.B2B)
	d.out <- fmt.Sprintf("queue:   %v", snap.Queue)
	d.out <- ""
}

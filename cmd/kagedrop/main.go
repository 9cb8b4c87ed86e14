// kagedrop is an autonomous player for a competitive falling-block game: it
// connects to a server over websocket, and for each snapshot it receives,
// runs a lookahead search and sends back the resulting command sequence.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/seekerror/logw"

	"github.com/kagedrop/bot/pkg/engine"
	"github.com/kagedrop/bot/pkg/engine/console"
	"github.com/kagedrop/bot/pkg/transport"
)

var (
	server         = flag.String("server", "", "Game server websocket URL (empty: use console protocol on stdin)")
	lookaheadDepth = flag.Uint("lookahead", 6, "Queue pieces considered past the falling piece")
	depthZeroWidth = flag.Uint("w0", 30, "Placements expanded at depth 1")
	maxSearchWidth = flag.Uint("wmax", 500, "Placements expanded beyond depth 1")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: kagedrop [options]

kagedrop is an autonomous lookahead-search bot.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "kagedrop", "kagedrop", engine.WithOptions(engine.Options{
		LookaheadDepth: *lookaheadDepth,
		DepthZeroWidth: *depthZeroWidth,
		MaxSearchWidth: *maxSearchWidth,
	}))

	if *server == "" {
		in := engine.ReadLines(ctx, os.Stdin)
		driver, out := console.NewDriver(ctx, e, in)
		go engine.WriteLines(ctx, os.Stdout, out)

		<-driver.Closed()
		return
	}

	runServer(ctx, e, *server)
}

func runServer(ctx context.Context, e *engine.Engine, url string) {
	client, states, err := transport.Dial(ctx, url)
	if err != nil {
		logw.Exitf(ctx, "Dial %v failed: %v", url, err)
	}
	defer client.Close()

	opt := e.Options()
	for state := range states {
		if state.Dead {
			logw.Infof(ctx, "Game over")
			return
		}

		snap := state.ToSnapshot(int(opt.LookaheadDepth))
		e.Reset(ctx, snap)

		cmds := e.Suggest(ctx)
		logw.Infof(ctx, "Suggestion: %v", cmds)
		if err := client.SendAll(cmds); err != nil {
			logw.Errorf(ctx, "Send failed: %v", err)
			return
		}
	}
}

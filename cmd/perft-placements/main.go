// perft-placements is a move-generator debugging tool: it reports how many
// distinct placements pkg/movegen finds for a given board and piece, and
// how long that takes, grounded on teacher's cmd/perft.
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/seekerror/logw"

	"github.com/kagedrop/bot/pkg/movegen"
	"github.com/kagedrop/bot/pkg/piece"
	"github.com/kagedrop/bot/pkg/tetris"
)

var (
	shape = flag.String("piece", "T", "Piece shape: I, J, L, O, S, T, Z")
	rows  = flag.String("board", "", "Semicolon-separated ASCII board rows, bottom row first (default: empty)")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	s, ok := piece.ParseShape(strings.ToUpper(*shape))
	if !ok {
		logw.Exitf(ctx, "Invalid piece '%v'", *shape)
	}

	var board tetris.Bitboard
	if *rows != "" {
		board = tetris.BoardFromRows(strings.Split(*rows, ";")...)
	}

	start := time.Now()
	placements := movegen.Generate(board, s)
	duration := time.Since(start)

	allSpins := 0
	for p := range placements {
		if p.AllSpin {
			allSpins++
		}
	}

	println(fmt.Sprintf("perft-placements,piece=%v,placements=%v,all_spin=%v,us=%v", s, len(placements), allSpins, duration.Microseconds()))
}

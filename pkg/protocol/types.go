// Package protocol defines the JSON wire types exchanged with the game
// server and translates them to/from pkg/tetris.Snapshot, grounded on
// original_source's botris/types.rs (serde rename_all = "camelCase"/
// "snake_case" becomes Go struct tags here; encoding/json is the only
// library that handles that well, so this package stays stdlib-justified
// per DESIGN.md).
package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/kagedrop/bot/pkg/piece"
	"github.com/kagedrop/bot/pkg/tetris"
)

// Block is a single board cell as the server describes it: a shape letter,
// "G" for a garbage cell, or nil/absent for empty.
type Block struct {
	set   bool
	shape piece.Shape
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*b = Block{}
		return nil
	}
	if *s == "G" {
		*b = Block{set: true}
		return nil
	}
	shape, ok := piece.ParseShape(*s)
	if !ok {
		return fmt.Errorf("protocol: invalid block %q", *s)
	}
	*b = Block{set: true, shape: shape}
	return nil
}

// Board is the server's row-major board, row 0 at the bottom (matching
// pkg/tetris.Bitboard's convention, so no flip is needed on decode).
type Board [][tetris.Width]Block

// GarbageLine is one scheduled incoming garbage attack, delay in server ticks.
type GarbageLine struct {
	Delay int `json:"delay"`
}

// PieceData is a piece's identity and pose as the server reports it.
type PieceData struct {
	Piece    piece.Shape `json:"piece"`
	X        int16       `json:"x"`
	Y        int16       `json:"y"`
	Rotation uint16      `json:"rotation"`
}

// GameState is one periodic snapshot from the server (botris/types.rs's
// GameState, camelCase fields).
type GameState struct {
	Board         Board         `json:"board"`
	Bag           []piece.Shape `json:"bag"`
	Queue         []piece.Shape `json:"queue"`
	GarbageQueued []GarbageLine `json:"garbageQueued"`
	Held          *piece.Shape  `json:"held"`
	Current       PieceData     `json:"current"`
	CanHold       bool          `json:"canHold"`
	Combo         uint32        `json:"combo"`
	B2B           bool          `json:"b2b"`
	PiecesPlaced  uint32        `json:"piecesPlaced"`
	Dead          bool          `json:"dead"`
}

// ToSnapshot converts a decoded GameState into a tetris.Snapshot, extending
// the queue with random bags up to lookaheadDepth. If the server reports no
// held piece, the returned snapshot has HeldSet=false; pkg/search.Suggest
// short-circuits that case to [Hold] itself (spec.md §3's "required
// non-empty" invariant, §7's required-Hold error path).
func (g GameState) ToSnapshot(lookaheadDepth int) tetris.Snapshot {
	var board tetris.Bitboard
	for row, cells := range g.Board {
		for col, cell := range cells {
			board.Set(row, col, cell.set)
		}
	}

	queue := append(append([]piece.Shape(nil), g.Queue...), g.Bag...)

	snap := tetris.Snapshot{
		Board:    board,
		Falling:  piece.New(g.Current.Piece),
		Queue:    queue,
		CanHold:  g.CanHold,
		Combo:    g.Combo,
		B2B:      g.B2B,
		Incoming: tetris.GarbageFromDelays(delays(g.GarbageQueued)),
	}
	if g.Held != nil {
		snap.Held = *g.Held
		snap.HeldSet = true
	}
	snap.ExtendQueue(lookaheadDepth)
	return snap
}

func delays(lines []GarbageLine) []int {
	out := make([]int, len(lines))
	for i, l := range lines {
		out[i] = l.Delay
	}
	return out
}

// CommandMessage is the outbound message the bot sends for a placement: a
// single queued command (the server expects one command per message).
type CommandMessage struct {
	Command tetris.Command `json:"command"`
}

// EncodeCommands renders a command sequence as the wire messages to send,
// in order.
func EncodeCommands(cmds []tetris.Command) []CommandMessage {
	out := make([]CommandMessage, len(cmds))
	for i, c := range cmds {
		out[i] = CommandMessage{Command: c}
	}
	return out
}

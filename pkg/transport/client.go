// Package transport is the websocket adaptor between the bot and the game
// server: it decodes inbound game-state frames and encodes outbound
// commands. Grounded on cmd/livechess-uci's adaptor (NewFeed-style
// constructor, background process goroutine, atomic.Pointer + iox.Pulse
// wakeup) but wired to gorilla/websocket + JSON instead of the EBoard SDK.
package transport

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"

	"github.com/kagedrop/bot/pkg/protocol"
	"github.com/kagedrop/bot/pkg/tetris"
)

// Client is a live connection to the game server.
type Client struct {
	conn *websocket.Conn

	last  atomic.Pointer[protocol.GameState]
	pulse *iox.Pulse
}

// Dial opens a websocket connection to url and starts decoding inbound
// frames in the background. The returned channel carries every decoded
// GameState; it is closed when the connection ends.
func Dial(ctx context.Context, url string) (*Client, <-chan protocol.GameState, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, nil, err
	}

	c := &Client{conn: conn, pulse: iox.NewPulse()}
	out := make(chan protocol.GameState, 1)
	go c.process(ctx, out)
	return c, out, nil
}

func (c *Client) process(ctx context.Context, out chan<- protocol.GameState) {
	defer close(out)
	defer c.conn.Close()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			logw.Debugf(ctx, "transport: read failed, closing: %v", err)
			return
		}

		var state protocol.GameState
		if err := json.Unmarshal(data, &state); err != nil {
			logw.Errorf(ctx, "transport: malformed game state: %v", err)
			continue
		}

		c.last.Store(&state)
		c.pulse.Emit()

		select {
		case out <- state:
		case <-ctx.Done():
			return
		}
	}
}

// Last returns the most recently decoded game state, if any has arrived.
func (c *Client) Last() (protocol.GameState, bool) {
	if p := c.last.Load(); p != nil {
		return *p, true
	}
	return protocol.GameState{}, false
}

// Pulse fires every time a new game state is decoded, for callers that want
// to wait without consuming from the state channel directly.
func (c *Client) Pulse() <-chan struct{} {
	return c.pulse.Chan()
}

// Send writes a single command to the server.
func (c *Client) Send(cmd tetris.Command) error {
	return c.conn.WriteJSON(protocol.CommandMessage{Command: cmd})
}

// SendAll writes a command sequence to the server in order, stopping at the
// first write error.
func (c *Client) SendAll(cmds []tetris.Command) error {
	for _, cmd := range cmds {
		if err := c.Send(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chessmove-go/internal/render"
	"github.com/lgbarn/chessmove-go/internal/session"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSMessage is a client request.
type WSMessage struct {
	Type    string          `json:"type"`              // "move", "reset", "state", "ping"
	ID      string          `json:"id"`                // Request ID echoed in the response
	Payload json.RawMessage `json:"payload,omitempty"` // Type-specific payload
}

// WSResponse is a server reply.
type WSResponse struct {
	Type    string      `json:"type"`              // "state", "error", "pong"
	ID      string      `json:"id,omitempty"`      // Request ID
	Payload interface{} `json:"payload,omitempty"` // Response data
	Error   string      `json:"error,omitempty"`   // Error message if any
}

// MoveRequest is the payload of a "move" message.
type MoveRequest struct {
	Move string `json:"move"`
}

// wsClient is one connected player and their game.
type wsClient struct {
	conn     *websocket.Conn
	game     *session.Session
	log      zerolog.Logger
	sendChan chan WSResponse
}

// WebSocket upgrades the request and plays a fresh game on it until the
// client disconnects.
func (s *Server) WebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	id := atomic.AddUint64(&s.nextID, 1)
	log := s.log.With().Str("conn", strconv.FormatUint(id, 10)).Logger()

	game, err := session.New(s.cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("cannot start game")
		conn.WriteJSON(WSResponse{Type: "error", Error: err.Error()}) //nolint:errcheck
		conn.Close()
		return
	}

	atomic.AddInt64(&s.clients, 1)
	defer atomic.AddInt64(&s.clients, -1)
	log.Info().Str("remote", r.RemoteAddr).Msg("client connected")

	client := &wsClient{conn: conn, game: game, log: log, sendChan: make(chan WSResponse, 16)}
	done := make(chan struct{})
	go func() {
		client.writePump()
		close(done)
	}()
	client.readPump()
	<-done
	log.Info().Msg("client disconnected")
}

func (c *wsClient) writePump() {
	defer c.conn.Close()
	for msg := range c.sendChan {
		if err := c.conn.WriteJSON(msg); err != nil {
			c.log.Debug().Err(err).Msg("write failed")
			c.conn.Close()
			drain(c.sendChan)
			return
		}
	}
}

func (c *wsClient) readPump() {
	defer func() { close(c.sendChan) }()
	for {
		var msg WSMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		c.sendChan <- c.handleMessage(msg)
	}
}

func (c *wsClient) handleMessage(msg WSMessage) WSResponse {
	switch msg.Type {
	case "move":
		return c.handleMove(msg)
	case "reset":
		if err := c.game.Reset(); err != nil {
			return errorResponse(msg, err.Error())
		}
		return c.state(msg)
	case "state":
		return c.state(msg)
	case "ping":
		return WSResponse{Type: "pong", ID: msg.ID}
	default:
		return errorResponse(msg, "unknown message type")
	}
}

func (c *wsClient) handleMove(msg WSMessage) WSResponse {
	var req MoveRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		return errorResponse(msg, "invalid payload")
	}
	if err := c.game.Play(req.Move); err != nil {
		return errorResponse(msg, err.Error())
	}
	return c.state(msg)
}

func (c *wsClient) state(msg WSMessage) WSResponse {
	return WSResponse{Type: "state", ID: msg.ID, Payload: render.NewSnapshot(c.game.Board())}
}

// drain discards responses until the read side closes the channel.
func drain(ch <-chan WSResponse) {
	for range ch { //nolint:revive
	}
}

func errorResponse(msg WSMessage, text string) WSResponse {
	return WSResponse{Type: "error", ID: msg.ID, Error: text}
}

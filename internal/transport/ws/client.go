package ws

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Connection is one client socket. roomCode/playerID are empty until the
// client's first create-room, join-room, or resume intent binds it to a seat.
type Connection struct {
	ws       *websocket.Conn
	send     chan []byte
	roomCode string
	playerID string
}

func newConnection(ws *websocket.Conn) *Connection {
	return &Connection{
		ws:   ws,
		send: make(chan []byte, 256),
	}
}

func (c *Connection) bound() bool {
	return c.roomCode != ""
}

// trySend queues a frame, dropping it if the client's buffer is full rather
// than blocking the hub.
func (c *Connection) trySend(data []byte) {
	select {
	case c.send <- data:
	default:
	}
}

// sendEvent writes a direct reply to this client only.
func (c *Connection) sendEvent(event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	frame, err := json.Marshal(&Message{Type: event, Payload: data})
	if err != nil {
		return
	}
	c.trySend(frame)
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.ws.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

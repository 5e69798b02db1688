package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Hub tracks which connection belongs to which player in which room and
// fans events out. It implements game.Broadcaster.
type Hub struct {
	// roomCode -> playerID -> conn
	conns map[string]map[string]*Connection

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *unregisterMessage
	broadcast  chan *broadcastMessage
}

type broadcastMessage struct {
	roomCode string
	toPlayer string // empty means the whole room
	message  *Message
}

// unregisterMessage snapshots the seat keys at send time. The gateway may
// rebind or clear the connection's fields as soon as Unregister returns, so
// the hub goroutine must never read them.
type unregisterMessage struct {
	roomCode string
	playerID string
	conn     *Connection
}

// NewHub creates a new hub and starts its event loop.
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]map[string]*Connection),
		register:   make(chan *Connection),
		unregister: make(chan *unregisterMessage),
		broadcast:  make(chan *broadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.roomCode] == nil {
				h.conns[conn.roomCode] = make(map[string]*Connection)
			}
			// A reconnect replaces the stale connection for the same seat.
			if old, ok := h.conns[conn.roomCode][conn.playerID]; ok && old != conn {
				close(old.send)
			}
			h.conns[conn.roomCode][conn.playerID] = conn
			h.mu.Unlock()
			log.Printf("player %s connected to room %s", conn.playerID, conn.roomCode)

		case msg := <-h.unregister:
			h.mu.Lock()
			if players, ok := h.conns[msg.roomCode]; ok {
				if existing, ok := players[msg.playerID]; ok && existing == msg.conn {
					delete(players, msg.playerID)
					close(msg.conn.send)
					if len(players) == 0 {
						delete(h.conns, msg.roomCode)
					}
					log.Printf("player %s disconnected from room %s", msg.playerID, msg.roomCode)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.message)
			players := h.conns[msg.roomCode]
			if msg.toPlayer != "" {
				if conn, ok := players[msg.toPlayer]; ok {
					conn.trySend(data)
				}
			} else {
				for _, conn := range players {
					conn.trySend(data)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register binds a connection to its room and player.
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection. The seat keys are captured here, in the
// caller's goroutine, so the caller is free to clear or rebind the
// connection immediately afterwards.
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- &unregisterMessage{
		roomCode: conn.roomCode,
		playerID: conn.playerID,
		conn:     conn,
	}
}

// BroadcastToRoom sends an event to every connection in a room (implements
// game.Broadcaster).
func (h *Hub) BroadcastToRoom(roomCode string, event string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &broadcastMessage{
		roomCode: roomCode,
		message:  &Message{Type: event, Payload: data},
	}
}

// BroadcastToPlayer sends an event to one player only (implements
// game.Broadcaster).
func (h *Hub) BroadcastToPlayer(roomCode, playerID string, event string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &broadcastMessage{
		roomCode: roomCode,
		toPlayer: playerID,
		message:  &Message{Type: event, Payload: data},
	}
}

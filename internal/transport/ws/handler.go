package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"brainybunch/internal/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for dev
	},
}

// Gateway is the session gateway: it upgrades sockets, decodes client
// intents, invokes the round engine, and writes direct replies. Room-wide
// events flow back through the hub.
type Gateway struct {
	hub    *Hub
	svc    *game.Service
	tokens *TokenManager
}

func NewGateway(hub *Hub, svc *game.Service, tokens *TokenManager) *Gateway {
	return &Gateway{
		hub:    hub,
		svc:    svc,
		tokens: tokens,
	}
}

// ServeWS handles GET /v1/ws. The socket starts unbound; the first
// create-room, join-room, or resume intent claims a seat.
func (g *Gateway) ServeWS(w http.ResponseWriter, r *http.Request) {
	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	conn := newConnection(wsConn)
	go conn.writePump()
	g.readPump(conn)
}

func (g *Gateway) readPump(conn *Connection) {
	defer func() {
		if conn.bound() {
			g.hub.Unregister(conn)
			g.svc.Disconnect(context.Background(), conn.roomCode, conn.playerID)
		}
		conn.ws.Close()
	}()

	conn.ws.SetReadLimit(maxMessageSize)
	conn.ws.SetReadDeadline(time.Now().Add(pongWait))
	conn.ws.SetPongHandler(func(string) error {
		conn.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := conn.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket error: %v", err)
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			conn.sendEvent(game.EventError, &ErrorPayload{Code: "BAD_MESSAGE", Message: "malformed message"})
			continue
		}
		g.dispatch(conn, &msg)
	}
}

func (g *Gateway) dispatch(conn *Connection, msg *Message) {
	ctx := context.Background()

	switch msg.Type {
	case IntentCreateRoom:
		if conn.bound() {
			g.sendError(conn, game.ErrInvalidState)
			return
		}
		var req CreateRoomRequest
		if !g.decode(conn, msg.Payload, &req) {
			return
		}
		room, host, err := g.svc.CreateRoom(ctx, req.PlayerName)
		if err != nil {
			g.sendError(conn, err)
			return
		}
		g.bind(conn, room.Code, host.ID)
		g.welcome(conn, game.EventRoomCreated, room, host.ID)

	case IntentJoinRoom:
		if conn.bound() {
			g.sendError(conn, game.ErrInvalidState)
			return
		}
		var req JoinRoomRequest
		if !g.decode(conn, msg.Payload, &req) {
			return
		}
		room, player, err := g.svc.JoinRoom(ctx, req.RoomCode, req.PlayerName)
		if err != nil {
			g.sendError(conn, err)
			return
		}
		g.bind(conn, room.Code, player.ID)
		g.welcome(conn, game.EventRoomJoined, room, player.ID)

	case IntentResume:
		if conn.bound() {
			g.sendError(conn, game.ErrInvalidState)
			return
		}
		var req ResumeRequest
		if !g.decode(conn, msg.Payload, &req) {
			return
		}
		roomCode, playerID, err := g.tokens.Validate(req.Token)
		if err != nil {
			conn.sendEvent(game.EventError, &ErrorPayload{Code: "INVALID_TOKEN", Message: err.Error()})
			return
		}
		room, player, err := g.svc.Reconnect(ctx, roomCode, playerID)
		if err != nil {
			g.sendError(conn, err)
			return
		}
		g.bind(conn, room.Code, player.ID)
		g.welcome(conn, game.EventRoomJoined, room, player.ID)

	case IntentSelectCategory:
		var req SelectCategoryRequest
		if !g.requireBound(conn) || !g.decode(conn, msg.Payload, &req) {
			return
		}
		if err := g.svc.SetCategory(ctx, conn.roomCode, conn.playerID, req.Category); err != nil {
			g.sendError(conn, err)
		}

	case IntentSelectMode:
		var req SelectModeRequest
		if !g.requireBound(conn) || !g.decode(conn, msg.Payload, &req) {
			return
		}
		if err := g.svc.SetMode(ctx, conn.roomCode, conn.playerID, req.Mode); err != nil {
			g.sendError(conn, err)
		}

	case IntentStartGame:
		if !g.requireBound(conn) {
			return
		}
		if err := g.svc.StartGame(ctx, conn.roomCode, conn.playerID); err != nil {
			g.sendError(conn, err)
		}

	case IntentSubmitAnswer:
		var req SubmitAnswerRequest
		if !g.requireBound(conn) || !g.decode(conn, msg.Payload, &req) {
			return
		}
		outcome, err := g.svc.SubmitAnswer(ctx, conn.roomCode, conn.playerID, req.Answer, req.ElapsedMs)
		if err != nil {
			g.sendError(conn, err)
			return
		}
		// Private ack: nobody else learns correctness until the round
		// resolves.
		conn.sendEvent(game.EventAnswerReceived, outcome)

	case IntentLeaveRoom:
		if !g.requireBound(conn) {
			return
		}
		if err := g.svc.LeaveRoom(ctx, conn.roomCode, conn.playerID); err != nil {
			g.sendError(conn, err)
			return
		}
		g.hub.Unregister(conn)
		conn.roomCode, conn.playerID = "", ""

	default:
		conn.sendEvent(game.EventError, &ErrorPayload{Code: "UNKNOWN_INTENT", Message: "unknown intent: " + msg.Type})
	}
}

func (g *Gateway) bind(conn *Connection, roomCode, playerID string) {
	conn.roomCode = roomCode
	conn.playerID = playerID
	g.hub.Register(conn)
}

// welcome sends the direct reply for a successful create/join/resume,
// including the seat-resume token.
func (g *Gateway) welcome(conn *Connection, event string, room *game.Room, playerID string) {
	token, err := g.tokens.Issue(room.Code, playerID)
	if err != nil {
		log.Printf("token issue failed for room %s: %v", room.Code, err)
	}
	conn.sendEvent(event, &WelcomePayload{
		Room:     room.Snapshot(),
		PlayerID: playerID,
		Token:    token,
	})
}

func (g *Gateway) requireBound(conn *Connection) bool {
	if !conn.bound() {
		g.sendError(conn, game.ErrInvalidState)
		return false
	}
	return true
}

func (g *Gateway) decode(conn *Connection, payload json.RawMessage, v interface{}) bool {
	if err := json.Unmarshal(payload, v); err != nil {
		conn.sendEvent(game.EventError, &ErrorPayload{Code: "BAD_MESSAGE", Message: "malformed payload"})
		return false
	}
	return true
}

func (g *Gateway) sendError(conn *Connection, err error) {
	conn.sendEvent(game.EventError, &ErrorPayload{
		Code:    game.ErrorCode(err),
		Message: err.Error(),
	})
}

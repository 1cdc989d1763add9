package chat

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsReadTimeout  = 60 * time.Second
	wsPingInterval = 54 * time.Second
	wsWriteTimeout = 10 * time.Second
)

// outgoingFrame is written once per inbound frame.
type outgoingFrame struct {
	Type      string `json:"type"`
	Status    int    `json:"status"`
	Response  string `json:"response"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// handleWebSocket answers each text frame carrying a POST /ai-chat body with
// exactly one reply frame. Frames are handled in order.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[websocket] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	conn.SetReadLimit(maxBodyBytes)
	_ = conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	})

	go pingLoop(ctx, conn)

	log.Printf("[websocket] connection opened remote=%s", r.RemoteAddr)

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[websocket] read error: %v", err)
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(wsReadTimeout))

		if msgType != websocket.TextMessage {
			continue
		}

		req, ok := decodeRequest(bytes.NewReader(data))
		status, payload := h.reply(ctx, &req, ok)

		frame := outgoingFrame{
			Type:      "reply",
			Status:    status,
			Response:  payload.Response,
			Error:     payload.Error,
			Timestamp: time.Now().Unix(),
		}
		if status != http.StatusOK {
			frame.Type = "error"
		}

		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteJSON(frame); err != nil {
			log.Printf("[websocket] write reply failed: %v", err)
			return
		}
	}
}

// pingLoop keeps idle connections alive. WriteControl may run alongside WriteJSON.
func pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout)); err != nil {
				return
			}
		}
	}
}

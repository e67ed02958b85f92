package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/hlog"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Key messages are tiny
	maxMessageSize = 512
)

// handleWS upgrades to a WebSocket over which the client sends key messages
// ({"key":"A"}) and receives one keyRes per message. The first frame is the
// current snapshot with an empty signal.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	logger := hlog.FromRequest(r).With().Str("gameId", sess.ID).Logger()
	logger.Debug().Msg("websocket connected")

	release := sess.Attach()
	defer release()

	send := make(chan keyRes, 16)
	done := make(chan struct{})

	// writer: the only goroutine that writes to conn
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer func() {
			ticker.Stop()
			conn.Close()
		}()
		for {
			select {
			case <-done:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			case res := <-send:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(res); err != nil {
					logger.Debug().Err(err).Msg("websocket write")
					return
				}
			case <-ticker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()
	defer close(done)

	send <- s.applyKey(sess, "")

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		sess.Touch()
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug().Err(err).Msg("websocket read")
			}
			return
		}
		var msg keyReq
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		select {
		case send <- s.applyKey(sess, msg.Key):
		case <-time.After(writeWait):
			logger.Warn().Msg("websocket send queue stalled")
			return
		}
	}
}

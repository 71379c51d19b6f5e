package ws

import (
	"log/slog"
	"net/http"
	"time"

	"tablebook/internal/usecase/feed"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// sendBuffer absorbs refresh bursts; a subscriber that cannot keep up
	// is dropped rather than allowed to block the fan-out.
	sendBuffer = 8
)

type envelope struct {
	Event string        `json:"event"`
	Data  feed.Snapshot `json:"data"`
}

// FeedHandler streams the full reservation snapshot to dashboard clients.
// Every message replaces the client's state; there are no incremental
// updates on the wire.
type FeedHandler struct {
	feed     *feed.Feed
	upgrader websocket.Upgrader
}

func NewFeedHandler(f *feed.Feed) *FeedHandler {
	return &FeedHandler{
		feed: f,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Auth happens in middleware before the upgrade; origin checks
			// are the CORS layer's job.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// @Summary Reservation feed
// @Description WebSocket stream of full reservation snapshots
// @Tags feed
// @Security BearerAuth
// @Router /feed [get]
func (h *FeedHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err.Error())
		return
	}

	send := make(chan feed.Snapshot, sendBuffer)
	unsubscribe := h.feed.Subscribe(func(s feed.Snapshot) {
		select {
		case send <- s:
		default:
			// Slow client. Skip this push; the next one carries the full
			// state anyway.
		}
	})

	go h.writePump(conn, send, unsubscribe)
	go h.readPump(conn)
}

func (h *FeedHandler) writePump(conn *websocket.Conn, send <-chan feed.Snapshot, unsubscribe func()) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		unsubscribe()
		conn.Close()
	}()

	for {
		select {
		case snapshot := <-send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			msg := envelope{Event: "reservations_snapshot", Data: snapshot}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client messages; the feed is one-way. It exists to
// process pongs and notice closed connections.
func (h *FeedHandler) readPump(conn *websocket.Conn) {
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			conn.Close()
			return
		}
	}
}

package websocket

import (
	"log"
	"net/http"
	"time"

	"podium/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// In production, adjust the CheckOrigin function to allow only trusted origins.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// TimerHandler streams recording-timer ticks to the page so the elapsed
// counter updates without polling.
type TimerHandler struct {
	svc *services.PracticeService
}

func NewTimerHandler(svc *services.PracticeService) *TimerHandler {
	return &TimerHandler{svc: svc}
}

type tickMessage struct {
	ElapsedSec int  `json:"elapsedSec"`
	Running    bool `json:"running"`
}

// Stream upgrades the connection and writes one tick per second until the
// client goes away.
func (h *TimerHandler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Timer WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Reader goroutine: we never expect client messages, but reading is
	// what surfaces the close frame.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	sw := h.svc.Stopwatch()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			msg := tickMessage{ElapsedSec: sw.Elapsed(), Running: sw.Running()}
			conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		}
	}
}

package ws

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/killallgit/summarizer-api/api/types"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin clients are allowed, same as the HTTP CORS policy.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

// Progress upgrades the connection and streams progress events for the
// requested job. With no job_id query parameter the client receives every
// job's events.
func Progress(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		hub, ok := deps.ProgressHub.(*Hub)
		if !ok || hub == nil {
			c.JSON(http.StatusServiceUnavailable, types.NewErrorResponse("Progress streaming is not available"))
			return
		}

		jobID := c.Query("job_id")
		if jobID == "" {
			jobID = "*"
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[ERROR] Websocket upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		events, cancel := hub.Subscribe(jobID)
		defer cancel()

		// Reader goroutine so client closes are noticed.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()

		for {
			select {
			case event := <-events:
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(event); err != nil {
					return
				}
			case <-ticker.C:
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}
}

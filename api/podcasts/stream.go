package podcasts

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/websocket"

	"github.com/killallgit/podcast-browser/api/types"
	"github.com/killallgit/podcast-browser/internal/models"
)

// Stream event types
const (
	EventSnapshot = "snapshot"
	EventPing     = "ping"
)

// StreamEvent is one websocket message
type StreamEvent struct {
	Type     string          `json:"type"`
	Created  time.Time       `json:"created"`
	Podcasts []types.Podcast `json:"podcasts,omitempty"`
	Count    int             `json:"count"`
}

var (
	heartbeatInterval = 30 * time.Second
	writeTimeout      = 5 * time.Second
)

// Stream pushes list snapshots over a websocket
// @Summary      Stream podcast list snapshots
// @Description  Websocket endpoint. Sends the current list as a snapshot event, then a new snapshot
// @Description  every time the list is replaced. Ping events keep idle connections open.
// @Tags         podcasts
// @Success      101 {object} StreamEvent "Switching protocols"
// @Failure      503 {object} types.ErrorResponse "List state not configured"
// @Router       /api/v1/podcasts/stream [get]
func Stream(deps *types.Dependencies) gin.HandlerFunc {
	heartbeat := heartbeatInterval

	return func(c *gin.Context) {
		if deps == nil || deps.Podcasts == nil {
			types.SendServiceUnavailable(c)
			return
		}

		ctx := c.Request.Context()
		requestID := c.GetString("request_id")
		websocket.Handler(func(ws *websocket.Conn) {
			serveStream(ctx, ws, deps.Podcasts, heartbeat, logrus.WithField("request_id", requestID))
		}).ServeHTTP(c.Writer, c.Request)
	}
}

func serveStream(ctx context.Context, ws *websocket.Conn, list types.PodcastList, heartbeat time.Duration, log *logrus.Entry) {
	defer ws.Close()

	// Deadlines left over from the HTTP server must not cut the stream short
	_ = ws.SetDeadline(time.Time{})

	updates, unsubscribe := list.Podcasts().Subscribe()
	defer unsubscribe()

	if err := sendSnapshot(ws, list.Podcasts().Get()); err != nil {
		log.WithError(err).Debug("Stream client went away before first snapshot")
		return
	}
	log.Debug("Stream client connected")

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		var discard string
		for {
			if err := websocket.Message.Receive(ws, &discard); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-gone:
			log.Debug("Stream client disconnected")
			return
		case podcasts, ok := <-updates:
			if !ok {
				return
			}
			if err := sendSnapshot(ws, podcasts); err != nil {
				log.WithError(err).Warn("Failed to push podcast snapshot")
				return
			}
		case <-ticker.C:
			if err := send(ws, StreamEvent{Type: EventPing, Created: time.Now()}); err != nil {
				log.WithError(err).Debug("Stream heartbeat failed")
				return
			}
		}
	}
}

func sendSnapshot(ws *websocket.Conn, podcasts []models.Podcast) error {
	dtos, _ := types.FromModelPodcastList(podcasts)
	return send(ws, StreamEvent{
		Type:     EventSnapshot,
		Created:  time.Now(),
		Podcasts: dtos,
		Count:    len(dtos),
	})
}

func send(ws *websocket.Conn, event StreamEvent) error {
	if err := ws.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return websocket.JSON.Send(ws, event)
}

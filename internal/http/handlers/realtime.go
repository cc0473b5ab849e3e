package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
	"github.com/yungbote/blogmanager-backend/internal/realtime"
)

type RealtimeHandler struct {
	log *logger.Logger
	hub *realtime.Hub
}

func NewRealtimeHandler(log *logger.Logger, hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{log: log.With("handler", "RealtimeHandler"), hub: hub}
}

// Stream serves change events as text/event-stream. Repeat ?channel= to filter by
// entity ("author", "blog"); no channel means every event.
func (h *RealtimeHandler) Stream(c *gin.Context) {
	client := h.hub.NewClient()
	channels := c.QueryArray("channel")
	if len(channels) == 0 {
		channels = []string{realtime.AllChannels}
	}
	for _, ch := range channels {
		h.hub.AddChannel(client, ch)
	}
	h.log.Debug("event stream open", "client_id", client.ID, "channels", channels)

	h.hub.Serve(c.Writer, c.Request, client)
	h.hub.CloseClient(client)
}

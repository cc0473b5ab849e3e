package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/blogmanager-backend/internal/http/response"
	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
)

var errDatabaseUnavailable = errors.New("database unavailable")

type HealthHandler struct {
	log  *logger.Logger
	ping func(ctx context.Context) error
}

// NewHealthHandler reports healthy only when ping succeeds; a nil ping always succeeds.
func NewHealthHandler(log *logger.Logger, ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{log: log.With("handler", "HealthHandler"), ping: ping}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			h.log.Warn("healthcheck failed", "error", err)
			response.RespondError(c, http.StatusServiceUnavailable, "unavailable", errDatabaseUnavailable)
			return
		}
	}
	response.RespondOK(c, gin.H{"status": "ok"})
}

package app

import (
	"context"

	apphttp "github.com/yungbote/blogmanager-backend/internal/http"
	httpH "github.com/yungbote/blogmanager-backend/internal/http/handlers"
	"github.com/yungbote/blogmanager-backend/internal/mediator"
	"github.com/yungbote/blogmanager-backend/internal/observability"
	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
	"github.com/yungbote/blogmanager-backend/internal/realtime"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Author   *httpH.AuthorHandler
	Blog     *httpH.BlogHandler
	Realtime *httpH.RealtimeHandler
}

func wireHandlers(log *logger.Logger, med *mediator.Mediator, hub *realtime.Hub, ping func(context.Context) error) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(log, ping),
		Author:   httpH.NewAuthorHandler(log, med),
		Blog:     httpH.NewBlogHandler(log, med),
		Realtime: httpH.NewRealtimeHandler(log, hub),
	}
}

func wireServer(cfg Config, log *logger.Logger, metrics *observability.Metrics, handlers Handlers) *apphttp.Server {
	return apphttp.NewServer(cfg.Addr(), apphttp.RouterConfig{
		Log:             log,
		Metrics:         metrics,
		ServiceName:     cfg.Otel.ServiceName,
		CORSOrigins:     cfg.CORSOrigins,
		HealthHandler:   handlers.Health,
		AuthorHandler:   handlers.Author,
		BlogHandler:     handlers.Blog,
		RealtimeHandler: handlers.Realtime,
	})
}

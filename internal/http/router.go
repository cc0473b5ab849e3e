package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/blogmanager-backend/internal/http/handlers"
	httpMW "github.com/yungbote/blogmanager-backend/internal/http/middleware"
	"github.com/yungbote/blogmanager-backend/internal/observability"
	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string
	CORSOrigins []string

	HealthHandler   *httpH.HealthHandler
	AuthorHandler   *httpH.AuthorHandler
	BlogHandler     *httpH.BlogHandler
	RealtimeHandler *httpH.RealtimeHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		if cfg.AuthorHandler != nil {
			api.GET("/authors", cfg.AuthorHandler.List)
			api.POST("/authors", cfg.AuthorHandler.Create)
			api.GET("/authors/:id", cfg.AuthorHandler.Get)
			api.PUT("/authors/:id", cfg.AuthorHandler.Update)
			api.DELETE("/authors/:id", cfg.AuthorHandler.Delete)
			api.GET("/authors/:id/blogs", cfg.AuthorHandler.ListBlogs)
		}

		if cfg.BlogHandler != nil {
			api.GET("/blogs", cfg.BlogHandler.List)
			api.POST("/blogs", cfg.BlogHandler.Create)
			api.GET("/blogs/:id", cfg.BlogHandler.Get)
			api.PUT("/blogs/:id", cfg.BlogHandler.Update)
			api.DELETE("/blogs/:id", cfg.BlogHandler.Delete)
		}

		// Realtime (SSE)
		if cfg.RealtimeHandler != nil {
			api.GET("/events", cfg.RealtimeHandler.Stream)
		}
	}

	return r
}

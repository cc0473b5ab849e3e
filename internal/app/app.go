package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/blogmanager-backend/internal/data/db"
	"github.com/yungbote/blogmanager-backend/internal/data/seed"
	apphttp "github.com/yungbote/blogmanager-backend/internal/http"
	"github.com/yungbote/blogmanager-backend/internal/mediator"
	"github.com/yungbote/blogmanager-backend/internal/observability"
	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
	"github.com/yungbote/blogmanager-backend/internal/realtime"
	"github.com/yungbote/blogmanager-backend/internal/realtime/bus"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Repos    Repos
	Mediator *mediator.Mediator
	Metrics  *observability.Metrics
	Bus      bus.Bus
	Hub      *realtime.Hub
	Server   *apphttp.Server

	otelShutdown func(context.Context) error
	cancel       context.CancelFunc
}

// New reads the environment and builds the whole application.
func New(ctx context.Context) (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	a, err := NewWithConfig(ctx, cfg, log)
	if err != nil {
		log.Sync()
		return nil, err
	}
	return a, nil
}

func NewWithConfig(ctx context.Context, cfg Config, log *logger.Logger) (*App, error) {
	if mode := strings.TrimSpace(cfg.GinMode); mode != "" {
		gin.SetMode(mode)
	}
	otelShutdown := observability.InitOTel(ctx, log, cfg.Otel)

	log.Info("Opening database...", "driver", cfg.DB.Driver)
	theDB, err := db.Open(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	metrics := observability.NewMetrics()
	if sqlDB, err := theDB.DB(); err == nil {
		if err := metrics.RegisterDB(cfg.DB.Driver, sqlDB); err != nil {
			log.Warn("db stats collector not registered", "error", err)
		}
	}

	events, err := bus.New(log, cfg.Bus)
	if err != nil {
		_ = db.Close(theDB)
		return nil, fmt.Errorf("init event bus: %w", err)
	}

	reposet := wireRepos(theDB, log)
	med, err := wireMediator(theDB, log, reposet, metrics, events)
	if err != nil {
		_ = events.Close()
		_ = db.Close(theDB)
		return nil, err
	}

	if path := strings.TrimSpace(cfg.SeedFile); path != "" {
		fixture, err := seed.Load(path)
		if err == nil {
			_, err = seed.Apply(ctx, theDB, log, fixture)
		}
		if err != nil {
			_ = events.Close()
			_ = db.Close(theDB)
			return nil, fmt.Errorf("seed %s: %w", path, err)
		}
	}

	hub := realtime.NewHub(log)
	ping := func(ctx context.Context) error { return db.Ping(ctx, theDB) }
	handlers := wireHandlers(log, med, hub, ping)
	server := wireServer(cfg, log, metrics, handlers)

	return &App{
		Log:          log,
		DB:           theDB,
		Cfg:          cfg,
		Repos:        reposet,
		Mediator:     med,
		Metrics:      metrics,
		Bus:          events,
		Hub:          hub,
		Server:       server,
		otelShutdown: otelShutdown,
	}, nil
}

// Start connects the event bus to the streaming hub.
func (a *App) Start(ctx context.Context) error {
	if a == nil || a.cancel != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	if err := a.Bus.StartForwarder(ctx, a.Hub.Broadcast); err != nil {
		cancel()
		a.cancel = nil
		return fmt.Errorf("start event forwarder: %w", err)
	}
	return nil
}

// Run serves HTTP until ctx is cancelled, then shuts the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("HTTP server listening", "addr", a.Cfg.Addr())
		return a.Server.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		defer cancel()
		a.Log.Info("Shutting down HTTP server...")
		return a.Server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if a.Bus != nil {
		if err := a.Bus.Close(); err != nil {
			a.Log.Warn("event bus close failed", "error", err)
		}
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
	}
	if err := db.Close(a.DB); err != nil {
		a.Log.Warn("db close failed", "error", err)
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}

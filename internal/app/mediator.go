package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/blogmanager-backend/internal/core/commands"
	"github.com/yungbote/blogmanager-backend/internal/core/queries"
	"github.com/yungbote/blogmanager-backend/internal/mediator"
	"github.com/yungbote/blogmanager-backend/internal/observability"
	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
	"github.com/yungbote/blogmanager-backend/internal/realtime/bus"
)

func wireMediator(db *gorm.DB, log *logger.Logger, reposet Repos, metrics *observability.Metrics, events bus.Bus) (*mediator.Mediator, error) {
	log.Info("Wiring mediator...")
	med := mediator.New(log,
		mediator.Recovery(log),
		mediator.Tracing(nil),
		mediator.Logging(log),
		mediator.Metrics(metrics),
		bus.Middleware(events, log),
	)
	if err := commands.Register(med, db, log, reposet.Author, reposet.Blog); err != nil {
		return nil, fmt.Errorf("register commands: %w", err)
	}
	if err := queries.Register(med, log, reposet.Author, reposet.Blog); err != nil {
		return nil, fmt.Errorf("register queries: %w", err)
	}
	med.Seal()
	return med, nil
}

package bus

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/blogmanager-backend/internal/dto"
	"github.com/yungbote/blogmanager-backend/internal/mediator"
	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
)

type targeted interface {
	TargetID() uuid.UUID
}

// Middleware publishes an Event after every command that changed something. Publish
// failures are logged and never reach the caller; the change is already committed.
func Middleware(b Bus, log *logger.Logger) mediator.Middleware {
	return func(route mediator.Route, next mediator.HandlerFunc) mediator.HandlerFunc {
		if b == nil || route.Category != mediator.CategoryCommand {
			return next
		}
		return func(ctx context.Context, req mediator.Request) (any, error) {
			out, err := next(ctx, req)
			if err != nil {
				return out, err
			}
			id, changed := changedID(req, out)
			if !changed {
				return out, nil
			}
			ev := Event{Kind: string(route.Kind), ID: id, OccurredAt: time.Now().UTC()}
			if perr := b.Publish(ctx, ev); perr != nil {
				log.Warn("publish change event failed", "kind", ev.Kind, "id", ev.ID, "error", perr)
			}
			return out, nil
		}
	}
}

func changedID(req mediator.Request, out any) (uuid.UUID, bool) {
	switch v := out.(type) {
	case *dto.Author:
		if v == nil {
			return uuid.Nil, false
		}
		return v.ID, true
	case *dto.Blog:
		if v == nil {
			return uuid.Nil, false
		}
		return v.ID, true
	case bool:
		t, ok := req.(targeted)
		if !v || !ok {
			return uuid.Nil, false
		}
		return t.TargetID(), true
	}
	return uuid.Nil, false
}

package mediator

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/blogmanager-backend/internal/platform/ctxutil"
	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
)

// Observer receives one sample per dispatch.
type Observer interface {
	ObserveDispatch(kind, category, status string, elapsed time.Duration)
}

func Recovery(log *logger.Logger) Middleware {
	return func(route Route, next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, req Request) (out any, err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error("handler panic", "kind", string(route.Kind), "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
					out = nil
					err = fmt.Errorf("mediator: %s panicked: %v", route.Kind, r)
				}
			}()
			return next(ctx, req)
		}
	}
}

func Logging(log *logger.Logger) Middleware {
	return func(route Route, next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, req Request) (any, error) {
			start := time.Now()
			out, err := next(ctx, req)
			fields := []interface{}{
				"kind", string(route.Kind),
				"category", string(route.Category),
				"duration_ms", time.Since(start).Milliseconds(),
			}
			fields = append(fields, ctxutil.LogFields(ctx)...)
			if err != nil {
				log.Warn("dispatch failed", append(fields, "error", err)...)
				return out, err
			}
			log.Debug("dispatch", fields...)
			return out, nil
		}
	}
}

func Tracing(tracer trace.Tracer) Middleware {
	if tracer == nil {
		tracer = otel.Tracer("github.com/yungbote/blogmanager-backend/internal/mediator")
	}
	return func(route Route, next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, req Request) (any, error) {
			ctx, span := tracer.Start(ctx, "mediator."+string(route.Kind),
				trace.WithAttributes(
					attribute.String("mediator.kind", string(route.Kind)),
					attribute.String("mediator.category", string(route.Category)),
				),
			)
			defer span.End()
			out, err := next(ctx, req)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			return out, err
		}
	}
}

func Metrics(obs Observer) Middleware {
	return func(route Route, next HandlerFunc) HandlerFunc {
		if obs == nil {
			return next
		}
		return func(ctx context.Context, req Request) (any, error) {
			start := time.Now()
			out, err := next(ctx, req)
			status := "ok"
			if err != nil {
				status = "error"
			}
			obs.ObserveDispatch(string(route.Kind), string(route.Category), status, time.Since(start))
			return out, err
		}
	}
}

// Package mediator routes command and query objects to the single handler registered for
// their kind. The routing table is filled at startup and sealed before serving; there is no
// reflection-based discovery.
package mediator

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
)

type Kind string

type Category string

const (
	CategoryCommand Category = "command"
	CategoryQuery   Category = "query"
)

// Request is implemented by every command and query. Kind must be callable on the zero
// value, so requests are plain structs with value receivers.
type Request interface {
	Kind() Kind
}

type Route struct {
	Kind     Kind
	Category Category
}

type HandlerFunc func(ctx context.Context, req Request) (any, error)

// Middleware wraps a handler. The first middleware passed to New is the outermost.
type Middleware func(route Route, next HandlerFunc) HandlerFunc

type Handler[Req Request, Res any] interface {
	Handle(ctx context.Context, req Req) (Res, error)
}

var (
	ErrNoHandler        = errors.New("mediator: no handler registered")
	ErrDuplicateHandler = errors.New("mediator: handler already registered")
	ErrSealed           = errors.New("mediator: registry is sealed")
	ErrRequestType      = errors.New("mediator: unexpected request type")
	ErrResultType       = errors.New("mediator: unexpected result type")
)

type entry struct {
	route Route
	fn    HandlerFunc
}

// Mediator is safe for concurrent Dispatch once Seal has been called.
type Mediator struct {
	log         *logger.Logger
	entries     map[Kind]entry
	middlewares []Middleware
	sealed      bool
}

func New(log *logger.Logger, middlewares ...Middleware) *Mediator {
	return &Mediator{
		log:         log.With("component", "Mediator"),
		entries:     make(map[Kind]entry),
		middlewares: middlewares,
	}
}

func (m *Mediator) Use(middlewares ...Middleware) error {
	if m.sealed {
		return ErrSealed
	}
	m.middlewares = append(m.middlewares, middlewares...)
	return nil
}

// Seal freezes the registry and builds every middleware chain once.
func (m *Mediator) Seal() {
	if m.sealed {
		return
	}
	for kind, e := range m.entries {
		wrapped := e.fn
		for i := len(m.middlewares) - 1; i >= 0; i-- {
			wrapped = m.middlewares[i](e.route, wrapped)
		}
		m.entries[kind] = entry{route: e.route, fn: wrapped}
	}
	m.sealed = true
	m.log.Info("Mediator sealed", "handlers", len(m.entries))
}

func (m *Mediator) Routes() []Route {
	out := make([]Route, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.route)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

func (m *Mediator) add(route Route, fn HandlerFunc) error {
	if m.sealed {
		return ErrSealed
	}
	if _, exists := m.entries[route.Kind]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateHandler, route.Kind)
	}
	m.entries[route.Kind] = entry{route: route, fn: fn}
	return nil
}

// Dispatch runs the handler registered for req.Kind(). Unsealed mediators dispatch
// without middleware.
func (m *Mediator) Dispatch(ctx context.Context, req Request) (any, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrNoHandler)
	}
	e, ok := m.entries[req.Kind()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoHandler, req.Kind())
	}
	return e.fn(ctx, req)
}

func RegisterCommand[Req Request, Res any](m *Mediator, h Handler[Req, Res]) error {
	return register[Req, Res](m, CategoryCommand, h)
}

func RegisterQuery[Req Request, Res any](m *Mediator, h Handler[Req, Res]) error {
	return register[Req, Res](m, CategoryQuery, h)
}

func register[Req Request, Res any](m *Mediator, category Category, h Handler[Req, Res]) error {
	var zero Req
	kind := zero.Kind()
	fn := func(ctx context.Context, req Request) (any, error) {
		typed, ok := req.(Req)
		if !ok {
			return nil, fmt.Errorf("%w: %s got %T", ErrRequestType, kind, req)
		}
		return h.Handle(ctx, typed)
	}
	return m.add(Route{Kind: kind, Category: category}, fn)
}

// Send dispatches req and asserts the handler's result type.
func Send[Res any](ctx context.Context, m *Mediator, req Request) (Res, error) {
	var zero Res
	out, err := m.Dispatch(ctx, req)
	if err != nil {
		return zero, err
	}
	if out == nil {
		return zero, nil
	}
	res, ok := out.(Res)
	if !ok {
		return zero, fmt.Errorf("%w: %s returned %T, want %T", ErrResultType, req.Kind(), out, zero)
	}
	return res, nil
}

package bus

import (
	"context"
	"fmt"
	"sync"

	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
)

// localBus fans events out inside the process. Used when no redis address is configured.
type localBus struct {
	log    *logger.Logger
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(Event)
	closed bool
}

func NewLocalBus(log *logger.Logger) Bus {
	return &localBus{
		log:  log.With("service", "LocalEventBus"),
		subs: make(map[int]func(Event)),
	}
}

func (b *localBus) Publish(_ context.Context, ev Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return fmt.Errorf("event bus closed")
	}
	for _, fn := range b.subs {
		fn(ev)
	}
	return nil
}

func (b *localBus) StartForwarder(ctx context.Context, onEvent func(ev Event)) error {
	if onEvent == nil {
		return fmt.Errorf("onEvent callback required")
	}
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return fmt.Errorf("event bus closed")
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = onEvent
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}()
	return nil
}

func (b *localBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.subs = make(map[int]func(Event))
	return nil
}

// New picks the redis bus when an address is configured and the in-process bus otherwise.
func New(log *logger.Logger, cfg Config) (Bus, error) {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set; using in-process event bus")
		return NewLocalBus(log), nil
	}
	return NewRedisBus(log, cfg)
}

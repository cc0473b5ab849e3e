package bus

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event announces a committed change to an author or blog.
type Event struct {
	Kind       string    `json:"kind"`
	ID         uuid.UUID `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Channel is the entity part of the kind ("blog" for "blog.update").
func (e Event) Channel() string {
	if i := strings.IndexByte(e.Kind, '.'); i > 0 {
		return e.Kind[:i]
	}
	return e.Kind
}

type Bus interface {
	Publish(ctx context.Context, ev Event) error
	// StartForwarder delivers every published event to onEvent until ctx is done.
	StartForwarder(ctx context.Context, onEvent func(ev Event)) error
	Close() error
}

type Config struct {
	RedisAddr    string `env:"REDIS_ADDR"`
	RedisChannel string `env:"REDIS_CHANNEL" env-default:"blogmanager.events"`
}

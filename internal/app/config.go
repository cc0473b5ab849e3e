package app

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/yungbote/blogmanager-backend/internal/data/db"
	"github.com/yungbote/blogmanager-backend/internal/observability"
	"github.com/yungbote/blogmanager-backend/internal/realtime/bus"
)

type Config struct {
	Port            string        `env:"PORT" env-default:"8080"`
	LogMode         string        `env:"LOG_MODE" env-default:"development"`
	GinMode         string        `env:"GIN_MODE" env-default:"release"`
	SeedFile        string        `env:"SEED_FILE"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" env-separator:","`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`

	DB   db.Config
	Bus  bus.Config
	Otel observability.OtelConfig
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

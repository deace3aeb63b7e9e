package bootstrap

import (
	"fmt"
	"time"

	"github.com/ByeoliKim/star-shop/internal/pkg/cache"
	"github.com/ByeoliKim/star-shop/internal/pkg/database"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type StoreConfig struct {
	HttpPort  string `envconfig:"HTTP_PORT" default:":8080"`
	JwtSecret string `envconfig:"JWT_SECRET" required:"true"`

	CacheKind string        `envconfig:"CACHE_KIND" default:"memory"`
	CacheTTL  time.Duration `envconfig:"CACHE_TTL" default:"1m"`

	DBSettings    database.PostgresSettings
	RedisSettings cache.RedisSettings
}

func LoadConfig() (StoreConfig, error) {
	_ = godotenv.Load()

	var cfg StoreConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return StoreConfig{}, fmt.Errorf("failed to process store config: %w", err)
	}

	return cfg, nil
}

package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// pingTimeout bounds the startup connectivity check so a down Redis
// fails fast instead of hanging the boot sequence.
const pingTimeout = 5 * time.Second

// Config holds the connection settings for the catalog cache.
type Config struct {
	Addr string
	DB   int
}

// Connect opens a client against the configured database and verifies it is
// reachable before handing it to callers.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// Package cache owns the shared Redis connection. Catalog entities are never
// cached here; Redis only backs cross-instance counters such as rate limits.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

// Open returns a client for addr once the server has answered a PING.
// The client is closed again when the server is unreachable.
func Open(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		PoolSize:    4,
		MaxRetries:  1,
		DialTimeout: 3 * time.Second,
	})

	if err := Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	log.Info().Str("addr", addr).Int("db", db).Msg("Redis connected")
	return client, nil
}

// Ping checks the server within a short deadline
func Ping(ctx context.Context, client *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

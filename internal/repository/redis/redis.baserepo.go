// FilePath: internal/repository/redis/redis.baserepo.go
package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	nuts "github.com/vaudience/go-nuts"

	"github.com/itsatony/agrisynth/internal/config"
)

// DefaultKeyPrefix namespaces every key written by this package
const DefaultKeyPrefix = "agrisynth:"

// RedisBaseRepo holds the connection shared by redis repositories
type RedisBaseRepo struct {
	client *goredis.Client
	prefix string
}

// Connect opens a client for the configured instance and pings it
func Connect(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("error connecting to redis at %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	nuts.L.Infof("[Redis] Connected to %s:%d/%d", cfg.Host, cfg.Port, cfg.DB)
	return client, nil
}

func (r *RedisBaseRepo) key(parts ...string) string {
	k := r.prefix
	for i, p := range parts {
		if i > 0 {
			k += ":"
		}
		k += p
	}
	return k
}

func (r *RedisBaseRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisBaseRepo) Close() error {
	return r.client.Close()
}

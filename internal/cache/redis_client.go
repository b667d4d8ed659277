package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures the Redis connection. Addr is either host:port or a
// redis:// URL; a URL's own credentials and database take precedence.
type Options struct {
	Addr     string
	Password string
	DB       int
}

func (o Options) redisOptions() (*redis.Options, error) {
	ropts := &redis.Options{
		Addr:     o.Addr,
		Password: o.Password,
		DB:       o.DB,
	}

	if strings.HasPrefix(o.Addr, "redis://") || strings.HasPrefix(o.Addr, "rediss://") {
		parsed, err := redis.ParseURL(o.Addr)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		if parsed.Password == "" {
			parsed.Password = o.Password
		}
		ropts = parsed
	}

	ropts.PoolSize = 20
	ropts.DialTimeout = 5 * time.Second
	ropts.ReadTimeout = 5 * time.Second
	ropts.WriteTimeout = 3 * time.Second

	return ropts, nil
}

func ConnectRedis(ctx context.Context, opts Options) (*redis.Client, error) {
	ropts, err := opts.redisOptions()
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(ropts)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}

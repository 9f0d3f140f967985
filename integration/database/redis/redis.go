package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/messageformat/core/logger"
)

// Connect creates a Redis client and waits until it answers a ping.
// Attempts back off exponentially from RetryInterval; the whole process is
// bounded by ConnectTimeout and ctx.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	opts, err := parseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, err
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client := redis.NewClient(opts)
	attempts := max(cfg.RetryAttempts, 1)
	interval := cfg.RetryInterval

	var errs []error
	for attempt := 1; attempt <= attempts; attempt++ {
		pingErr := client.Ping(ctx).Err()
		if pingErr == nil {
			return client, nil
		}
		errs = append(errs, pingErr)

		if attempt == attempts {
			break
		}
		slog.WarnContext(ctx, "redis not ready, retrying",
			logger.Component("redis"),
			logger.RetryCount(attempt),
			logger.Error(pingErr),
		)

		select {
		case <-ctx.Done():
			_ = client.Close()
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(interval):
		}
		interval *= 2
	}

	_ = client.Close()
	return nil, errors.Join(append([]error{ErrRedisNotReady}, errs...)...)
}

func parseURL(raw string) (*redis.Options, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyConnectionURL
	}
	if !strings.HasPrefix(raw, "redis://") && !strings.HasPrefix(raw, "rediss://") {
		return nil, fmt.Errorf("%w: unsupported scheme in %q", ErrFailedToParseRedisConnString, raw)
	}
	opts, err := redis.ParseURL(raw)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}
	return opts, nil
}

// Pinger is the subset of a Redis client used by Healthcheck.
type Pinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// Healthcheck returns a function that reports whether Redis answers a ping.
func Healthcheck(client Pinger) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

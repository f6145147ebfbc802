// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package maintenance switches the public API into maintenance mode, either
// from configuration or from a flag stored in redis.
package maintenance

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/onboarding-service/internal/apperr"
	httptypes "github.com/canonical/onboarding-service/internal/http/types"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/tracing"
)

const lookupTimeout = 2 * time.Second

type Checker struct {
	static bool
	client RedisClientInterface
	key    string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// Active reports whether maintenance mode is on. Redis failures are logged
// and read as off.
func (c *Checker) Active(ctx context.Context) bool {
	if c.static {
		return true
	}

	if c.client == nil {
		return false
	}

	ctx, span := c.tracer.Start(ctx, "maintenance.Checker.Active")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	val, err := c.client.Get(ctx, c.key).Result()
	if errors.Is(err, redis.Nil) {
		return false
	}

	if err != nil {
		c.logger.Warnf("failed to read maintenance flag: %v", err)
		return false
	}

	on, err := strconv.ParseBool(val)
	if err != nil {
		c.logger.Warnf("ignoring maintenance flag value %q", val)
		return false
	}

	return on
}

func (c *Checker) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c.Active(r.Context()) {
			httptypes.WriteError(w, r, apperr.ErrMaintenanceMode, c.logger)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func NewChecker(static bool, client RedisClientInterface, key string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Checker {
	c := new(Checker)

	c.static = static
	c.client = client
	c.key = key
	c.tracer = tracer
	c.logger = logger

	return c
}

// NewRedisClient connects to redisURL and pings it.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

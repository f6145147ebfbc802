// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package maintenance

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisClientInterface is the subset of redis.Cmdable the checker reads.
type RedisClientInterface interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

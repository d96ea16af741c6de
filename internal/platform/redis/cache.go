// Copyright (c) 2026 Melodia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	stdctx "context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a namespaced byte store on top of a Redis client.
type Cache struct {
	client redis.Cmdable
	prefix string
}

// NewCache returns a [Cache] whose keys are all prefixed with prefix.
func NewCache(client redis.Cmdable, prefix string) *Cache {
	return &Cache{client: client, prefix: prefix}
}

// Get returns the stored value. found is false on a cache miss.
func (cache *Cache) Get(context stdctx.Context, key string) (value []byte, found bool, err error) {
	value, err = cache.client.Get(context, cache.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis: get %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key for ttl.
func (cache *Cache) Set(context stdctx.Context, key string, value []byte, ttl time.Duration) error {
	if err := cache.client.Set(context, cache.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis: set %q: %w", key, err)
	}
	return nil
}

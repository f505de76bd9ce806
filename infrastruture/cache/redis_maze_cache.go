package cache

import (
	"context"
	"time"

	"github.com/beka-birhanu/amazeing-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const encodedKeyPrefix = "maze:encoded:"

// RedisMazeCache caches encoded maze documents in Redis with TTL support
// and hands out distributed locks for regeneration runs.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int) (i.MazeCache, error) {
	c := &RedisMazeCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	c.locker = redsync.New(pool)
	return c, nil
}

// SetEncoded stores the encoded document for a maze id and refreshes its TTL.
func (c *RedisMazeCache) SetEncoded(ctx context.Context, id string, document string) error {
	return c.client.Set(ctx, encodedKeyPrefix+id, document, c.ttl).Err()
}

// GetEncoded retrieves the encoded document for a maze id. A missing key
// yields an empty document and no error.
func (c *RedisMazeCache) GetEncoded(ctx context.Context, id string) (string, error) {
	document, err := c.client.Get(ctx, encodedKeyPrefix+id).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return document, nil
}

// WithLock runs fn while holding the named distributed mutex, so a maze id
// only ever has one active generation run across instances.
func (c *RedisMazeCache) WithLock(key string, fn func() error) error {
	mutex := c.locker.NewMutex(key)
	if err := mutex.Lock(); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	return fn()
}

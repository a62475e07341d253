package mazecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-tmaze/maze"
	"github.com/beka-birhanu/vinom-tmaze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// unlockTimeout bounds releasing the generation lock, which outlives the
// caller's context.
const unlockTimeout = 2 * time.Second

var ErrNilClient = errors.New("redis client is nil")

// Key returns the cache key for params.
func Key(params maze.Params) string {
	return fmt.Sprintf("tmaze:path:w%d:h%d:s%d", params.Width, params.Height, params.Seed)
}

// RedisMazeCache stores generated paths in Redis with TTL support.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int) (i.MazeCache, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	cache := &RedisMazeCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// GetOrGenerate returns the cached path for params. On a miss it generates the
// path while holding a distributed lock on the key, so concurrent instances
// generate a maze at most once per TTL.
func (rmc *RedisMazeCache) GetOrGenerate(ctx context.Context, params maze.Params, generate func() (maze.Path, error)) (maze.Path, error) {
	key := Key(params)
	if path, ok, err := rmc.get(ctx, key); err != nil || ok {
		return path, err
	}

	mutex := rmc.locker.NewMutex(key + ":lock")
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	defer func() {
		unlockCtx, cancel := context.WithTimeout(context.Background(), unlockTimeout)
		defer cancel()
		_, _ = mutex.UnlockContext(unlockCtx)
	}()

	// Another holder may have filled the key while we waited.
	if path, ok, err := rmc.get(ctx, key); err != nil || ok {
		return path, err
	}

	path, err := generate()
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(path)
	if err != nil {
		return nil, err
	}
	if err := rmc.client.Set(ctx, key, payload, rmc.ttl).Err(); err != nil {
		return nil, err
	}
	return path, nil
}

func (rmc *RedisMazeCache) get(ctx context.Context, key string) (maze.Path, bool, error) {
	payload, err := rmc.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var path maze.Path
	if err := json.Unmarshal(payload, &path); err != nil {
		return nil, false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return path, true, nil
}

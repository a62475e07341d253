package mazecache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/beka-birhanu/vinom-tmaze/maze"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisCache(t *testing.T) (*miniredis.Miniredis, *RedisMazeCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache, err := NewRedisMazeCache(client, 60)
	require.NoError(t, err)
	return mr, cache.(*RedisMazeCache)
}

func TestRedisMazeCache(t *testing.T) {
	params := maze.Params{Width: 9, Height: 9, Seed: 2}
	counting := func(calls *int32) func() (maze.Path, error) {
		return func() (maze.Path, error) {
			atomic.AddInt32(calls, 1)
			return params.Path(), nil
		}
	}

	t.Run("Miss stores the path with a TTL", func(t *testing.T) {
		mr, cache := newRedisCache(t)
		var calls int32

		path, err := cache.GetOrGenerate(context.Background(), params, counting(&calls))
		require.NoError(t, err)
		assert.Equal(t, params.Path(), path)
		assert.EqualValues(t, 1, calls)
		assert.True(t, mr.Exists(Key(params)))
		assert.Equal(t, 60*time.Second, mr.TTL(Key(params)))
		assert.False(t, mr.Exists(Key(params)+":lock"))
	})

	t.Run("Hit skips generation", func(t *testing.T) {
		_, cache := newRedisCache(t)
		var calls int32

		first, err := cache.GetOrGenerate(context.Background(), params, counting(&calls))
		require.NoError(t, err)
		second, err := cache.GetOrGenerate(context.Background(), params, counting(&calls))
		require.NoError(t, err)

		assert.EqualValues(t, 1, calls)
		assert.Equal(t, first, second)
	})

	t.Run("Keys are per maze", func(t *testing.T) {
		_, cache := newRedisCache(t)
		var calls int32

		_, err := cache.GetOrGenerate(context.Background(), params, counting(&calls))
		require.NoError(t, err)
		other := maze.Params{Width: 9, Height: 9, Seed: 3}
		_, err = cache.GetOrGenerate(context.Background(), other, func() (maze.Path, error) {
			atomic.AddInt32(&calls, 1)
			return other.Path(), nil
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, calls)
	})

	t.Run("Concurrent misses generate once", func(t *testing.T) {
		_, cache := newRedisCache(t)
		var calls int32
		slow := func() (maze.Path, error) {
			atomic.AddInt32(&calls, 1)
			time.Sleep(50 * time.Millisecond)
			return params.Path(), nil
		}

		var wg sync.WaitGroup
		paths := make([]maze.Path, 6)
		errs := make([]error, len(paths))
		for n := range paths {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				paths[n], errs[n] = cache.GetOrGenerate(context.Background(), params, slow)
			}(n)
		}
		wg.Wait()

		assert.EqualValues(t, 1, calls)
		for n := range paths {
			require.NoError(t, errs[n])
			assert.Equal(t, params.Path(), paths[n])
		}
	})

	t.Run("Corrupt entry fails to decode", func(t *testing.T) {
		mr, cache := newRedisCache(t)
		require.NoError(t, mr.Set(Key(params), "not json"))
		var calls int32

		_, err := cache.GetOrGenerate(context.Background(), params, counting(&calls))
		assert.ErrorContains(t, err, "decoding "+Key(params))
		assert.Zero(t, calls)
	})

	t.Run("Generation errors are not stored", func(t *testing.T) {
		mr, cache := newRedisCache(t)
		boom := errors.New("boom")

		_, err := cache.GetOrGenerate(context.Background(), params, func() (maze.Path, error) {
			return nil, boom
		})
		assert.ErrorIs(t, err, boom)
		assert.False(t, mr.Exists(Key(params)))
		assert.False(t, mr.Exists(Key(params)+":lock"))
	})

	t.Run("Lock is released after the caller gives up", func(t *testing.T) {
		mr, cache := newRedisCache(t)
		ctx, cancel := context.WithCancel(context.Background())

		_, err := cache.GetOrGenerate(ctx, params, func() (maze.Path, error) {
			cancel()
			return params.Path(), nil
		})
		assert.Error(t, err)
		assert.False(t, mr.Exists(Key(params)+":lock"))
	})

	t.Run("Redis unavailable", func(t *testing.T) {
		mr, cache := newRedisCache(t)
		mr.Close()

		_, err := cache.GetOrGenerate(context.Background(), params, func() (maze.Path, error) {
			t.Fatal("generate called")
			return nil, nil
		})
		assert.Error(t, err)
	})
}

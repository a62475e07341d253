package mazecache

import (
	"context"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-tmaze/maze"
	"github.com/beka-birhanu/vinom-tmaze/service/i"
)

type entry struct {
	path    maze.Path
	expires time.Time
}

// MemoryMazeCache is an in-process MazeCache for single instance deployments
// and tests.
type MemoryMazeCache struct {
	sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryMazeCache creates an empty cache whose entries live for ttlSeconds.
// A non-positive TTL keeps entries forever.
func NewMemoryMazeCache(ttlSeconds int) i.MazeCache {
	return &MemoryMazeCache{
		entries: make(map[string]entry),
		ttl:     time.Duration(ttlSeconds) * time.Second,
		now:     time.Now,
	}
}

// GetOrGenerate returns a copy of the cached path for params, generating it on a miss.
func (mmc *MemoryMazeCache) GetOrGenerate(ctx context.Context, params maze.Params, generate func() (maze.Path, error)) (maze.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mmc.Lock()
	defer mmc.Unlock()

	key := Key(params)
	now := mmc.now()
	if e, ok := mmc.entries[key]; ok && (mmc.ttl <= 0 || now.Before(e.expires)) {
		return e.path.Clone(), nil
	}

	path, err := generate()
	if err != nil {
		return nil, err
	}
	mmc.entries[key] = entry{path: path.Clone(), expires: now.Add(mmc.ttl)}
	return path, nil
}

package i

import (
	"context"

	"github.com/beka-birhanu/vinom-tmaze/maze"
)

// MazeCache memoizes generated maze paths by their parameters.
type MazeCache interface {
	// GetOrGenerate returns the cached path for params, calling generate and
	// storing its result on a miss.
	GetOrGenerate(ctx context.Context, params maze.Params, generate func() (maze.Path, error)) (maze.Path, error)
}

/*
Package maze generates T-maze paths on rectangular grids.

A T-maze is a chain of T-shaped units. Each unit extends the corridor from its
start cell through a channel cell to a branch cell, where it forks into a
terminal cell (a dead end) and an end cell. The end cell is the start of the
next unit, so the goal-directed route never enters a terminal cell:

	TBE  or  EBT
	 C        C
	 S        S

Generation is randomized but reproducible for a given source. Paths are built
with soft bounds, then centered so every cell sits inside a one-cell wall
border, and finally rasterized into colored wall blocks and open corridors.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
)

// MaxDimension caps the width and height accepted by New.
const MaxDimension = 64

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrMalformedPath     = errors.New("path is not a start cell followed by whole T-units")
)

// Params identifies a reproducible maze.
type Params struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Seed   int64 `json:"seed"`
}

// Validate checks the dimensions accepted by New.
func (s Params) Validate() error {
	if min(s.Width, s.Height) < MinDimension || max(s.Width, s.Height) > MaxDimension {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, s.Width, s.Height)
	}
	return nil
}

// Path generates the path from a source seeded with Seed.
func (s Params) Path() Path {
	return Generate(s.Width, s.Height, rand.New(rand.NewSource(s.Seed)))
}

// TMaze is a generated T-maze together with its raster.
type TMaze struct {
	Width  int   // Width of the grid in blocks
	Height int   // Height of the grid in blocks
	Path   Path  // Centered goal path including decoy terminal cells
	Grid   *Grid // Raster of Path
}

// New generates and rasterizes a T-maze of the given dimensions.
func New(width, height int, rng Rand) (*TMaze, error) {
	if err := (Params{Width: width, Height: height}).Validate(); err != nil {
		return nil, err
	}
	return FromPath(Generate(width, height, rng), width, height, rng)
}

// FromPath rasterizes an already generated path. The path must hold zero
// cells, a lone start cell, or a start cell followed by whole T-units.
func FromPath(path Path, width, height int, rng Rand) (*TMaze, error) {
	if len(path) > 1 && (len(path)-1)%unitSize != 0 {
		return nil, fmt.Errorf("%w: %d cells", ErrMalformedPath, len(path))
	}
	grid, err := Rasterize(path, width, height, rng)
	if err != nil {
		return nil, err
	}
	return &TMaze{
		Width:  width,
		Height: height,
		Path:   path,
		Grid:   grid,
	}, nil
}

// Start returns the first path cell. ok is false for an empty path.
func (m *TMaze) Start() (c Cell, ok bool) {
	if len(m.Path) == 0 {
		return Cell{}, false
	}
	return m.Path[0], true
}

// Goal returns the last path cell. ok is false for an empty path.
func (m *TMaze) Goal() (c Cell, ok bool) {
	if len(m.Path) == 0 {
		return Cell{}, false
	}
	return m.Path[len(m.Path)-1], true
}

// String provides a textual representation of the maze.
func (m *TMaze) String() string {
	return m.Grid.String()
}

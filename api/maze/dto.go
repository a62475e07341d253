// Package mazeapi serves generated T-mazes.
package mazeapi

import (
	"strings"

	"github.com/beka-birhanu/vinom-tmaze/guide"
	"github.com/beka-birhanu/vinom-tmaze/maze"
)

// MazeQuery selects a maze. Missing fields fall back to the configured defaults.
type MazeQuery struct {
	Width  *int   `form:"width"`
	Height *int   `form:"height"`
	Seed   *int64 `form:"seed"`
}

// GoalResponse locates the goal marker.
type GoalResponse struct {
	Cell maze.Cell `json:"cell"`
	Face string    `json:"face"`
}

// MazeResponse describes a generated maze.
type MazeResponse struct {
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Seed        int64         `json:"seed"`
	Path        []maze.Cell   `json:"path"`
	Breadcrumbs []string      `json:"breadcrumbs"`
	Rows        []string      `json:"rows"`
	Colors      [][]int       `json:"colors"` // Wall color per block, indexed [y][x]; 0 for corridors
	Goal        *GoalResponse `json:"goal,omitempty"`
}

// Defaults are the maze parameters used when a query omits them.
type Defaults struct {
	Width  int
	Height int
	Seed   int64
}

func (q MazeQuery) params(d Defaults) maze.Params {
	s := maze.Params{Width: d.Width, Height: d.Height, Seed: d.Seed}
	if q.Width != nil {
		s.Width = *q.Width
	}
	if q.Height != nil {
		s.Height = *q.Height
	}
	if q.Seed != nil {
		s.Seed = *q.Seed
	}
	return s
}

func newMazeResponse(params maze.Params, m *maze.TMaze) *MazeResponse {
	res := &MazeResponse{
		Width:  m.Width,
		Height: m.Height,
		Seed:   params.Seed,
		Path:   m.Path,
		Rows:   strings.Split(strings.TrimSuffix(m.Grid.String(), "\n"), "\n"),
		Colors: make([][]int, len(m.Grid.Blocks)),
	}

	if start, ok := m.Start(); ok {
		for _, d := range guide.New(m.Path, start, maze.North).Breadcrumbs() {
			res.Breadcrumbs = append(res.Breadcrumbs, d.String())
		}
	}
	for y, row := range m.Grid.Blocks {
		res.Colors[y] = make([]int, len(row))
		for x, b := range row {
			if !b.Open {
				res.Colors[y][x] = int(b.Color)
			}
		}
	}
	if m.Grid.Goal != nil {
		res.Goal = &GoalResponse{Cell: m.Grid.Goal.Cell, Face: m.Grid.Goal.Face.String()}
	}
	return res
}

// Package guide turns a T-maze path into agent-relative steering decisions.
//
// A Guide stores one breadcrumb per path cell pointing toward the next cell
// on the goal-directed route, skipping each unit's decoy terminal cell. It
// tracks the agent's position and heading as the agent moves, and translates
// the breadcrumb under the agent into Forward, Left, Right or Noop.
package guide

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-tmaze/maze"
)

var ErrPositionOffPath = errors.New("guide position is not on the path")

// Movement is a relative steering decision.
type Movement int

const (
	Noop Movement = iota
	Forward
	Right
	Left
)

var movementNames = [...]string{"Noop", "Forward", "Right", "Left"}

func (m Movement) String() string {
	if m < Noop || m > Left {
		return fmt.Sprintf("Movement(%d)", int(m))
	}
	return movementNames[m]
}

// steering maps [heading][breadcrumb] to a movement. North facing a South
// breadcrumb turns right.
var steering = [4][5]Movement{
	maze.North: {Forward, Right, Right, Left, Noop},
	maze.East:  {Left, Forward, Right, Left, Noop},
	maze.South: {Right, Left, Forward, Right, Noop},
	maze.West:  {Right, Left, Left, Forward, Noop},
}

// Guide tracks an agent on a path and tells it how to reach the last cell.
type Guide struct {
	path        maze.Path
	breadcrumbs []maze.Direction
	position    maze.Cell
	heading     maze.Direction
}

// New creates a guide for path with the agent at position facing heading.
// The path is copied.
func New(path maze.Path, position maze.Cell, heading maze.Direction) *Guide {
	g := &Guide{
		path:        path.Clone(),
		breadcrumbs: make([]maze.Direction, len(path)),
		position:    position,
		heading:     heading,
	}
	for i := range g.path {
		g.breadcrumbs[i] = g.crumb(i)
	}
	return g
}

// crumb computes the direction from path[i] toward the next cell the agent
// should visit.
func (g *Guide) crumb(i int) maze.Direction {
	if i == len(g.path)-1 {
		return maze.NoDirection
	}

	// A branch cell leads to the end cell, not the terminal.
	j := i + 1
	if i == 2 || (i > 2 && (i-2)%4 == 0) {
		j++
	}
	// A truncated unit leaves the branch without an end cell.
	if j >= len(g.path) {
		return maze.NoDirection
	}

	from, to := g.path[i], g.path[j]
	switch {
	case from.X < to.X:
		return maze.East
	case from.X > to.X:
		return maze.West
	case from.Y < to.Y:
		return maze.South
	default:
		return maze.North
	}
}

// Reset places the agent at position facing heading.
func (g *Guide) Reset(position maze.Cell, heading maze.Direction) {
	g.position = position
	g.heading = heading
}

// Forward moves the agent one cell along its heading.
func (g *Guide) Forward() {
	g.position = g.Ahead()
}

// Ahead returns the cell in front of the agent.
func (g *Guide) Ahead() maze.Cell {
	p := g.position
	switch g.heading {
	case maze.North:
		p.Y--
	case maze.East:
		p.X++
	case maze.South:
		p.Y++
	case maze.West:
		p.X--
	}
	return p
}

// Right turns the agent clockwise.
func (g *Guide) Right() {
	g.heading = (g.heading + 1) % 4
}

// Left turns the agent counterclockwise.
func (g *Guide) Left() {
	g.heading = (g.heading + 3) % 4
}

// Movement returns the next movement toward the end of the path. It fails
// with ErrPositionOffPath when the agent is not on a path cell.
func (g *Guide) Movement() (Movement, error) {
	i := g.index()
	if i < 0 {
		return Noop, fmt.Errorf("%w: %s", ErrPositionOffPath, g.position)
	}
	if g.heading < maze.North || g.heading > maze.West {
		return Noop, nil
	}
	return steering[g.heading][g.breadcrumbs[i]], nil
}

// index returns the first path index at the agent position, or -1.
func (g *Guide) index() int {
	for i, c := range g.path {
		if c == g.position {
			return i
		}
	}
	return -1
}

// AtGoal reports whether the agent stands on the last path cell.
func (g *Guide) AtGoal() bool {
	return len(g.path) > 0 && g.position == g.path[len(g.path)-1]
}

// Position returns the agent position.
func (g *Guide) Position() maze.Cell {
	return g.position
}

// Heading returns the agent heading.
func (g *Guide) Heading() maze.Direction {
	return g.heading
}

// Breadcrumbs returns a copy of the per-cell directions.
func (g *Guide) Breadcrumbs() []maze.Direction {
	out := make([]maze.Direction, len(g.breadcrumbs))
	copy(out, g.breadcrumbs)
	return out
}

// Path returns a copy of the guided path.
func (g *Guide) Path() maze.Path {
	return g.path.Clone()
}

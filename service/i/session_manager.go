package i

import (
	"context"
	"time"

	"github.com/beka-birhanu/vinom-tmaze/drive"
	"github.com/beka-birhanu/vinom-tmaze/guide"
	"github.com/beka-birhanu/vinom-tmaze/maze"
	"github.com/google/uuid"
)

// SessionState is a snapshot of a guided-run session.
type SessionState struct {
	ID       uuid.UUID
	Params   maze.Params
	Position maze.Cell
	Heading  maze.Direction
	Driver   drive.Driver
	Next     guide.Movement // Guide advice for the current position and heading
	AtGoal   bool
}

// SessionManager owns the guided-run sessions.
type SessionManager interface {
	// Maze returns the maze for params, generating it on a cache miss.
	Maze(ctx context.Context, params maze.Params) (*maze.TMaze, error)

	// CreateSession starts a session on the maze for params and returns its
	// state and an access token.
	CreateSession(ctx context.Context, params maze.Params) (SessionState, string, error)

	// Session returns the state of a session.
	Session(id uuid.UUID) (SessionState, error)

	// Step runs one controller cycle with the given driver. manual is used by
	// the override and hijack drivers and ignored otherwise. The driver only
	// becomes the session's driver when the step succeeds.
	Step(id uuid.UUID, driver drive.Driver, manual *drive.Response) (SessionState, drive.Outcome, error)

	// Reset returns the agent to the start of the maze.
	Reset(id uuid.UUID) (SessionState, error)

	// Run drives the agent to the goal for at most maxSteps cycles.
	Run(id uuid.UUID, maxSteps int) (SessionState, drive.Trial, error)

	// Close removes a session.
	Close(id uuid.UUID) error

	// Sweep removes sessions idle for longer than the session TTL and returns
	// how many were removed.
	Sweep(now time.Time) int
}

// Package sessionapi exposes guided-run sessions over HTTP.
package sessionapi

import (
	"github.com/beka-birhanu/vinom-tmaze/drive"
	"github.com/beka-birhanu/vinom-tmaze/maze"
	"github.com/beka-birhanu/vinom-tmaze/service/i"
)

// CreateSessionRequest selects the maze for a new session. Missing fields
// fall back to the configured defaults.
type CreateSessionRequest struct {
	Width  *int   `json:"width"`
	Height *int   `json:"height"`
	Seed   *int64 `json:"seed"`
}

// StepRequest runs one controller cycle.
type StepRequest struct {
	Driver string `json:"driver" binding:"required"`
	Manual string `json:"manual"`
}

// RunRequest drives the agent to the goal.
type RunRequest struct {
	MaxSteps int `json:"max_steps" binding:"required"`
}

// StateResponse describes a session.
type StateResponse struct {
	ID       string    `json:"id"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Seed     int64     `json:"seed"`
	Position maze.Cell `json:"position"`
	Heading  string    `json:"heading"`
	Driver   string    `json:"driver"`
	Next     string    `json:"next"`
	AtGoal   bool      `json:"at_goal"`
}

// CreateSessionResponse carries the new session and its access token.
type CreateSessionResponse struct {
	StateResponse
	Token string `json:"token"`
}

// OutcomeResponse describes one applied controller cycle.
type OutcomeResponse struct {
	Driver   string `json:"driver"`
	Response string `json:"response"`
	Blocked  bool   `json:"blocked"`
}

// StepResponse is returned after a step.
type StepResponse struct {
	Outcome OutcomeResponse `json:"outcome"`
	State   StateResponse   `json:"state"`
}

// RunResponse is returned after a run.
type RunResponse struct {
	Trial drive.Trial   `json:"trial"`
	State StateResponse `json:"state"`
}

func (r CreateSessionRequest) params(d Defaults) maze.Params {
	s := maze.Params{Width: d.Width, Height: d.Height, Seed: d.Seed}
	if r.Width != nil {
		s.Width = *r.Width
	}
	if r.Height != nil {
		s.Height = *r.Height
	}
	if r.Seed != nil {
		s.Seed = *r.Seed
	}
	return s
}

func newStateResponse(s i.SessionState) StateResponse {
	return StateResponse{
		ID:       s.ID.String(),
		Width:    s.Params.Width,
		Height:   s.Params.Height,
		Seed:     s.Params.Seed,
		Position: s.Position,
		Heading:  s.Heading.String(),
		Driver:   s.Driver.String(),
		Next:     s.Next.String(),
		AtGoal:   s.AtGoal,
	}
}

func newOutcomeResponse(o drive.Outcome) OutcomeResponse {
	return OutcomeResponse{
		Driver:   o.Driver.String(),
		Response: o.Response.String(),
		Blocked:  o.Blocked,
	}
}

package drive

import (
	"github.com/beka-birhanu/vinom-tmaze/guide"
	"github.com/beka-birhanu/vinom-tmaze/maze"
)

// Outcome describes one controller cycle.
type Outcome struct {
	Driver   Driver   `json:"driver"`
	Response Response `json:"response"`
	Blocked  bool     `json:"blocked"` // Blocked is true when a forward response hit a wall
}

// Trial summarizes a run toward the goal.
type Trial struct {
	Steps    int  `json:"steps"`
	Forwards int  `json:"forwards"`
	Turns    int  `json:"turns"`
	Reached  bool `json:"reached"`
}

// Controller drives one agent through a maze.
type Controller struct {
	guide   *guide.Guide
	policy  Policy
	grid    *maze.Grid
	driver  Driver
	manual  *Response
	start   maze.Cell
	heading maze.Direction
}

// NewController creates a controller for g. The guide's current position and
// heading become the reset point. When grid is not nil, forward responses
// into wall blocks are not applied.
func NewController(g *guide.Guide, p Policy, grid *maze.Grid) *Controller {
	return &Controller{
		guide:   g,
		policy:  p,
		grid:    grid,
		driver:  PolicyDriver,
		start:   g.Position(),
		heading: g.Heading(),
	}
}

// SetDriver selects who decides the next responses.
func (c *Controller) SetDriver(d Driver) error {
	if d < PolicyDriver || d > GotoGoal {
		return ErrUnknownDriver
	}
	c.driver = d
	return nil
}

// Driver returns the active driver.
func (c *Controller) Driver() Driver {
	return c.driver
}

// SetManual queues a response for the next Override or Hijack cycle.
func (c *Controller) SetManual(r Response) {
	c.manual = &r
}

// Guide returns the guide the controller moves.
func (c *Controller) Guide() *guide.Guide {
	return c.guide
}

// Step decides one response with the active driver and applies it.
func (c *Controller) Step() (Outcome, error) {
	r, err := c.decide()
	if err != nil {
		return Outcome{Driver: c.driver, Response: Wait}, err
	}
	return c.apply(r), nil
}

func (c *Controller) decide() (Response, error) {
	switch c.driver {
	case PolicyDriver:
		return c.policy.Respond(), nil

	case Override, Hijack:
		if c.manual == nil {
			return Wait, ErrNoManualResponse
		}
		r := *c.manual
		c.manual = nil
		if c.driver == Override {
			c.policy.Override(r)
		}
		return r, nil

	case GotoGoal:
		m, err := c.guide.Movement()
		if err != nil {
			return Wait, err
		}
		r := responseFor(m)
		c.policy.Override(r)
		return r, nil
	}
	return Wait, ErrUnknownDriver
}

func (c *Controller) apply(r Response) Outcome {
	out := Outcome{Driver: c.driver, Response: r}
	switch r {
	case Forward:
		if c.grid != nil && !c.grid.IsOpen(c.guide.Ahead()) {
			out.Blocked = true
			return out
		}
		c.guide.Forward()
	case Right:
		c.guide.Right()
	case Left:
		c.guide.Left()
	}
	return out
}

// Reset puts the agent back at the reset point and drops any queued manual
// response.
func (c *Controller) Reset() {
	c.guide.Reset(c.start, c.heading)
	c.manual = nil
}

// Run drives to the goal with the guide for at most maxSteps cycles. The
// active driver is restored afterwards.
func (c *Controller) Run(maxSteps int) (Trial, error) {
	prev := c.driver
	c.driver = GotoGoal
	defer func() { c.driver = prev }()

	var trial Trial
	for trial.Steps < maxSteps {
		m, err := c.guide.Movement()
		if err != nil {
			return trial, err
		}
		if m == guide.Noop {
			trial.Reached = true
			return trial, nil
		}

		out, err := c.Step()
		if err != nil {
			return trial, err
		}
		trial.Steps++
		switch out.Response {
		case Forward:
			if !out.Blocked {
				trial.Forwards++
			}
		case Right, Left:
			trial.Turns++
		}
	}
	trial.Reached = c.guide.AtGoal()
	return trial, nil
}

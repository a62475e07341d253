// Package drive selects an agent response each cycle and applies it to a
// T-maze guide. The response comes from an external decision policy, from a
// queued manual command, or from the guide itself when driving to the goal.
package drive

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-tmaze/guide"
	"github.com/beka-birhanu/vinom-tmaze/maze"
)

var (
	ErrNoManualResponse = errors.New("no manual response queued")
	ErrUnknownDriver    = errors.New("unknown driver")
	ErrUnknownResponse  = errors.New("unknown response")
)

// Response is the action an agent performs in one cycle.
type Response int

const (
	Wait Response = iota
	Forward
	Right
	Left
)

var responseNames = [...]string{"wait", "forward", "right", "left"}

func (r Response) String() string {
	if r < Wait || r > Left {
		return fmt.Sprintf("Response(%d)", int(r))
	}
	return responseNames[r]
}

// ParseResponse maps a response name to its value. Matching ignores case.
func ParseResponse(s string) (Response, error) {
	for i, name := range responseNames {
		if strings.EqualFold(name, s) {
			return Response(i), nil
		}
	}
	return Wait, fmt.Errorf("%w: %q", ErrUnknownResponse, s)
}

// Driver chooses who decides the response.
type Driver int

const (
	// PolicyDriver lets the decision policy act on its own.
	PolicyDriver Driver = iota
	// Override executes a manual response and lets the policy learn it.
	Override
	// Hijack executes a manual response without telling the policy.
	Hijack
	// GotoGoal executes the guide's movement and lets the policy learn it.
	GotoGoal
)

var driverNames = [...]string{"policy", "override", "hijack", "goto_goal"}

func (d Driver) String() string {
	if d < PolicyDriver || d > GotoGoal {
		return fmt.Sprintf("Driver(%d)", int(d))
	}
	return driverNames[d]
}

// ParseDriver maps a driver name to its value. Matching ignores case.
func ParseDriver(s string) (Driver, error) {
	for i, name := range driverNames {
		if strings.EqualFold(name, s) {
			return Driver(i), nil
		}
	}
	return PolicyDriver, fmt.Errorf("%w: %q", ErrUnknownDriver, s)
}

// Policy is the external decision policy.
type Policy interface {
	// Respond returns the policy's own choice for the current cycle.
	Respond() Response
	// Override replaces the policy's choice for the current cycle so it can
	// learn from the executed response.
	Override(Response)
}

// responseFor converts a guide movement into the response that performs it.
func responseFor(m guide.Movement) Response {
	switch m {
	case guide.Forward:
		return Forward
	case guide.Right:
		return Right
	case guide.Left:
		return Left
	default:
		return Wait
	}
}

// RandomPolicy is a stand-in policy that picks uniformly among the four
// responses and remembers the last executed one.
type RandomPolicy struct {
	rng  maze.Rand
	last Response
}

// NewRandomPolicy creates a RandomPolicy drawing from rng.
func NewRandomPolicy(rng maze.Rand) *RandomPolicy {
	return &RandomPolicy{rng: rng}
}

// Respond implements Policy.
func (p *RandomPolicy) Respond() Response {
	p.last = Response(p.rng.Intn(len(responseNames)))
	return p.last
}

// Override implements Policy.
func (p *RandomPolicy) Override(r Response) {
	p.last = r
}

// Last returns the most recently executed response known to the policy.
func (p *RandomPolicy) Last() Response {
	return p.last
}

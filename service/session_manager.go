package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-tmaze/drive"
	"github.com/beka-birhanu/vinom-tmaze/guide"
	"github.com/beka-birhanu/vinom-tmaze/maze"
	"github.com/beka-birhanu/vinom-tmaze/service/i"
	"github.com/google/uuid"
)

const (
	defaultSessionTTL = 30 * time.Minute

	// SessionClaim is the token claim holding the session id.
	SessionClaim = "session_id"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionForbidden = errors.New("token does not grant access to this session")
	ErrMazeTooSmall     = errors.New("maze path has no cells")
	ErrInvalidStepLimit = errors.New("step limit must be positive")
	ErrMissingConfig    = errors.New("session manager config is incomplete")
)

type session struct {
	sync.Mutex
	id         uuid.UUID
	params     maze.Params
	controller *drive.Controller
	lastSeen   time.Time
}

// state must be called with s locked.
func (s *session) state() (i.SessionState, error) {
	g := s.controller.Guide()
	next, err := g.Movement()
	if err != nil {
		return i.SessionState{}, err
	}
	return i.SessionState{
		ID:       s.id,
		Params:   s.params,
		Position: g.Position(),
		Heading:  g.Heading(),
		Driver:   s.controller.Driver(),
		Next:     next,
		AtGoal:   g.AtGoal(),
	}, nil
}

// SessionManager keeps guided-run sessions in memory.
// Implements i.SessionManager.
type SessionManager struct {
	cache     i.MazeCache
	tokenizer i.Tokenizer
	logger    i.Logger
	ttl       time.Duration
	sessions  map[uuid.UUID]*session
	now       func() time.Time
	sync.RWMutex
}

type Config struct {
	Cache      i.MazeCache
	Tokenizer  i.Tokenizer
	Logger     i.Logger
	SessionTTL time.Duration // Idle lifetime of a session; also the token lifetime
}

func NewSessionManager(c *Config) (*SessionManager, error) {
	if c == nil || c.Cache == nil || c.Tokenizer == nil || c.Logger == nil {
		return nil, ErrMissingConfig
	}
	ttl := c.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionManager{
		cache:     c.Cache,
		tokenizer: c.Tokenizer,
		logger:    c.Logger,
		ttl:       ttl,
		sessions:  make(map[uuid.UUID]*session),
		now:       time.Now,
	}, nil
}

// Maze returns the maze for params. Wall colors come from a fresh source seeded
// with params.Seed, so cached and freshly generated mazes rasterize alike.
func (sm *SessionManager) Maze(ctx context.Context, params maze.Params) (*maze.TMaze, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	path, err := sm.cache.GetOrGenerate(ctx, params, func() (maze.Path, error) {
		return params.Path(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading maze %dx%d seed %d: %w", params.Width, params.Height, params.Seed, err)
	}
	return maze.FromPath(path, params.Width, params.Height, rand.New(rand.NewSource(params.Seed)))
}

func (sm *SessionManager) CreateSession(ctx context.Context, params maze.Params) (i.SessionState, string, error) {
	m, err := sm.Maze(ctx, params)
	if err != nil {
		return i.SessionState{}, "", err
	}
	start, ok := m.Start()
	if !ok {
		return i.SessionState{}, "", ErrMazeTooSmall
	}

	g := guide.New(m.Path, start, maze.North)
	policy := drive.NewRandomPolicy(rand.New(rand.NewSource(params.Seed)))
	s := &session{
		id:         uuid.New(),
		params:     params,
		controller: drive.NewController(g, policy, m.Grid),
		lastSeen:   sm.now(),
	}

	token, err := sm.tokenizer.Generate(map[string]interface{}{SessionClaim: s.id.String()}, sm.ttl)
	if err != nil {
		return i.SessionState{}, "", err
	}
	state, err := s.state()
	if err != nil {
		return i.SessionState{}, "", err
	}

	sm.Lock()
	sm.sessions[s.id] = s
	sm.Unlock()
	sm.logger.Info(fmt.Sprintf("created session %s on %dx%d maze seed %d", s.id, params.Width, params.Height, params.Seed))
	return state, token, nil
}

// acquire returns the session locked and marked as used. The caller must
// unlock it.
func (sm *SessionManager) acquire(id uuid.UUID) (*session, error) {
	sm.RLock()
	s, ok := sm.sessions[id]
	sm.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.Lock()
	s.lastSeen = sm.now()
	return s, nil
}

func (sm *SessionManager) Session(id uuid.UUID) (i.SessionState, error) {
	s, err := sm.acquire(id)
	if err != nil {
		return i.SessionState{}, err
	}
	defer s.Unlock()
	return s.state()
}

func (sm *SessionManager) Step(id uuid.UUID, driver drive.Driver, manual *drive.Response) (i.SessionState, drive.Outcome, error) {
	s, err := sm.acquire(id)
	if err != nil {
		return i.SessionState{}, drive.Outcome{}, err
	}
	defer s.Unlock()

	prev := s.controller.Driver()
	if err := s.controller.SetDriver(driver); err != nil {
		return i.SessionState{}, drive.Outcome{}, err
	}
	if manual != nil && (driver == drive.Override || driver == drive.Hijack) {
		s.controller.SetManual(*manual)
	}
	out, err := s.controller.Step()
	if err != nil {
		// A failed step leaves the session as it was.
		_ = s.controller.SetDriver(prev)
		return i.SessionState{}, out, err
	}
	state, err := s.state()
	return state, out, err
}

func (sm *SessionManager) Reset(id uuid.UUID) (i.SessionState, error) {
	s, err := sm.acquire(id)
	if err != nil {
		return i.SessionState{}, err
	}
	defer s.Unlock()

	s.controller.Reset()
	return s.state()
}

func (sm *SessionManager) Run(id uuid.UUID, maxSteps int) (i.SessionState, drive.Trial, error) {
	if maxSteps <= 0 {
		return i.SessionState{}, drive.Trial{}, ErrInvalidStepLimit
	}
	s, err := sm.acquire(id)
	if err != nil {
		return i.SessionState{}, drive.Trial{}, err
	}
	defer s.Unlock()

	trial, err := s.controller.Run(maxSteps)
	if err != nil {
		return i.SessionState{}, trial, err
	}
	state, err := s.state()
	return state, trial, err
}

func (sm *SessionManager) Close(id uuid.UUID) error {
	sm.Lock()
	defer sm.Unlock()
	if _, ok := sm.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(sm.sessions, id)
	sm.logger.Info(fmt.Sprintf("closed session %s", id))
	return nil
}

func (sm *SessionManager) Sweep(now time.Time) int {
	sm.Lock()
	defer sm.Unlock()

	removed := 0
	for id, s := range sm.sessions {
		s.Lock()
		idle := now.Sub(s.lastSeen)
		s.Unlock()
		if idle > sm.ttl {
			delete(sm.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		sm.logger.Info(fmt.Sprintf("swept %d idle sessions", removed))
	}
	return removed
}

// Authorize checks that claims grant access to session id.
func Authorize(claims map[string]interface{}, id uuid.UUID) error {
	raw, ok := claims[SessionClaim].(string)
	if !ok {
		return ErrSessionForbidden
	}
	claimed, err := uuid.Parse(raw)
	if err != nil || claimed != id {
		return ErrSessionForbidden
	}
	return nil
}

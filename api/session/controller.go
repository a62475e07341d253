package sessionapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-tmaze/drive"
	"github.com/beka-birhanu/vinom-tmaze/guide"
	"github.com/beka-birhanu/vinom-tmaze/maze"
	"github.com/beka-birhanu/vinom-tmaze/service"
	"github.com/beka-birhanu/vinom-tmaze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Defaults are the maze parameters used when a request omits them.
type Defaults struct {
	Width  int
	Height int
	Seed   int64
}

// SessionController manages guided-run sessions.
type SessionController struct {
	sessionManager i.SessionManager
	defaults       Defaults
}

// NewSessionController initializes a SessionController.
func NewSessionController(sm i.SessionManager, d Defaults) (*SessionController, error) {
	if sm == nil {
		return nil, errors.New("session manager is nil")
	}
	return &SessionController{
		sessionManager: sm,
		defaults:       d,
	}, nil
}

// RegisterPublic registers public routes.
func (sc *SessionController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/sessions", sc.create)
}

// RegisterProtected registers protected routes.
func (sc *SessionController) RegisterProtected(route *gin.RouterGroup) {
	sessions := route.Group("/sessions")
	{
		sessions.GET("/:ID", sc.state)
		sessions.POST("/:ID/steps", sc.step)
		sessions.POST("/:ID/reset", sc.reset)
		sessions.POST("/:ID/runs", sc.run)
		sessions.DELETE("/:ID", sc.close)
	}
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSessionForbidden):
		return http.StatusForbidden
	case errors.Is(err, guide.ErrPositionOffPath):
		return http.StatusConflict
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, service.ErrInvalidStepLimit),
		errors.Is(err, drive.ErrUnknownDriver),
		errors.Is(err, drive.ErrUnknownResponse),
		errors.Is(err, drive.ErrNoManualResponse):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func abortWith(ctx *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		ctx.JSON(status, gin.H{"error": "internal error"})
		return
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}

// sessionID parses the ID route parameter and checks it against the token claims.
func sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return uuid.Nil, false
	}

	claims, _ := ctx.Get(ContextSessionClaims)
	c, _ := claims.(map[string]interface{})
	if err := service.Authorize(c, id); err != nil {
		abortWith(ctx, err)
		return uuid.Nil, false
	}
	return id, true
}

// create starts a session.
func (sc *SessionController) create(ctx *gin.Context) {
	var request CreateSessionRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	state, token, err := sc.sessionManager.CreateSession(ctx.Request.Context(), request.params(sc.defaults))
	if err != nil {
		abortWith(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, &CreateSessionResponse{
		StateResponse: newStateResponse(state),
		Token:         token,
	})
}

// state reports the session state and the guide's advice.
func (sc *SessionController) state(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	state, err := sc.sessionManager.Session(id)
	if err != nil {
		abortWith(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newStateResponse(state))
}

// step runs one controller cycle.
func (sc *SessionController) step(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request StepRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	driver, err := drive.ParseDriver(request.Driver)
	if err != nil {
		abortWith(ctx, err)
		return
	}
	var manual *drive.Response
	if request.Manual != "" {
		r, err := drive.ParseResponse(request.Manual)
		if err != nil {
			abortWith(ctx, err)
			return
		}
		manual = &r
	}

	state, out, err := sc.sessionManager.Step(id, driver, manual)
	if err != nil {
		abortWith(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &StepResponse{
		Outcome: newOutcomeResponse(out),
		State:   newStateResponse(state),
	})
}

// reset returns the agent to the start.
func (sc *SessionController) reset(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	state, err := sc.sessionManager.Reset(id)
	if err != nil {
		abortWith(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newStateResponse(state))
}

// run drives the agent to the goal.
func (sc *SessionController) run(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request RunRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, trial, err := sc.sessionManager.Run(id, request.MaxSteps)
	if err != nil {
		abortWith(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &RunResponse{
		Trial: trial,
		State: newStateResponse(state),
	})
}

// close ends the session.
func (sc *SessionController) close(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	if err := sc.sessionManager.Close(id); err != nil {
		abortWith(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

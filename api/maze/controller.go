package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-tmaze/maze"
	"github.com/beka-birhanu/vinom-tmaze/service/i"
	"github.com/gin-gonic/gin"
)

// MazeController serves maze generation requests.
type MazeController struct {
	sessionManager i.SessionManager
	defaults       Defaults
}

// NewMazeController initializes a MazeController.
func NewMazeController(sm i.SessionManager, d Defaults) (*MazeController, error) {
	if sm == nil {
		return nil, errors.New("session manager is nil")
	}
	return &MazeController{
		sessionManager: sm,
		defaults:       d,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/mazes", mc.maze)
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {}

// maze generates, or loads from the cache, the requested maze.
func (mc *MazeController) maze(ctx *gin.Context) {
	var query MazeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := query.params(mc.defaults)
	m, err := mc.sessionManager.Maze(ctx.Request.Context(), params)
	if err != nil {
		if errors.Is(err, maze.ErrInvalidDimensions) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(params, m))
}

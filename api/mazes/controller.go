package mazeapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/amazeing-api/generation"
	"github.com/beka-birhanu/amazeing-api/service"
	"github.com/beka-birhanu/amazeing-api/service/i"
	"github.com/beka-birhanu/amazeing-api/solver"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController manages maze construction and replay operations.
type MazeController struct {
	mazeManager i.MazeManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(mm i.MazeManager) (*MazeController, error) {
	if mm == nil {
		return nil, errors.New("maze controller requires a maze manager")
	}
	return &MazeController{
		mazeManager: mm,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.create)
		mazes.GET("/:ID", mc.byID)
		mazes.POST("/:ID/regenerate", mc.regenerate)
		mazes.GET("/:ID/frames", mc.frameCount)
		mazes.GET("/:ID/frames/:N", mc.frame)
		mazes.POST("/:ID/solve", mc.solve)
	}
}

// create handles generation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	algo := generation.FrontierGrowth
	if request.Algorithm != "" {
		var err error
		algo, err = generation.ParseAlgorithm(request.Algorithm)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	record, err := mc.mazeManager.Create(ctx, i.MazeSpec{
		Width:     request.Width,
		Height:    request.Height,
		Entry:     request.Entry.point(),
		Exit:      request.Exit.point(),
		Algorithm: algo,
		Pattern:   request.Pattern,
		Seed:      request.Seed,
	})
	if err != nil {
		if errors.Is(err, generation.ErrInvalidConfig) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, toMazeResponse(record))
}

// byID retrieves a stored maze.
func (mc *MazeController) byID(ctx *gin.Context) {
	id, ok := mc.mazeID(ctx)
	if !ok {
		return
	}

	record, err := mc.mazeManager.ByID(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return
	}

	ctx.JSON(http.StatusOK, toMazeResponse(record))
}

// regenerate rebuilds a stored maze with the next seed.
func (mc *MazeController) regenerate(ctx *gin.Context) {
	id, ok := mc.mazeID(ctx)
	if !ok {
		return
	}

	record, err := mc.mazeManager.Regenerate(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return
	}

	ctx.JSON(http.StatusOK, toMazeResponse(record))
}

// frameCount reports the replay length of a maze.
func (mc *MazeController) frameCount(ctx *gin.Context) {
	id, ok := mc.mazeID(ctx)
	if !ok {
		return
	}

	count, err := mc.mazeManager.FrameCount(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no frames for maze"})
		return
	}

	ctx.JSON(http.StatusOK, &FrameCountResponse{Count: count})
}

// frame returns one replay snapshot.
func (mc *MazeController) frame(ctx *gin.Context) {
	id, ok := mc.mazeID(ctx)
	if !ok {
		return
	}

	index, err := strconv.Atoi(ctx.Params.ByName("N"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "frame index must be an integer"})
		return
	}

	snap, locked, err := mc.mazeManager.Frame(id, index)
	if err != nil {
		switch {
		case errors.Is(err, generation.ErrFrameRange):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrFramesUnavailable):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "no frames for maze"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading frame"})
		}
		return
	}

	ctx.JSON(http.StatusOK, toFrameResponse(index, snap, locked))
}

// solve runs the solver over a stored maze.
func (mc *MazeController) solve(ctx *gin.Context) {
	id, ok := mc.mazeID(ctx)
	if !ok {
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	path, err := mc.mazeManager.Solve(ctx, id, request.Entry.point(), request.Exit.point())
	if err != nil {
		if errors.Is(err, solver.ErrNoPath) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &SolveResponse{Path: path})
}

// mazeID parses the :ID route parameter.
func (mc *MazeController) mazeID(ctx *gin.Context) (uuid.UUID, bool) {
	idString := ctx.Params.ByName("ID")
	id, err := uuid.Parse(idString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return uuid.Nil, false
	}
	return id, true
}

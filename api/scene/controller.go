// Package sceneapi handles maze scene generation and retrieval requests.
package sceneapi

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/beka-birhanu/maze-world-gen/maze"
	"github.com/beka-birhanu/maze-world-gen/scene"
	"github.com/beka-birhanu/maze-world-gen/sdf"
	"github.com/beka-birhanu/maze-world-gen/service"
	"github.com/beka-birhanu/maze-world-gen/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const latestLimit = 20

// SceneController manages scene generation operations.
type SceneController struct {
	scenes i.SceneManager
}

// NewSceneController initializes a SceneController.
func NewSceneController(s i.SceneManager) (*SceneController, error) {
	return &SceneController{
		scenes: s,
	}, nil
}

// Register registers the scene routes.
func (sc *SceneController) Register(route *gin.RouterGroup) {
	scenes := route.Group("/scenes")
	{
		scenes.POST("/", sc.create)
		scenes.GET("/", sc.latest)
		scenes.GET("/:ID", sc.byID)
		scenes.GET("/:ID/sdf", sc.asSDF)
	}
}

// create handles scene generation requests.
func (sc *SceneController) create(ctx *gin.Context) {
	var request CreateSceneRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seed := time.Now().UnixNano()
	if request.Seed != nil {
		seed = *request.Seed
	}

	record, err := sc.scenes.Create(request.GridSize, request.CellSize, request.MinWalls, seed)
	if err != nil {
		if isInvalidConfig(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating scene"})
		return
	}

	ctx.JSON(http.StatusCreated, record)
}

// latest lists recently generated scenes.
func (sc *SceneController) latest(ctx *gin.Context) {
	records, err := sc.scenes.Latest(latestLimit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while listing scenes"})
		return
	}

	ctx.JSON(http.StatusOK, records)
}

// byID retrieves a previously generated scene.
func (sc *SceneController) byID(ctx *gin.Context) {
	IDString := ctx.Params.ByName("ID")
	ID, err := uuid.Parse(IDString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	record, err := sc.scenes.ByID(ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No Scene"})
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// asSDF renders a previously generated scene as an SDF world document.
func (sc *SceneController) asSDF(ctx *gin.Context) {
	IDString := ctx.Params.ByName("ID")
	ID, err := uuid.Parse(IDString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	record, err := sc.scenes.ByID(ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No Scene"})
		return
	}

	var buf bytes.Buffer
	if err := sdf.Write(&buf, record.Walls); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while rendering scene"})
		return
	}

	ctx.Data(http.StatusOK, "application/xml", buf.Bytes())
}

// isInvalidConfig reports whether err is a parameter validation failure
// rather than an internal one.
func isInvalidConfig(err error) bool {
	return errors.Is(err, maze.ErrInvalidDimension) ||
		errors.Is(err, maze.ErrNegativeMinWalls) ||
		errors.Is(err, scene.ErrInvalidCellSize) ||
		errors.Is(err, service.ErrDimensionTooLarge)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/service/workouts"
)

// WorkoutsHandler handles training template HTTP endpoints.
type WorkoutsHandler struct {
	svc    *workouts.Service
	logger *zap.Logger
}

// NewWorkoutsHandler constructs the HTTP handler adapter.
func NewWorkoutsHandler(svc *workouts.Service, logger *zap.Logger) *WorkoutsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkoutsHandler{svc: svc, logger: logger}
}

// List returns the templates, optionally filtered by ?q= title substring.
func (h *WorkoutsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"workouts": h.svc.List(c.Query("q"))})
}

// Get fetches one template by ID.
func (h *WorkoutsHandler) Get(c *gin.Context) {
	workout, err := h.svc.Get(c.Param("workoutId"))
	if err != nil {
		if errors.Is(err, workouts.ErrWorkoutNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workout not found"})
			return
		}
		h.logger.Error("failed fetching workout", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch workout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workout": workout})
}

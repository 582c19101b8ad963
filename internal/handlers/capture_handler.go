package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tracking-jobs/backend/internal/dtos"
	"github.com/tracking-jobs/backend/internal/services"
)

// CaptureHandler owns the endpoint the browser extension talks to. The
// response bodies are part of the extension contract and must not drift.
type CaptureHandler struct {
	CaptureService *services.CaptureService
}

func NewCaptureHandler(capture *services.CaptureService) *CaptureHandler {
	return &CaptureHandler{CaptureService: capture}
}

// CaptureJob is the POST /api/jobs/capture endpoint
func (h *CaptureHandler) CaptureJob(c *gin.Context) {
	var req dtos.CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	job, err := h.CaptureService.Capture(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: user_id, title, company"})
		case errors.Is(err, services.ErrInvalidUser):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		case errors.Is(err, services.ErrDuplicateJob):
			c.JSON(http.StatusConflict, gin.H{"error": "Job already exists for this user"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save job to database"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"job":     job,
		"message": "Job captured successfully",
	})
}

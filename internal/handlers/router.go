package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tracking-jobs/backend/internal/auth"
	"github.com/tracking-jobs/backend/internal/services"
	"gorm.io/gorm"
)

// NewRouter wires the full HTTP surface. Shared between main and the handler
// tests so both exercise the same middleware and routes.
func NewRouter(db *gorm.DB, llm *services.LLMService) *gin.Engine {
	captureService := services.NewCaptureService(db)
	jobService := services.NewJobService(db)
	statsService := services.NewStatsService(db)

	captureHandler := NewCaptureHandler(captureService)
	jobHandler := NewJobHandler(llm, jobService)
	dashboardHandler := NewDashboardHandler(statsService)

	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-User-ID"}
	// The extension expects preflight to answer 200, not gin-cors's 204.
	config.OptionsResponseStatusCode = http.StatusOK
	r.Use(cors.New(config))

	// Capture endpoint: called by the extension with user_id in the body,
	// so it sits outside the identity middleware.
	r.POST("/api/jobs/capture", captureHandler.CaptureJob)

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)

		protected := api.Group("", auth.RequireUser(db))
		{
			protected.GET("/dashboard", dashboardHandler.Dashboard)

			// Job Routes
			protected.POST("/jobs/extract", jobHandler.ParseJob)
			protected.GET("/jobs", jobHandler.ListJobs)
			protected.POST("/jobs", jobHandler.CreateJob)
			protected.GET("/jobs/:id", jobHandler.GetJob)
			protected.PATCH("/jobs/:id", jobHandler.UpdateJob)
			protected.PATCH("/jobs/:id/status", jobHandler.UpdateJobStatus)
			protected.DELETE("/jobs/:id", jobHandler.DeleteJob)
		}
	}

	return r
}

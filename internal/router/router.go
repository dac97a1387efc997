// Package router sets up all HTTP routes for the API.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/complianceai/audit-api/internal/config"
	"github.com/complianceai/audit-api/internal/handlers"
	"github.com/complianceai/audit-api/internal/middleware"
	"github.com/complianceai/audit-api/internal/services/analysis"
	"github.com/complianceai/audit-api/internal/services/report"
)

// Setup creates and configures the Gin router with all routes.
func Setup(cfg *config.Config, analyzer analysis.Analyzer, renderer *report.Renderer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	h := handlers.NewHandler(cfg, analyzer, renderer)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)

	// Landing page and liveness
	r.GET("/", h.Root)
	r.GET("/health", h.HealthCheck)

	// The audit pipeline — rate limited because every upload triggers a
	// paid model call.
	r.POST("/upload", rateLimiter.RateLimit(), h.Upload)

	// Stateless text download helper
	r.POST("/download_report", h.DownloadReport)

	// Generated reports, served read-only
	r.Static("/reports", cfg.ReportsDir)

	return r
}

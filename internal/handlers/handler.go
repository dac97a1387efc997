// Package handlers contains HTTP handler functions for the API.
//
// Go Pattern: Handlers in Gin receive a *gin.Context which provides
// request data, response methods, and middleware values. We group related
// handlers into a struct (Handler) that holds shared dependencies —
// dependency injection via struct fields, no globals. This makes testing
// easy: construct a Handler with a mock analyzer and a temp directory.
package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/complianceai/audit-api/internal/config"
	"github.com/complianceai/audit-api/internal/models"
	"github.com/complianceai/audit-api/internal/services/analysis"
	"github.com/complianceai/audit-api/internal/services/report"
)

// Handler holds shared dependencies for all HTTP handlers.
type Handler struct {
	Config   *config.Config
	Analyzer analysis.Analyzer
	Renderer *report.Renderer
}

// NewHandler creates a new handler with all dependencies.
func NewHandler(cfg *config.Config, analyzer analysis.Analyzer, renderer *report.Renderer) *Handler {
	return &Handler{
		Config:   cfg,
		Analyzer: analyzer,
		Renderer: renderer,
	}
}

// Root serves the static landing page if one is configured, falling back
// to a minimal JSON indicator.
// GET /
func (h *Handler) Root(c *gin.Context) {
	if h.Config.FrontendIndex != "" {
		if _, err := os.Stat(h.Config.FrontendIndex); err == nil {
			c.File(h.Config.FrontendIndex)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"service": "compliance-audit-api",
		"status":  "ok",
	})
}

// HealthCheck returns the API health status.
// GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
		Model:   h.Config.OpenAIModel,
	})
}

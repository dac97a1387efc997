// upload.go is the audit pipeline orchestrator.
//
// POST /upload — validate → extract → analyze → render → respond.
//
// Only format validation rejects a request; extraction and analysis
// failures degrade to placeholder text so a report is always produced.
// A render failure is the one fatal mid-pipeline error — without a file
// on disk there is no retrieval path to return.
package handlers

import (
	"crypto/subtle"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/complianceai/audit-api/internal/models"
	"github.com/complianceai/audit-api/internal/services/policy"
	"github.com/complianceai/audit-api/internal/services/report"
)

// maxUploadSize is the max request body size for uploads (50MB).
const maxUploadSize = 50 << 20

// Upload runs the full audit pipeline for an uploaded policy document.
// POST /upload
//
// Multipart form fields:
//   - file        (required) — the PDF policy document
//   - standard    (required) — free-text name of the compliance framework
//   - access_code (optional) — pro access code for watermark-free output
func (h *Handler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "No file provided. Upload a PDF with the field name 'file'. Max size: 50MB.",
			Code:    http.StatusBadRequest,
		})
		return
	}
	defer file.Close()

	standard := c.PostForm("standard")
	if standard == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Missing 'standard' form field naming the compliance framework to audit against.",
			Code:    http.StatusBadRequest,
		})
		return
	}

	// The upload is held in memory for the duration of the request and
	// never written to disk — policy documents are sensitive, and nothing
	// downstream needs a file path.
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "read_error",
			Message: "Failed to read uploaded file",
			Code:    http.StatusBadRequest,
		})
		return
	}

	// Validation is the only client-visible rejection in the pipeline.
	// It runs before any external call or disk write, so rejected payloads
	// are never persisted and never reach the model.
	if !policy.ValidatePDF(data) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_pdf",
			Message: "The uploaded file does not appear to be a valid PDF",
			Code:    http.StatusBadRequest,
		})
		return
	}

	// Extraction is fail-soft: an unreadable document degrades to a
	// sentinel so the audit still runs and a report is still produced.
	text := policy.ErrorPlaceholder
	if result, err := policy.Extract(data, h.Config.MaxPages); err != nil {
		log.Printf("⚠️  Extraction degraded for %s: %v", header.Filename, err)
	} else {
		text = result.Text
	}

	// Analysis is fail-soft too — a degraded Outcome carries its own
	// placeholder text, so there is always something to render.
	outcome := h.Analyzer.Analyze(
		c.Request.Context(),
		policy.Truncate(text, h.Config.MaxAnalysisChars),
		standard,
	)

	// The access grant is a pure string comparison, independent of the
	// pipeline; it only selects the render mode. An empty configured code
	// would make every request pro, so it never grants.
	isPro := h.accessGranted(c.PostForm("access_code"))

	rendered, err := h.Renderer.Render(outcome.Text, report.Metadata{
		SourceFilename: header.Filename,
		Standard:       standard,
		Pro:            isPro,
	})
	if err != nil {
		log.Printf("❌ Report render failed for %s: %v", header.Filename, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "render_failed",
			Message: "Failed to generate the report document",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.UploadResponse{
		Report: outcome.Text,
		PDFURL: "/reports/" + rendered.Filename,
		IsPro:  isPro,
		Status: "completed",
	})
}

// accessGranted compares the client-supplied code against the configured
// secret in constant time.
func (h *Handler) accessGranted(code string) bool {
	if h.Config.AccessCode == "" || code == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(h.Config.AccessCode)) == 1
}

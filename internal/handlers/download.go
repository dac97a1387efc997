// download.go streams a posted report body back as a downloadable file.
//
// POST /download_report — stateless convenience for the frontend's
// "download as text" button; independent of the audit pipeline.
package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/complianceai/audit-api/internal/models"
)

// maxDownloadSize caps the echoed body (1MB) — report text is small.
const maxDownloadSize = 1 << 20

// DownloadReport echoes the request body back with attachment headers so
// the browser saves it as a text file.
// POST /download_report
func (h *Handler) DownloadReport(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxDownloadSize))
	if err != nil || len(body) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Request body must contain the report text to download",
			Code:    http.StatusBadRequest,
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="audit_report.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", body)
}

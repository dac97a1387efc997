// Package report renders analysis text into a paginated PDF document.
//
// Two output modes exist, selected by the caller's access grant:
//
//   - Trial: a large light-grey "TRIAL MODE - DRAFT" watermark above the
//     header and a red upgrade warning at the end; no signature block.
//   - Pro: no watermark; an "OFFICIAL DIGITAL AUDIT RECORD" signature
//     block with a generation timestamp and a fresh random validation
//     token. The token is decorative — not stored or checked anywhere.
//
// Report files accumulate in the output directory; there is no eviction.
package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
)

// Metadata carries per-request decoration for the rendered report.
type Metadata struct {
	SourceFilename string // Original upload name, shown under the header
	Standard       string // Compliance standard the audit ran against
	Pro            bool   // Access grant: pro reports skip the watermark
}

// Rendered describes a report written to disk.
type Rendered struct {
	Filename string // Generated file name, unique per request
	Path     string // Full path on disk
	Token    string // Validation token; empty for trial reports
}

// Renderer writes audit reports into a fixed output directory.
type Renderer struct {
	dir string
}

// NewRenderer creates a renderer targeting dir. The directory is created
// and probed at startup by config.Load, so it is assumed usable here.
func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// Render formats the analysis text into a PDF and persists it under a
// generated filename. A write failure is fatal for the request — there is
// no retrieval path to return without a file.
func (r *Renderer) Render(analysisText string, meta Metadata) (*Rendered, error) {
	pdf := fpdf.New("P", "mm", "A4", "")

	// Sanitize keeps every rune in the Latin-1 range; the translator maps
	// the result onto the cp1252 bytes the core fonts expect.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Per-page footer with the page number.
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// Watermark sits above the header so trial reports are unmistakable.
	if !meta.Pro {
		pdf.SetFont("Arial", "B", 40)
		pdf.SetTextColor(220, 220, 220)
		pdf.CellFormat(0, 20, "TRIAL MODE - DRAFT", "", 1, "C", false, 0, "")
	}

	// Header and brand block.
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "COMPLIANCE AI | AUDIT REPORT", "", 1, "C", false, 0, "")
	y := pdf.GetY()
	pdf.Line(10, y, 200, y)
	pdf.Ln(4)

	if meta.SourceFilename != "" || meta.Standard != "" {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 8, tr(Sanitize(fmt.Sprintf("Document: %s  |  Standard: %s", meta.SourceFilename, meta.Standard))), "", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	// Body: cleaned analysis text wrapped at page width.
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 7, tr(Sanitize(analysisText)), "", "L", false)

	token := ""
	if meta.Pro {
		// Signature block for official reports.
		pdf.Ln(20)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 10, strings.Repeat("_", 60), "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 10, "OFFICIAL DIGITAL AUDIT RECORD", "", 1, "C", false, 0, "")

		token = newValidationToken()
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 8, "Timestamp: "+time.Now().UTC().Format("2006-01-02 15:04:05 UTC"), "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 8, "Auditor ID: AI-NIST-VERIFIER-001", "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 8, "Validation Token: "+token, "", 1, "C", false, 0, "")
	} else {
		// Upsell warning closes out trial reports.
		pdf.Ln(5)
		pdf.SetFont("Arial", "B", 10)
		pdf.SetTextColor(255, 0, 0)
		pdf.CellFormat(0, 10, "UNVERIFIED DRAFT - UPGRADE TO REMOVE WATERMARK", "", 1, "C", false, 0, "")
	}

	filename := newReportFilename()
	path := filepath.Join(r.dir, filename)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return nil, fmt.Errorf("failed to write report %s: %w", filename, err)
	}

	return &Rendered{Filename: filename, Path: path, Token: token}, nil
}

// newReportFilename generates a collision-free report name. The timestamp
// keeps files sortable; the uuid suffix keeps concurrent requests within
// the same second from colliding.
func newReportFilename() string {
	return fmt.Sprintf("Report_%s_%s.pdf",
		time.Now().Format("20060102_150405"),
		uuid.New().String()[:8])
}

// newValidationToken generates a short random token, unique per render.
// Reports are not centrally tracked, so randomness is all that is needed.
func newValidationToken() string {
	return strings.ToUpper(uuid.New().String()[:8])
}

// Package policy validates uploaded policy documents and extracts their text.
//
// We use the ledongthuc/pdf library for text extraction. It's a pure Go
// implementation — no CGO or external dependencies required. This makes
// deployment simpler (just a single binary).
package policy

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// ErrorPlaceholder stands in for the document text when extraction fails.
// The pipeline deliberately continues with this sentinel instead of failing
// the request — an unreadable document still gets a report.
const ErrorPlaceholder = "Error reading document text."

// TruncationMarker is appended when the extracted text exceeds the
// analysis character cap.
const TruncationMarker = "\n\n[Document truncated due to length...]"

// ExtractionResult holds the output from a policy text extraction.
type ExtractionResult struct {
	Text      string // Extracted text content
	PageCount int    // Pages in the document (not pages read)
	WordCount int    // Word count of the extracted text
}

// ValidatePDF reports whether the data looks like a PDF, by magic bytes only.
// The client-supplied filename and content type are ignored on purpose —
// they are trivially spoofed. A pure byte check cannot itself fail, so a
// mismatch always rejects.
func ValidatePDF(data []byte) bool {
	// PDF files start with "%PDF-"
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}

// Extract parses the accepted byte buffer as a PDF and concatenates the
// plain text of up to maxPages leading pages.
//
// Go Pattern: The pdf library needs io.ReaderAt for random access, so the
// upload is held in memory rather than written to disk — uploaded policy
// text never touches storage.
func Extract(data []byte, maxPages int) (*ExtractionResult, error) {
	reader := bytes.NewReader(data)

	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	pageCount := pdfReader.NumPage()
	if pageCount == 0 {
		return &ExtractionResult{}, nil
	}

	pagesToRead := pageCount
	if maxPages > 0 && pagesToRead > maxPages {
		pagesToRead = maxPages
	}

	var allText strings.Builder
	for i := 1; i <= pagesToRead; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip pages that fail individually — scanned or image-only
			// pages are common in policy documents.
			continue
		}

		if allText.Len() > 0 {
			allText.WriteString("\n")
		}
		allText.WriteString(strings.TrimSpace(text))
	}

	extracted := strings.TrimSpace(allText.String())

	return &ExtractionResult{
		Text:      extracted,
		PageCount: pageCount,
		WordCount: countWords(extracted),
	}, nil
}

// Truncate caps text at max bytes, appending a marker so the model knows
// the input was cut. The cut backs off to a rune boundary so multi-byte
// characters are never split. A max of zero or less means no cap.
func Truncate(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + TruncationMarker
}

// countWords counts the number of words in a text string.
func countWords(text string) int {
	return len(strings.Fields(text))
}

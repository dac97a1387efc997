// Package models defines the data structures used throughout the application.
//
// There is no database here — every value is request-scoped. Models are
// plain structs with JSON tags that shape the API contract.
package models

// UploadResponse is returned by POST /upload on success.
//
// Report carries the raw analysis text so the frontend can show it inline;
// PDFURL is the retrieval path for the rendered document. Degraded
// extraction or analysis still produces a 200 with this shape — the report
// text simply contains a failure placeholder.
type UploadResponse struct {
	Report string `json:"report"`
	PDFURL string `json:"pdf_url"`
	IsPro  bool   `json:"is_pro"`
	Status string `json:"status"`
}

// ErrorResponse is a standard error format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Model   string `json:"model"`
}

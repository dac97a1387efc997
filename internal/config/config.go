// Package config handles application configuration.
//
// Go Pattern: Configuration via environment variables with sensible defaults.
// In Go, we typically use structs to hold configuration, and a function to
// load values from environment variables — no framework, just explicit code.
// Everything the handlers need is passed in at startup; nothing reads the
// environment after Load() returns.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// defaultAccessCode is the development-only pro access code.
// Release mode refuses to start with this value still in place.
const defaultAccessCode = "dev-access-code-change-in-production"

// Config holds all application configuration.
type Config struct {
	// Server settings
	Port    string
	GinMode string // "debug", "release", or "test"

	// OpenAI settings (compliance analysis)
	OpenAIAPIKey string
	OpenAIModel  string // Chat model used for audits

	// Pro access code — matching clients get watermark-free reports
	// with a signature block. A single shared secret, compared per request.
	AccessCode string

	// Pipeline limits
	MaxPages         int // Leading pages read from the uploaded PDF
	MaxAnalysisChars int // Character cap on text sent for analysis
	AnalysisTimeout  int // Seconds before the remote call is abandoned

	// Storage
	ReportsDir    string // Generated PDF reports, served under /reports
	FrontendIndex string // Optional static landing page

	// Rate limiting
	RateLimit int // Upload requests per hour per client IP

	// CORS
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
//
// Go Pattern: Functions that can fail return (value, error). Startup
// problems (missing credential, unwritable report directory) surface here,
// before the server accepts a single request.
func Load() (*Config, error) {
	cfg := &Config{
		// Server defaults
		Port:    getEnv("PORT", "8000"),
		GinMode: getEnv("GIN_MODE", "debug"),

		// OpenAI
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		// Pro access code — optional in dev, required in production
		AccessCode: getEnv("ACCESS_CODE", defaultAccessCode),

		// Pipeline limits
		MaxPages:         getEnvInt("MAX_PAGES", 10),
		MaxAnalysisChars: getEnvInt("MAX_ANALYSIS_CHARS", 10000),
		AnalysisTimeout:  getEnvInt("ANALYSIS_TIMEOUT_SECONDS", 120),

		// Storage
		ReportsDir:    getEnv("REPORTS_DIR", "reports"),
		FrontendIndex: getEnv("FRONTEND_INDEX", "frontend/index.html"),

		// Rate limiting
		RateLimit: getEnvInt("RATE_LIMIT", 100),

		// CORS — in production, set this to your frontend URL
		AllowedOrigins: []string{
			getEnv("CORS_ORIGIN", "http://localhost:5173"),
		},
	}

	// Security: the analysis credential MUST be set in production mode.
	// In debug mode an empty key is allowed — every analysis degrades to a
	// placeholder, which is fine for local pipeline work.
	if cfg.GinMode == "release" && cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set in production; refusing to start without it")
	}

	// Security: the shared access code MUST be rotated in production mode.
	if cfg.GinMode == "release" && cfg.AccessCode == defaultAccessCode {
		return nil, fmt.Errorf("ACCESS_CODE must be set in production; refusing to start with default code")
	}

	// The report directory must exist and be writable before we serve —
	// a render failure mid-request is a 500, but a misconfigured disk is
	// a startup error.
	if err := ensureWritableDir(cfg.ReportsDir); err != nil {
		return nil, fmt.Errorf("reports directory %q not usable: %w", cfg.ReportsDir, err)
	}

	return cfg, nil
}

// ensureWritableDir creates the directory if needed and probes writability
// with a throwaway file.
func ensureWritableDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	probe := filepath.Join(dir, ".write-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return err
	}
	return os.Remove(probe)
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvInt reads an integer environment variable with a fallback.
func getEnvInt(key string, fallback int) int {
	str := getEnv(key, "")
	if str == "" {
		return fallback
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return fallback
	}
	return val
}

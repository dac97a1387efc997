// config_test.go — Tests for environment-driven configuration and the
// startup validation that refuses to serve when misconfigured.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

// setBaseEnv points the reports directory at a temp dir so tests never
// touch the working directory.
func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("REPORTS_DIR", filepath.Join(t.TempDir(), "reports"))
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8000")
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %q, want %q", cfg.OpenAIModel, "gpt-4o-mini")
	}
	if cfg.MaxPages != 10 {
		t.Errorf("MaxPages = %d, want 10", cfg.MaxPages)
	}
	if cfg.MaxAnalysisChars != 10000 {
		t.Errorf("MaxAnalysisChars = %d, want 10000", cfg.MaxAnalysisChars)
	}
	if cfg.AnalysisTimeout != 120 {
		t.Errorf("AnalysisTimeout = %d, want 120", cfg.AnalysisTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("MAX_PAGES", "20")
	t.Setenv("OPENAI_MODEL", "gpt-4o")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9000")
	}
	if cfg.MaxPages != 20 {
		t.Errorf("MaxPages = %d, want 20", cfg.MaxPages)
	}
	if cfg.OpenAIModel != "gpt-4o" {
		t.Errorf("OpenAIModel = %q, want %q", cfg.OpenAIModel, "gpt-4o")
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("MAX_PAGES", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.MaxPages != 10 {
		t.Errorf("MaxPages = %d, want fallback 10", cfg.MaxPages)
	}
}

// TestLoad_ReleaseModeRequirements verifies that production refuses to
// start without a credential or with the default access code.
func TestLoad_ReleaseModeRequirements(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{
			name:    "release without API key fails",
			env:     map[string]string{"GIN_MODE": "release", "ACCESS_CODE": "real-code"},
			wantErr: true,
		},
		{
			name:    "release with default access code fails",
			env:     map[string]string{"GIN_MODE": "release", "OPENAI_API_KEY": "sk-test"},
			wantErr: true,
		},
		{
			name: "release fully configured succeeds",
			env: map[string]string{
				"GIN_MODE":       "release",
				"OPENAI_API_KEY": "sk-test",
				"ACCESS_CODE":    "real-code",
			},
			wantErr: false,
		},
		{
			name:    "debug without anything succeeds",
			env:     map[string]string{},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if tt.wantErr && err == nil {
				t.Error("Load() expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Load() unexpected error: %v", err)
			}
		})
	}
}

// TestLoad_UnwritableReportsDir verifies the startup probe.
func TestLoad_UnwritableReportsDir(t *testing.T) {
	// A file where the directory should be makes MkdirAll fail.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocked")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	t.Setenv("REPORTS_DIR", blocker)

	if _, err := Load(); err == nil {
		t.Error("Load() with a file in place of the reports dir expected error, got nil")
	}
}

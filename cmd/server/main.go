// Package main is the entry point for the Compliance Audit API server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/complianceai/audit-api/internal/config"
	"github.com/complianceai/audit-api/internal/router"
	"github.com/complianceai/audit-api/internal/services/analysis"
	"github.com/complianceai/audit-api/internal/services/report"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("🚀 Compliance Audit API %s starting...", Version)

	// Optional .env for local development; ignored when absent.
	_ = godotenv.Load()

	// Step 1: Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	log.Printf("📋 Config loaded: port=%s, model=%s, gin_mode=%s", cfg.Port, cfg.OpenAIModel, cfg.GinMode)
	log.Printf("📁 Reports directory: %s", cfg.ReportsDir)

	os.Setenv("GIN_MODE", cfg.GinMode)

	// Step 2: Create Services
	analyzer := analysis.New(cfg.OpenAIAPIKey, cfg.OpenAIModel, time.Duration(cfg.AnalysisTimeout)*time.Second)
	if cfg.OpenAIAPIKey == "" {
		log.Println("⚠️  No OpenAI API key set (every analysis will degrade — set OPENAI_API_KEY)")
	} else {
		log.Println("✅ Analysis client configured")
	}

	renderer := report.NewRenderer(cfg.ReportsDir)

	// Step 3: Setup HTTP Router
	r := router.Setup(cfg, analyzer, renderer)

	// Step 4: Start the HTTP Server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 180 * time.Second, // the model call dominates request latency
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server listening on http://localhost:%s", cfg.Port)
		log.Printf("📖 Health check: http://localhost:%s/health", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	// Step 5: Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Printf("🛑 Received signal %v, shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("👋 Server stopped. Goodbye!")
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/meeting-lens-team/meeting-lens/docs"
	"github.com/meeting-lens-team/meeting-lens/internal/adapter/handler"
	"github.com/meeting-lens-team/meeting-lens/internal/usecase/analysis"
	pkgai "github.com/meeting-lens-team/meeting-lens/pkg/ai"
	"github.com/meeting-lens-team/meeting-lens/pkg/config"
	pkgvalidator "github.com/meeting-lens-team/meeting-lens/pkg/validator"
)

// @title           Meeting Lens API
// @version         1.0
// @description     Sends a meeting transcript or recording to transcription and language-model services and returns the structured communication analysis.

// @host      localhost:8080
// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = false

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Cap request bodies at the upload ceiling
	e.Use(middleware.BodyLimit(cfg.MaxBodySize()))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize AI collaborators
	log.Println("🤖 Initializing AI components...")
	geminiClient := pkgai.NewGeminiClient(&cfg.Gemini)
	assemblyClient := pkgai.NewAssemblyAIClient(&cfg.Assembly)

	analysisService := analysis.NewService(geminiClient, assemblyClient, cfg.Server.AnalyzeTimeout, logger)
	analysisController := handler.NewAnalysisController(analysisService, cfg, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, analysisController)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/meeting-lens-team/meeting-lens/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg                *config.Config
	analysisController *AnalysisController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, analysisController *AnalysisController) *Router {
	return &Router{
		cfg:                cfg,
		analysisController: analysisController,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.POST("/analyze", rt.analysisController.Analyze)
	api.POST("/rename", rt.analysisController.Rename)

	// Minimal browser front end; state lives in the page, never here.
	if rt.cfg != nil && rt.cfg.Server.StaticDir != "" {
		e.Static("/", rt.cfg.Server.StaticDir)
	}
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ok",
	})
}

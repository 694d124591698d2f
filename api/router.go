package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pagelens/pagelens/analyzer"
	"github.com/pagelens/pagelens/api/handler"
	"github.com/pagelens/pagelens/api/middleware"
	"github.com/pagelens/pagelens/config"
	"github.com/pagelens/pagelens/scraper"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger
//	API:     Auth (if enabled) → RateLimit
//
// Health endpoint is intentionally outside auth so monitoring probes always work.
func NewRouter(an *analyzer.Analyzer, sc *scraper.Scraper, cfg *config.Config, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	v1 := r.Group("/api/v1")

	// Health — no auth required.
	v1.GET("/health", handler.Health(sc, startTime))

	// Protected group — auth + rate limit.
	protected := v1.Group("")
	if cfg.Auth.Enabled {
		protected.Use(middleware.Auth(cfg.Auth.APIKeys))
	}
	protected.Use(middleware.RateLimit(cfg.RateLimit))

	// Analyze a URL or raw text.
	protected.POST("/analyze", handler.Analyze(an))

	// Rebuild the report for the most recently analyzed URL.
	protected.GET("/report", handler.Report(an))

	return r
}

package api

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/summarizer-api/api/health"
	"github.com/killallgit/summarizer-api/api/jobs"
	"github.com/killallgit/summarizer-api/api/reports"
	"github.com/killallgit/summarizer-api/api/types"
	"github.com/killallgit/summarizer-api/api/version"
	"github.com/killallgit/summarizer-api/api/videos"
	"github.com/killallgit/summarizer-api/api/ws"
	_ "github.com/killallgit/summarizer-api/docs/swagger"
	"github.com/killallgit/summarizer-api/internal/logging"
	reportsService "github.com/killallgit/summarizer-api/internal/services/reports"
	"github.com/killallgit/summarizer-api/internal/services/summarize"
	"github.com/killallgit/summarizer-api/pkg/config"
	"github.com/killallgit/summarizer-api/pkg/gemini"
	"github.com/killallgit/summarizer-api/pkg/youtube"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Prometheus scrape endpoint
	if deps.Metrics != nil {
		metricsHandler := deps.Metrics.Handler(func() {
			if deps.JobManager != nil {
				deps.Metrics.SetActiveJobs(deps.JobManager.ActiveCount())
			}
		})
		engine.GET("/metrics", gin.WrapH(metricsHandler))
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if deps.SummarizeService == nil {
		if err := initializeSummarizeService(deps, cfg); err != nil {
			return err
		}
	}
	if deps.ProgressHub == nil {
		deps.ProgressHub = ws.NewHub()
	}
	if deps.JobManager == nil {
		deps.JobManager = summarize.NewJobManager(deps.SummarizeService, deps.Metrics, nil)
		deps.JobManager.SetBroadcaster(deps.ProgressHub)
	}

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Summarization endpoints run LLM calls, so keep the rate tight (1 req/s, burst of 3)
	videoGroup := v1.Group("/videos")
	videoGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 1, 3))
	videos.RegisterRoutes(videoGroup, deps)

	// Job polling is cheap (10 req/s, burst of 20)
	jobGroup := v1.Group("/jobs")
	jobGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	jobs.RegisterRoutes(jobGroup, deps)

	// Report history needs the database
	if deps.DB != nil && deps.DB.DB != nil {
		if deps.ReportService == nil {
			deps.ReportService = reportsService.NewService(
				reportsService.NewRepository(deps.DB.DB),
				cfg.Output,
				logging.New(cfg.Logging.Level, cfg.Logging.Format),
			)
		}

		reportGroup := v1.Group("/reports")
		reportGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
		reports.RegisterRoutes(reportGroup, deps)
	}

	// Progress push channel
	wsGroup := v1.Group("/ws")
	ws.RegisterRoutes(wsGroup, deps)

	return nil
}

// initializeSummarizeService creates and configures the summarization service
func initializeSummarizeService(deps *types.Dependencies, cfg *config.Config) error {
	log := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	generator, err := gemini.NewClient(
		context.Background(),
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.MaxRetries,
		cfg.Gemini.RequestTimeout,
		log,
	)
	if err != nil {
		return fmt.Errorf("creating gemini client: %w", err)
	}

	var source summarize.TranscriptSource = youtube.NewClient(youtube.DefaultClientOptions())
	source = summarize.NewCachingSource(source, 30*time.Minute)

	opts := []summarize.ServiceOption{}
	if deps.Metrics != nil {
		opts = append(opts, summarize.WithMetrics(deps.Metrics))
	}
	if deps.DB != nil && deps.DB.DB != nil {
		if deps.ReportService == nil {
			deps.ReportService = reportsService.NewService(
				reportsService.NewRepository(deps.DB.DB),
				cfg.Output,
				log,
			)
		}
		opts = append(opts, summarize.WithPersister(deps.ReportService))
	}

	deps.SummarizeService = summarize.NewService(source, generator, cfg.Defaults, log, opts...)
	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}

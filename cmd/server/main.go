package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gitroast/gitroast/internal/handlers"
	"github.com/gitroast/gitroast/internal/middleware"
	"github.com/gitroast/gitroast/internal/repositories"
	"github.com/gitroast/gitroast/internal/services"
	"github.com/gitroast/gitroast/internal/workers"
	"github.com/gitroast/gitroast/pkg/config"
	"github.com/gitroast/gitroast/pkg/database"
	"github.com/gitroast/gitroast/pkg/logger"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.AppConfig

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize logger
	logger.Init()

	// Initialize database
	if err := database.Init(cfg.Database.Path); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	cacheRepo := repositories.NewCacheRepository(database.DB)
	historyRepo := repositories.NewHistoryRepository(database.DB)

	cacheService := services.NewCacheService(cacheRepo, time.Duration(cfg.Cache.TTLMinutes)*time.Minute)
	historyService := services.NewHistoryService(historyRepo)
	analyticsService := services.NewAnalyticsService()
	rateLimiter := services.NewRateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)

	githubClient := services.NewGitHubClient(cfg.GitHub.Token)
	githubService := services.NewGitHubService(githubClient, time.Duration(cfg.GitHub.TimeoutSeconds)*time.Second)

	contributionService := services.NewContributionService()
	statisticsService := services.NewStatisticsService()
	evaluationService := services.NewEvaluationService()
	exportService := services.NewExportService()

	profileService := services.NewProfileService(
		githubService, contributionService, statisticsService,
		evaluationService, cacheService, rateLimiter, analyticsService,
	)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.TrackRequests(analyticsService))

	// Setup routes
	setupRoutes(router, profileService, historyService, exportService, analyticsService)

	// Start cache janitor
	janitorCtx, cancelJanitor := context.WithCancel(context.Background())
	janitor := workers.NewCacheJanitor(cacheService, time.Duration(cfg.Janitor.IntervalMinutes)*time.Minute)
	go func() {
		if err := janitor.Start(janitorCtx); err != nil && err != context.Canceled {
			log.Printf("Cache janitor exited: %v", err)
		}
	}()
	defer janitor.Stop()
	defer cancelJanitor()

	// Setup server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

func setupRoutes(
	router *gin.Engine,
	profileService *services.ProfileService,
	historyService *services.HistoryService,
	exportService *services.ExportService,
	analyticsService *services.AnalyticsService,
) {
	// Initialize handlers
	profileHandler := handlers.NewProfileHandler(profileService, historyService, exportService)
	historyHandler := handlers.NewHistoryHandler(historyService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	healthHandler := handlers.NewHealthHandler()

	api := router.Group("/api")
	{
		api.GET("/profiles/:username", profileHandler.GetProfile)
		api.GET("/profiles/:username/export", profileHandler.ExportProfile)
		api.GET("/compare", profileHandler.CompareProfiles)

		api.GET("/history", historyHandler.GetHistory)
		api.GET("/favorites", historyHandler.GetFavorites)
		api.POST("/favorites", historyHandler.AddFavorite)
		api.DELETE("/favorites/:username", historyHandler.RemoveFavorite)

		api.GET("/analytics/report", analyticsHandler.Report)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)
}

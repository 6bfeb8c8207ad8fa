package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tanvi150423/voguefit/internal/config"
	"github.com/Tanvi150423/voguefit/internal/handler"
	"github.com/Tanvi150423/voguefit/internal/repository"
	"github.com/Tanvi150423/voguefit/internal/scraper"
	"github.com/Tanvi150423/voguefit/internal/service"
	"github.com/Tanvi150423/voguefit/internal/trends"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("VogueFit Discovery Backend")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Optional database connection; everything runs without it
	var repo *repository.PostgresRepository
	if cfg.Postgres.DSN != "" {
		repo, err = repository.NewPostgresRepository(
			cfg.Postgres.DSN,
			cfg.Postgres.MaxConnections,
			cfg.Postgres.MaxIdleConnections,
		)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer repo.Close()
		log.Println("✅ Connected to PostgreSQL database")
	} else {
		log.Println("⚠️  No DATABASE_URL configured - trend persistence and search logging disabled")
	}

	// Initialize LLM client
	aiClient := service.NewGroqClient(&cfg.Groq)

	// Initialize trend store
	var trendSource trends.Source
	if repo != nil {
		trendSource = repo
	}
	trendStore := trends.NewStore(trendSource)
	initCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := trendStore.Initialize(initCtx); err != nil {
		log.Fatalf("Failed to initialize trend store: %v", err)
	}
	cancel()

	// Initialize scraping and fetching
	scrapeClient := scraper.NewClient(&cfg.Scraper)
	productCache := scraper.NewProductCache(cfg.Cache.TTL, cfg.Cache.SweepPeriod)
	defer productCache.Stop()
	fetcher := scraper.NewFetcher(scrapeClient, productCache, service.FilterByRelevance)

	// Initialize services
	interpreter := service.NewQueryInterpreter(aiClient)
	analyzer := service.NewTrendAnalyzer(aiClient, trendStore)
	var searchLogger service.SearchLogger
	if repo != nil {
		searchLogger = repo
	}
	discovery := service.NewDiscoveryService(interpreter, fetcher, analyzer, aiClient, searchLogger)
	recommender := service.NewStyleRecommender(aiClient, trendStore, fetcher)

	log.Println("✅ Services initialized")

	// Initialize handlers
	discoveryHandler := handler.NewDiscoveryHandler(discovery)
	styleHandler := handler.NewStyleHandler(recommender)
	metaHandler := handler.NewMetaHandler(trendStore)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "voguefit-discovery",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/discovery/search", discoveryHandler.Search)
		apiV1.POST("/search", discoveryHandler.UniversalSearch)
		apiV1.POST("/analyze", discoveryHandler.Analyze)
		apiV1.POST("/suggest", discoveryHandler.Suggest)
		apiV1.POST("/body-recommend", styleHandler.BodyRecommend)
		apiV1.GET("/trends", metaHandler.Trends)
		apiV1.GET("/platforms", metaHandler.Platforms)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API Documentation: http://localhost:%d/api/v1", cfg.Server.Port)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/chrisbarreras/resume-backend/config"
	_ "github.com/chrisbarreras/resume-backend/docs"
	"github.com/chrisbarreras/resume-backend/filter"
	"github.com/chrisbarreras/resume-backend/gemini"
	"github.com/chrisbarreras/resume-backend/handlers"
	"github.com/chrisbarreras/resume-backend/jobcontext"
	"github.com/chrisbarreras/resume-backend/ratelimit"
	"github.com/chrisbarreras/resume-backend/scraper"
	"github.com/chrisbarreras/resume-backend/storage"
	"github.com/chrisbarreras/resume-backend/validation"
)

// @title Resume Chat API
// @version 1.0
// @description AI chat assistant for Chris Barreras' portfolio site, with optional job-posting enrichment.

// @contact.name API Support
// @contact.email chris@barreras.codes

// @host localhost:8080
// @BasePath /

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// The API key is resolved once at startup; a missing key is a hard error.
	apiKey, err := cfg.ResolveAPIKey()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	log.Println("Initializing Gemini client...")
	geminiClient, err := gemini.NewClient(ctx, cfg, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	defer geminiClient.Close()
	log.Println("Gemini client initialized successfully")

	// Rate-limit counters must be shared across serving instances; fall back
	// to the in-memory store only when no project is configured (local dev).
	var counters ratelimit.CounterStore
	if cfg.ProjectID != "" {
		log.Println("Initializing Firestore counter store...")
		firestoreCounters, err := storage.NewFirestoreCounters(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Firestore counter store: %v", err)
		}
		defer firestoreCounters.Close()
		counters = firestoreCounters
		log.Println("Firestore counter store initialized successfully")
	} else {
		log.Println("WARNING: PROJECT_ID not set, using in-memory rate limiting (not safe for multi-instance deployments)")
		counters = ratelimit.NewMemoryStore()
	}
	limiter := ratelimit.NewLimiter(counters, cfg.RateLimitPerHour, cfg.RateLimitGlobalPerDay)

	timeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	var jobResolver jobcontext.Resolver
	switch cfg.JobResolverMode {
	case config.JobResolverBucket:
		log.Println("Initializing job post bucket...")
		bucket, err := storage.NewJobPostBucket(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize job post bucket: %v", err)
		}
		defer bucket.Close()
		if ids, err := bucket.ListJobPosts(ctx); err != nil {
			log.Printf("WARNING: Could not list job posts in bucket %s: %v", cfg.JobPostBucket, err)
		} else {
			log.Printf("Job post bucket %s has %d post(s)", cfg.JobPostBucket, len(ids))
		}
		jobResolver = jobcontext.NewBucketResolver(bucket)
	default:
		jobResolver = jobcontext.NewScrapeResolver(
			scraper.NewShortLinkResolver(cfg.ShortLinkHost, timeout),
			scraper.NewScraper(timeout, cfg.Debug),
		)
	}
	log.Printf("Job resolver mode: %s", cfg.JobResolverMode)

	contentFilter := filter.NewContentFilter(cfg, geminiClient)

	fitAnswerHandler := handlers.NewFitAnswerHandler(
		limiter,
		validation.NewValidator(cfg.MaxMessageLength),
		jobResolver,
		contentFilter,
		geminiClient,
		handlers.Policy{
			RefusalStatusOK:         cfg.RefusalStatusOK,
			MinJobDescriptionLength: cfg.MinJobDescriptionLength,
		},
	)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// CORS headers go on every response path, error paths included.
	corsConfig := cors.Config{
		AllowMethods:              []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:              []string{"Content-Type"},
		MaxAge:                    12 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	}
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthCheck)
	router.POST("/getFitAnswer", fitAnswerHandler.GetFitAnswer)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}

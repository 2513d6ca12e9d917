package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"propertyagent/internal/config"
	"propertyagent/internal/handler"
	"propertyagent/internal/repository"
	"propertyagent/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Print version info
	log.Printf("Property Search Agent Core")
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

	// Initialize database connection
	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	log.Println("✅ Connected to PostgreSQL database")

	// Load the school catalog snapshot for the resolver
	schools, err := repo.LoadSchools(context.Background())
	if err != nil {
		log.Fatalf("Failed to load school catalog: %v", err)
	}
	log.Printf("✅ Loaded %d schools into resolver catalog", len(schools))

	// Initialize services
	resolver := service.NewResolver(schools, cfg.Resolver.SimilarityThreshold)
	builder := service.NewQueryBuilder(cfg.Search.MaxResults)
	router := service.NewRouter(resolver, builder, repo)
	sessions := service.NewSessionManager()
	turnService := service.NewTurnService(sessions, router)

	log.Println("✅ Services initialized")
	log.Printf("   - Similarity threshold: %.2f", cfg.Resolver.SimilarityThreshold)
	log.Printf("   - Max results per search: %d", cfg.Search.MaxResults)

	// Initialize handlers
	turnHandler := handler.NewTurnHandler(turnService)
	schoolsHandler := handler.NewSchoolsHandler(repo)

	// Setup Gin router
	engine := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.Server.AllowedOrigins, ",")
	corsConfig.AllowMethods = strings.Split(cfg.Server.AllowedMethods, ",")
	corsConfig.AllowHeaders = strings.Split(cfg.Server.AllowedHeaders, ",")
	engine.Use(cors.New(corsConfig))

	// Health check endpoint
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "property-search-agent",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	engine.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := engine.Group("/api/v1")
	{
		apiV1.POST("/turn", turnHandler.Turn)
		apiV1.POST("/session/reset", turnHandler.Reset)
		apiV1.GET("/schools", schoolsHandler.List)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 Turn endpoint: http://localhost:%d/api/v1/turn", cfg.Server.Port)

	go func() {
		if err := engine.Run(addr); err != nil {
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

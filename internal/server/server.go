// Package server contains the HTTP handlers for the Hugin API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	_ "github.com/f-r00t/hugin-api/docs" // swagger docs
	"github.com/f-r00t/hugin-api/internal/cache"
	"github.com/f-r00t/hugin-api/internal/config"
	"github.com/f-r00t/hugin-api/internal/database"
	"github.com/f-r00t/hugin-api/internal/middleware"
	"github.com/f-r00t/hugin-api/internal/models"
	"github.com/f-r00t/hugin-api/internal/repository"
	"github.com/f-r00t/hugin-api/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	postRepo           repository.PostRepository
	encryptedGroupRepo repository.EncryptedGroupRepository
	hashtagRepo        repository.HashtagRepository

	postService           *service.PostService
	statisticsService     *service.StatisticsService
	encryptedGroupService *service.EncryptedGroupService
	hashtagService        *service.HashtagService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	server := &Server{
		config:             cfg,
		db:                 db,
		redis:              redisClient,
		promMiddleware:     middleware.InitMetrics("hugin-api"),
		postRepo:           repository.NewPostRepository(db),
		encryptedGroupRepo: repository.NewEncryptedGroupRepository(db),
		hashtagRepo:        repository.NewHashtagRepository(db),
	}

	fanOut := cfg.EnrichFanOut
	if fanOut > database.MaxOpenConns {
		fanOut = database.MaxOpenConns
	}
	server.postService = service.NewPostService(server.postRepo, fanOut)
	server.statisticsService = service.NewStatisticsService(server.postRepo)
	server.encryptedGroupService = service.NewEncryptedGroupService(server.encryptedGroupRepo)
	server.hashtagService = service.NewHashtagService(server.hashtagRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// OpenTelemetry spans; sets the traceID local the context middleware reads
	app.Use(middleware.TracingMiddleware())

	// Context middleware to propagate request ID and trace ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "*"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they are handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v2")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Hugin API Metrics Dashboard",
	}))

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Post routes. /latest and /encrypted must be registered before the
	// generic /:tx_hash route.
	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Get("/latest", s.GetLatestPosts)
	posts.Get("/encrypted/group", s.GetEncryptedGroupPosts)
	posts.Get("/encrypted/group/latest", s.GetLatestEncryptedGroupPosts)
	posts.Get("/encrypted/group/:tx_hash", s.GetEncryptedGroupPost)
	posts.Get("/:tx_hash/replies", s.GetPostReplies)
	posts.Get("/:tx_hash", s.GetPost)

	// Hashtag routes
	hashtags := api.Group("/hashtags")
	hashtags.Get("/", s.GetHashtags)
	hashtags.Get("/:name", s.GetHashtag)

	// Popularity rankings are the only aggregate views; they carry their
	// own per-IP rate limit on top of the global one.
	statistics := api.Group("/statistics")
	statistics.Get("/posts/popular", middleware.RateLimit(
		s.redis, 30, time.Minute, "popular_posts"), s.GetPopularPosts)
	statistics.Get("/boards/popular", middleware.RateLimit(
		s.redis, 30, time.Minute, "popular_boards"), s.GetPopularBoards)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	// Redis is a shield, not a dependency; its state is reported but does
	// not fail readiness.
	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "Hugin API",
		"version": "2.0.0",
		"status":  overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Hugin API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}

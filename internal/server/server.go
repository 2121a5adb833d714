// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"lumagram/internal/cache"
	"lumagram/internal/config"
	"lumagram/internal/database"
	"lumagram/internal/middleware"
	"lumagram/internal/models"
	"lumagram/internal/repository"
	"lumagram/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
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

	userRepo        repository.UserRepository
	followRepo      repository.FollowRepository
	hashtagRepo     repository.HashtagRepository
	postRepo        repository.PostRepository
	postLikeRepo    repository.PostLikeRepository
	commentRepo     repository.CommentRepository
	commentLikeRepo repository.CommentLikeRepository
	storyRepo       repository.StoryRepository
	savedRepo       repository.SavedRepository
	chatRepo        repository.ChatRepository

	userService    *service.UserService
	followService  *service.FollowService
	hashtagService *service.HashtagService
	postService    *service.PostService
	likeService    *service.LikeService
	commentService *service.CommentService
	storyService   *service.StoryService
	savedService   *service.SavedService
	chatService    *service.ChatService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	middleware.InitMiddleware(cfg)

	prom := middleware.InitMetrics("lumagram-api")

	server := &Server{
		config:          cfg,
		db:              db,
		redis:           redisClient,
		promMiddleware:  prom,
		userRepo:        repository.NewUserRepository(db),
		followRepo:      repository.NewFollowRepository(db),
		hashtagRepo:     repository.NewHashtagRepository(db),
		postRepo:        repository.NewPostRepository(db),
		postLikeRepo:    repository.NewPostLikeRepository(db),
		commentRepo:     repository.NewCommentRepository(db),
		commentLikeRepo: repository.NewCommentLikeRepository(db),
		storyRepo:       repository.NewStoryRepository(db),
		savedRepo:       repository.NewSavedRepository(db),
		chatRepo:        repository.NewChatRepository(db),
	}

	server.userService = service.NewUserService(server.userRepo, server.followRepo)
	server.followService = service.NewFollowService(server.followRepo, server.userRepo)
	server.hashtagService = service.NewHashtagService(server.hashtagRepo)
	server.postService = service.NewPostService(server.postRepo, server.hashtagRepo)
	server.likeService = service.NewLikeService(server.postLikeRepo, server.commentLikeRepo, server.postRepo, server.commentRepo)
	server.commentService = service.NewCommentService(server.commentRepo, server.postRepo)
	server.storyService = service.NewStoryService(server.storyRepo)
	server.savedService = service.NewSavedService(server.savedRepo, server.postRepo)
	server.chatService = service.NewChatService(server.chatRepo, server.userRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS must run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
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
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Lumagram Metrics Dashboard",
	}))

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/refresh", s.Refresh)
	auth.Post("/logout", s.Logout)
	auth.Post("/reset/request", middleware.RateLimit(
		s.redis, 3, 15*time.Minute, "reset_request"), s.RequestPasswordReset)
	auth.Post("/reset/verify", middleware.RateLimit(
		s.redis, 5, 15*time.Minute, "reset_verify"), s.VerifyPasswordReset)

	// Every data route requires authentication.
	protected := api.Group("", middleware.AuthRequired)

	// Profile routes
	users := protected.Group("/users")
	users.Get("/", s.ListProfiles)
	users.Get("/:id", s.GetProfile)
	users.Put("/:id", s.UpdateProfile)
	users.Delete("/:id", s.DeleteProfile)

	// Follow routes
	follows := protected.Group("/follows")
	follows.Post("/", s.CreateFollow)
	follows.Get("/", s.ListFollows)
	follows.Get("/:id", s.GetFollow)
	follows.Put("/:id", s.UpdateFollow)
	follows.Delete("/:id", s.DeleteFollow)

	// Hashtag routes
	hashtags := protected.Group("/hashtags")
	hashtags.Post("/", s.CreateHashtag)
	hashtags.Get("/", s.ListHashtags)
	hashtags.Get("/:id", s.GetHashtag)
	hashtags.Put("/:id", s.UpdateHashtag)
	hashtags.Delete("/:id", s.DeleteHashtag)

	// Post routes. /mine before /:id so "mine" never parses as an ID.
	posts := protected.Group("/posts")
	posts.Post("/", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "create_post"), s.CreatePost)
	posts.Get("/", s.ListPosts)
	posts.Get("/mine", s.ListMyPosts)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)

	// Post like routes
	postLikes := protected.Group("/post-likes")
	postLikes.Post("/", s.CreatePostLike)
	postLikes.Get("/", s.ListPostLikes)
	postLikes.Get("/:id", s.GetPostLike)
	postLikes.Put("/:id", s.UpdatePostLike)
	postLikes.Delete("/:id", s.DeletePostLike)

	// Comment routes
	comments := protected.Group("/comments")
	comments.Post("/", middleware.RateLimit(
		s.redis, 30, time.Minute, "create_comment"), s.CreateComment)
	comments.Get("/", s.ListComments)
	comments.Get("/:id/replies", s.ListCommentReplies)
	comments.Get("/:id", s.GetComment)
	comments.Put("/:id", s.UpdateComment)
	comments.Delete("/:id", s.DeleteComment)

	// Comment like routes
	commentLikes := protected.Group("/comment-likes")
	commentLikes.Post("/", s.CreateCommentLike)
	commentLikes.Get("/", s.ListCommentLikes)
	commentLikes.Get("/:id", s.GetCommentLike)
	commentLikes.Put("/:id", s.UpdateCommentLike)
	commentLikes.Delete("/:id", s.DeleteCommentLike)

	// Story routes
	stories := protected.Group("/stories")
	stories.Post("/", s.CreateStory)
	stories.Get("/", s.ListStories)
	stories.Get("/mine", s.ListMyStories)
	stories.Get("/:id", s.GetStory)
	stories.Put("/:id", s.UpdateStory)
	stories.Delete("/:id", s.DeleteStory)

	// Saved collection routes
	saved := protected.Group("/saved")
	saved.Get("/", s.GetSavedCollection)
	saved.Get("/items", s.ListSavedItems)
	saved.Post("/items", s.SavePost)
	saved.Delete("/items/:id", s.RemoveSavedItem)

	// Chat routes
	chats := protected.Group("/chats")
	chats.Post("/", s.CreateChat)
	chats.Get("/", s.ListChats)
	chats.Get("/:id/messages", s.ListMessages)
	chats.Post("/:id/messages", middleware.RateLimit(
		s.redis, 30, time.Minute, "send_message"), s.SendMessage)
	chats.Delete("/:id/messages/:messageId", s.DeleteMessage)
	chats.Get("/:id", s.GetChat)
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

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	// Redis is optional: running without it degrades caching but the
	// service can still take traffic, so "unavailable" stays ready.
	status := fiber.StatusOK
	overallStatus := "healthy"
	switch {
	case dbStatus == "unhealthy" || redisStatus == "unhealthy":
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	case redisStatus == "unavailable":
		overallStatus = "degraded"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
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
		AppName: "Lumagram API",
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

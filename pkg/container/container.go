package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"newsletter-backend/internal/config"
	infraCache "newsletter-backend/internal/infrastructure/cache"
	"newsletter-backend/internal/infrastructure/database"
	"newsletter-backend/internal/pages"
	"newsletter-backend/pkg/cache"
	"newsletter-backend/pkg/jwt"

	"newsletter-backend/internal/domains/user"
	userHandler "newsletter-backend/internal/domains/user/handler"
	userRepo "newsletter-backend/internal/domains/user/repository"
	userService "newsletter-backend/internal/domains/user/service"

	"newsletter-backend/internal/domains/newsletter/gateway"
	"newsletter-backend/internal/domains/newsletter/gateway/gemini"
	"newsletter-backend/internal/domains/newsletter/gateway/transcript"
	"newsletter-backend/internal/domains/newsletter/gateway/youtube"
	newsletterHandler "newsletter-backend/internal/domains/newsletter/handler"
	newsletterRepo "newsletter-backend/internal/domains/newsletter/repository"
	newsletterService "newsletter-backend/internal/domains/newsletter/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application. It is the root
// of the dependency graph; everything in it is a singleton.
type Container struct {
	// Infrastructure - shared across all domains
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Repositories
	UserRepo       user.Repository
	NewsletterRepo newsletterRepo.Repository

	// Upstream gateways
	Metadata    gateway.MetadataFetcher
	Transcripts gateway.TranscriptFetcher
	Generator   gateway.TextGenerator

	// Services
	UserService       user.Service
	NewsletterService newsletterService.Service

	// HTTP handlers
	UserHandler       *userHandler.UserHandler
	NewsletterHandler *newsletterHandler.NewsletterHandler
	PageHandler       *pages.Handler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the whole dependency graph in order:
// config -> infrastructure -> repositories/gateways -> services -> handlers.
// A wrong order here panics on a nil dependency, so keep the steps.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	// Redis only backs the video-metadata cache, so a failed
	// connection is a warning, not a startup failure.
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
			redisCache = nil
		} else {
			log.Println("✅ Redis connected")
		}
	}

	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES & GATEWAYS
	// ========================================
	log.Println("📦 Initializing repositories and gateways...")

	c.initRepositories()
	c.initGateways()
	log.Println("✅ Repositories and gateways initialized")

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.NewsletterRepo = newsletterRepo.NewPostgresRepository(pool)
}

func (c *Container) initGateways() {
	cfg := c.Config

	c.Metadata = youtube.NewClient(youtube.Config{
		APIKey:  cfg.YouTube.APIKey,
		BaseURL: cfg.YouTube.BaseURL,
	}, c.Cache)

	c.Transcripts = transcript.NewClient(transcript.Config{
		ServiceURL: cfg.Transcript.ServiceURL,
	})

	c.Generator = gemini.NewClient(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
	})
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.NewsletterService = newsletterService.NewNewsletterService(
		c.NewsletterRepo,
		c.Metadata,
		c.Transcripts,
		c.Generator,
	)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.NewsletterHandler = newsletterHandler.NewNewsletterHandler(c.NewsletterService)
	c.PageHandler = pages.NewHandler(c.JWTManager)
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases infrastructure connections. Called on shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
		log.Println("✅ Database connection closed")
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok && rc != nil {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Redis close failed: %v", err)
		} else {
			log.Println("✅ Redis connection closed")
		}
	}

	log.Println("👋 Container cleanup complete")
}

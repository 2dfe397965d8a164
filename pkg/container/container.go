package container

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/config"
	authorHandler "library-catalog/internal/domains/author/handler"
	authorRepo "library-catalog/internal/domains/author/repository"
	authorService "library-catalog/internal/domains/author/service"
	bookHandler "library-catalog/internal/domains/book/handler"
	bookRepo "library-catalog/internal/domains/book/repository"
	bookService "library-catalog/internal/domains/book/service"
	"library-catalog/internal/infrastructure/cache"
	"library-catalog/internal/infrastructure/database"
	"library-catalog/internal/infrastructure/ratelimit"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every long-lived dependency of the API process
type Container struct {
	// Infrastructure
	Config  *config.Config
	DB      *database.PostgresDB
	Redis   *redis.Client                 // nil when rate limiting is disabled
	Limiter *ratelimit.FixedWindowLimiter // nil when rate limiting is disabled

	// Repositories (entity store)
	AuthorRepo authorRepo.RepositoryInterface
	BookRepo   bookRepo.RepositoryInterface

	// Services
	AuthorService authorService.ServiceInterface
	BookService   bookService.ServiceInterface

	// Handlers
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.Handler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the dependency graph in order:
// config, database, redis, then the domain layers.
func NewContainer(ctx context.Context) (*Container, error) {
	log.Info().Msg("Initializing container")

	// STEP 1: configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// STEP 2: database
	db := database.NewPostgresDB(cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := database.EnsureSchema(ctx, db.Pool); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	c := New(cfg, db)

	// STEP 3: redis-backed write limiter, optional
	if cfg.RateLimit.Enabled() {
		c.initRateLimiter(ctx)
	}

	log.Info().Str("environment", cfg.App.Environment).Msg("Container initialized")
	return c, nil
}

// New wires repositories, services and handlers on an open database
func New(cfg *config.Config, db *database.PostgresDB) *Container {
	c := &Container{
		Config: cfg,
		DB:     db,
	}
	c.wireDomains(db.Pool)
	return c
}

func (c *Container) wireDomains(pool *pgxpool.Pool) {
	// Repositories
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)

	// Services: books resolve authors through the author store, authors list
	// their books through the book store
	c.BookService = bookService.NewService(c.BookRepo, c.AuthorRepo)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo)

	// Handlers
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewHandler(c.BookService)
}

// initRateLimiter leaves the limiter nil when Redis is unreachable at startup
func (c *Container) initRateLimiter(ctx context.Context) {
	rc, err := cache.Open(ctx, c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, write rate limiting disabled")
		return
	}

	limiter, err := ratelimit.NewFixedWindowLimiter(rc, c.Config.RateLimit.Prefix,
		c.Config.RateLimit.WritesPerMinute, time.Minute)
	if err != nil {
		log.Warn().Err(err).Msg("Invalid rate limit settings, write rate limiting disabled")
		_ = rc.Close()
		return
	}

	c.Redis = rc
	c.Limiter = limiter
	log.Info().Int("writes_per_minute", c.Config.RateLimit.WritesPerMinute).Msg("Write rate limiting enabled")
}

// Cleanup releases connections in reverse order of creation
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up resources")

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Redis")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}

	log.Info().Msg("Cleanup completed")
}

package container

import (
	"context"
	"fmt"
	"time"

	"bookstore-api/internal/config"
	infracache "bookstore-api/internal/infrastructure/cache"
	"bookstore-api/internal/infrastructure/database"
	"bookstore-api/pkg/cache"
	"bookstore-api/pkg/jwt"
	"bookstore-api/pkg/logger"

	authorHandler "bookstore-api/internal/domains/author/handler"
	authorRepo "bookstore-api/internal/domains/author/repository"
	authorService "bookstore-api/internal/domains/author/service"
	bookHandler "bookstore-api/internal/domains/book/handler"
	bookRepo "bookstore-api/internal/domains/book/repository"
	bookService "bookstore-api/internal/domains/book/service"
	userHandler "bookstore-api/internal/domains/user/handler"
	userRepo "bookstore-api/internal/domains/user/repository"
	userService "bookstore-api/internal/domains/user/service"
)

// Container is the root of the dependency graph: config, then
// infrastructure, then repositories, services and handlers, in that
// order.
type Container struct {
	Config *config.Config
	Log    logger.Logger
	DB     *database.PostgresDB
	Cache  cache.Cache
	Tokens *jwt.Issuer

	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
	UserHandler   *userHandler.UserHandler

	redis *infracache.RedisCache
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	c.Log = logger.New(cfg.App.Environment)
	c.Log.Info("configuration loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	db := database.NewPostgresDB(cfg.Database, c.Log)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redis := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redis.Ping(ctx); err != nil {
		// A dead cache is not fatal: repositories fall back to the
		// database when cache is nil.
		c.Log.Warn("redis unavailable, caching disabled", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		c.Cache = redis
		c.redis = redis
	}

	c.Tokens = jwt.NewIssuer(cfg.JWT.Secret, cfg.JWT.Issuer)

	authors := authorRepo.NewPostgresRepository(db.Pool, c.Cache)
	books := bookRepo.NewPostgresRepository(db.Pool, c.Cache)
	users := userRepo.NewPostgresRepository(db.Pool)

	c.AuthorHandler = authorHandler.NewAuthorHandler(authorService.NewAuthorService(authors), c.Log)
	c.BookHandler = bookHandler.NewBookHandler(bookService.NewBookService(books, authors), c.Log)
	c.UserHandler = userHandler.NewUserHandler(userService.NewUserService(users, c.Tokens), c.Log)

	return c, nil
}

func (c *Container) Cleanup() {
	if c.redis != nil {
		_ = c.redis.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}

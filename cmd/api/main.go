// Shop API server entry point.
//
//	@title			Shop API
//	@version		1.0
//	@description	E-commerce backend for categories, products, and users.
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shoplabs/shop-api/internal/api"
	"github.com/shoplabs/shop-api/internal/api/handler"
	"github.com/shoplabs/shop-api/internal/core/ports"
	"github.com/shoplabs/shop-api/internal/core/service"
	"github.com/shoplabs/shop-api/internal/infrastructure/db/memory"
	"github.com/shoplabs/shop-api/internal/infrastructure/db/postgres"
	"github.com/shoplabs/shop-api/internal/infrastructure/db/redis"
	"github.com/shoplabs/shop-api/internal/pkg/config"
	"github.com/shoplabs/shop-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx := context.Background()

	// --- Persistence gateway (pluggable backend) ---
	var (
		categoryRepo ports.CategoryRepository
		productRepo  ports.ProductRepository
		userRepo     ports.UserRepository
		readyChecks  []handler.DependencyCheck
	)

	switch cfg.StorageDriver {
	case "postgres":
		db, err := postgres.Connect(postgres.Config{
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			DBName:   cfg.Postgres.DBName,
			SSLMode:  cfg.Postgres.SSLMode,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		defer db.Close()

		if err := postgres.EnsureSchema(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure database schema")
		}

		categoryRepo = postgres.NewCategoryRepository(db)
		productRepo = postgres.NewProductRepository(db)
		userRepo = postgres.NewUserRepository(db)
		readyChecks = append(readyChecks, handler.DependencyCheck{
			Name: "postgres",
			Ping: db.PingContext,
		})

	case "memory":
		store := memory.NewStore()
		categoryRepo = memory.NewCategoryRepository(store)
		productRepo = memory.NewProductRepository(store)
		userRepo = memory.NewUserRepository(store)

	default:
		log.Fatal().Str("driver", cfg.StorageDriver).Msg("unknown storage driver")
	}

	// --- Category list cache (optional) ---
	var cache service.ListCache
	if cfg.CacheEnabled {
		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()

		cache = redis.NewCategoryCache(rdb, cfg.CacheTTL)
		readyChecks = append(readyChecks, handler.DependencyCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	categories := service.NewCategoryService(categoryRepo, productRepo, cache, log)
	products := service.NewProductService(productRepo, log)
	users := service.NewUserService(userRepo, tokens, log)

	e := api.NewRouter(api.RouterConfig{
		Logger:      log,
		JWTSecret:   cfg.JWTSecret,
		Categories:  categories,
		Products:    products,
		Users:       users,
		ReadyChecks: readyChecks,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("storage", cfg.StorageDriver).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server exited")
}

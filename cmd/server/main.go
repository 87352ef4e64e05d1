package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/utilize/marketplace-api/docs"
	"github.com/utilize/marketplace-api/internal/api"
	"github.com/utilize/marketplace-api/internal/api/handler"
	"github.com/utilize/marketplace-api/internal/core/service"
	mongostore "github.com/utilize/marketplace-api/internal/infrastructure/db/mongo"
	redisstore "github.com/utilize/marketplace-api/internal/infrastructure/db/redis"
	"github.com/utilize/marketplace-api/internal/pkg/config"
	"github.com/utilize/marketplace-api/pkg/logger"
)

// @title                       Utilize Marketplace API
// @version                     1.0
// @description                 Second-hand marketplace: categories, products, orders, wishlists and roles.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the token.
func main() {
	// 1. Configuration and logging
	_ = godotenv.Load(".env") // optional local overrides; real env wins
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "marketplace-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Stores
	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure mongo indexes")
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	// 3. Services
	users := mongostore.NewUserRepository(db)
	categories := mongostore.NewCategoryRepository(db)
	products := mongostore.NewProductRepository(db)
	purchases := mongostore.NewPurchaseRepository(db)
	wishlist := mongostore.NewWishlistRepository(db)

	tokens := service.NewTokenService(cfg.JWTSecret)
	userService := service.NewUserService(users, tokens, logger.For("users"))
	catalogService := service.NewCatalogService(categories, products, logger.For("catalog"))
	purchaseService := service.NewPurchaseService(
		purchases,
		redisstore.NewIdempotencyStore(rdb, cfg.Redis.IdempotencyTTL),
		logger.For("purchases"),
	)
	wishlistService := service.NewWishlistService(wishlist, logger.For("wishlist"))

	if err := userService.EnsureAdmin(ctx, cfg.BootstrapAdminEmail); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap admin")
	}

	// 4. HTTP
	e := api.NewRouter(api.Deps{
		Tokens:    tokens,
		Roles:     users,
		Users:     userService,
		Catalog:   catalogService,
		Purchases: purchaseService,
		Wishlist:  wishlistService,
		Checks: map[string]handler.Check{
			"mongo": func(ctx context.Context) error { return client.Ping(ctx, nil) },
			"redis": func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
		CORSOrigins: cfg.CORSOrigins,
		Metrics:     prometheus.DefaultRegisterer,
		Log:         logger.For("http"),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
		os.Exit(1)
	}
	log.Info().Msg("server exited")
}

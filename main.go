package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Gamestore/config"
	pgconfig "Gamestore/config/postgres"
	_ "Gamestore/config/swagger"
	"Gamestore/middleware"
	"Gamestore/routes"
	"Gamestore/services/auth"
	"Gamestore/services/redis"
	"Gamestore/services/store"
	"Gamestore/sync"
	"Gamestore/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Gamestore API
// @version 1.0
// @description Gin-Gonic server for the game storefront: catalog, cart, checkout and library
// @BasePath /
func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		utils.Log.Fatalf("Error loading configuration: %v", err)
	}
	utils.ConfigureLogger(cfg.LogLevel, cfg.Prod, os.Stdout)
	utils.Log.Info("Setting up server...")

	if cfg.Prod {
		gin.SetMode(gin.ReleaseMode)
	}

	gormDB, err := pgconfig.ConnectGORM(cfg.Postgres)
	if err != nil {
		utils.Log.Fatalf("Error connecting to PostgreSQL: %v", err)
	}
	utils.Log.Info("GORM Connected")

	// Only migrate in development or during deployment
	if cfg.Postgres.Migrate {
		utils.Log.Info("Migrating PostgreSQL database...")
		if err := pgconfig.MigrateDatabase(gormDB); err != nil {
			utils.Log.Warnf("Database migration failed: %v", err)
			// Continue execution even if migration fails
		}
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		utils.Log.Fatalf("Error reading GORM PostgreSQL instance: %v", err)
	}
	defer sqlDB.Close()

	gameStore := store.New(gormDB, store.Options{
		CacheTTL:        cfg.Store.CatalogCacheTTL,
		PaymentDelay:    cfg.Store.PaymentDelay,
		VerifyAmount:    cfg.Store.VerifyPaymentAmount,
		CheckoutLockTTL: cfg.Store.CheckoutLockTTL,
		Logger:          utils.Log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := config.ConnectRedis(cfg.Redis)
	if err != nil {
		utils.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	if redisClient != nil {
		defer redis.CloseRedis(redisClient)
		gameStore.WithCache(redisClient).WithLocker(redisClient)

		syncManager := sync.NewSyncManager(gameStore)
		if err := syncManager.SyncCatalog(ctx); err != nil {
			utils.Log.Warnf("Initial catalog sync failed: %v", err)
		}
		if err := syncManager.Start(cfg.Store.CatalogSyncSchedule); err != nil {
			utils.Log.Fatalf("Error scheduling catalog sync: %v", err)
		}
		defer syncManager.Stop()
	}

	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
	go authLimiter.RunJanitor(ctx, time.Minute)

	r := gin.New()
	r.Use(gin.Recovery())
	middleware.SetUpMiddleware(r, cfg)
	routes.SetupRoutes(r, routes.Dependencies{
		Catalog:     gameStore,
		Cart:        gameStore,
		Checkout:    gameStore,
		Library:     gameStore,
		Accounts:    auth.NewService(gameStore),
		Tokens:      auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		AuthLimiter: authLimiter,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		var err error
		if cfg.UseHTTPS {
			//SSL certification configuration for HTTPS
			err = server.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Log.Fatalf("Error starting server: %v", err)
		}
	}()
	utils.Log.Infof("Server started on %s", cfg.Addr())

	// Wait for shutdown signal
	<-ctx.Done()
	utils.Log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.Log.Errorf("Server shutdown error: %v", err)
	}
}

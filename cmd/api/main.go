package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devroster/engine/internal/api"
	"github.com/devroster/engine/internal/api/handlers"
	"github.com/devroster/engine/internal/repository"
	"github.com/devroster/engine/internal/repository/memory"
	"github.com/devroster/engine/internal/services"
	"github.com/devroster/engine/pkg/config"
	"github.com/devroster/engine/pkg/database"
	"github.com/devroster/engine/pkg/logger"
	"go.uber.org/zap"

	_ "github.com/devroster/engine/docs"
)

// @title           Developer Registry API
// @version         1.0
// @description     CRUD API for developer records with soft and hard deletion.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("Starting developer registry",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
		zap.String("storage", cfg.StorageDriver),
	)

	ctx := context.Background()
	repo, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	svc := services.NewDeveloperService(repo)

	router := api.NewRouter(api.Dependencies{
		HMACSecret:        []byte(cfg.JWTSecret),
		RateLimitRPS:      cfg.RateLimitRPS,
		RateLimitBurst:    cfg.RateLimitBurst,
		DevelopersHandler: handlers.NewDevelopersHandler(svc),
		HealthHandler:     handlers.NewHealthHandler(repo),
	})
	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET not set, developer mutations are unauthenticated")
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}

// openStore builds the configured repository and returns its release func.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.DeveloperRepository, func()) {
	if cfg.StorageDriver == config.StorageMemory {
		log.Warn("using in-memory storage, data is lost on restart")
		return memory.NewDeveloperRepository(), func() {}
	}

	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL, database.Options{
		AppEnv:          cfg.AppEnv,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		Logger:          log,
	})
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected successfully")

	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatal("migration failed", zap.Error(err))
		}
		log.Info("schema migrated")
	}

	return repository.NewDeveloperRepository(db), func() {
		if err := database.Close(db); err != nil {
			log.Warn("closing database", zap.Error(err))
		}
	}
}

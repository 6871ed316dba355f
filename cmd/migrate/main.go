package main

import (
	"context"
	"fmt"
	"os"

	"github.com/devroster/engine/pkg/config"
	"github.com/devroster/engine/pkg/database"
	"github.com/devroster/engine/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.StorageDriver != config.StoragePostgres {
		log.Fatal("migrations need STORAGE_DRIVER=postgres", zap.String("driver", cfg.StorageDriver))
	}

	db, err := database.OpenPostgres(context.Background(), cfg.DatabaseURL, database.Options{
		AppEnv: cfg.AppEnv,
		Logger: log,
	})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	fmt.Fprintln(os.Stdout, "migrations completed")
}

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"badge-promotion-engine/internal/handler/middleware"
	"badge-promotion-engine/internal/infra/migrate"
	"badge-promotion-engine/internal/pkg/config"
	"badge-promotion-engine/migrations"

	"github.com/joho/godotenv"
)

func main() {
	status := flag.Bool("status", false, "print migration status instead of applying")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env", "error", err)
	}

	dbCfg, logCfg, err := config.LoadMigrationConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(logCfg).GetSlogLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := migrate.NewRunner(migrations.FS, logger)
	url := dbCfg.BuildDSN()
	if *status {
		err = runner.Status(ctx, url)
	} else {
		err = runner.Apply(ctx, url)
	}
	if err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/football-fixtures-service/internal/config"
	"github.com/preston-bernstein/football-fixtures-service/internal/logging"
	"github.com/preston-bernstein/football-fixtures-service/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "football-fixtures-service"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	os.Exit(run())
}

func run() int {
	// A missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: appVersion,
	})

	if err := cfg.Validate(); err != nil {
		logging.Error(logger, "invalid configuration", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "failed to build server", err)
		return 1
	}
	srv.Run(ctx, stop)
	return 0
}

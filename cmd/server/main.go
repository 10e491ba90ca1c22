package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/config"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/logging"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/server"
)

const serviceName = "fantasy-logo-studio"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	if err := run(os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return err
	}
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: serviceName,
		Version: cfg.Version,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/games-api/internal/config"
	"github.com/preston-bernstein/games-api/internal/logging"
	"github.com/preston-bernstein/games-api/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "games-api"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	os.Exit(run(os.Stderr))
}

// run wires configuration, logging and the server, returning the process exit code.
func run(errOut io.Writer) int {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(errOut, "dotenv: %v\n", err)
		return 1
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(errOut, "config: %v\n", err)
		return 1
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
	return 0
}

// Command homebox-mcp runs an MCP server exposing a Homebox home
// inventory as AI-callable tools.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/oangelo/homebox-mcp/internal/config"
	"github.com/oangelo/homebox-mcp/pkg/client"
	"github.com/oangelo/homebox-mcp/pkg/mcpsrv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	clientOpts := []client.Option{
		client.WithBaseURL(cfg.APIBaseURL()),
		client.WithTimeout(cfg.HTTPClientTimeout),
	}
	if cfg.UseTokenAuth() {
		clientOpts = append(clientOpts, client.WithToken(cfg.HomeboxToken))
	} else {
		clientOpts = append(clientOpts, client.WithCredentials(cfg.HomeboxEmail, cfg.HomeboxPassword))
	}
	hb := client.New(clientOpts...)

	server, err := mcpsrv.NewServer(hb, mcpsrv.WithConfig(cfg))
	if err != nil {
		slog.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer server.Close()

	slog.Info("starting homebox-mcp",
		slog.String("homebox_url", cfg.HomeboxURL),
		slog.String("transport", cfg.Transport),
	)

	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("server stopped")
}

package mcpsrv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/oangelo/homebox-mcp/internal/authtoken"
	"github.com/oangelo/homebox-mcp/internal/config"
	"github.com/oangelo/homebox-mcp/internal/logging"
	"github.com/oangelo/homebox-mcp/internal/mcp"
	"github.com/oangelo/homebox-mcp/internal/mcp/tools"
	"github.com/oangelo/homebox-mcp/pkg/client"
)

// Server is the Homebox MCP server.
type Server struct {
	internal   *mcp.Server
	cfg        *config.Config
	deps       *tools.Deps
	gateToken  string
	startedAt  time.Time
	logCleanup func() error
}

// NewServer creates a new MCP server with the builtin Homebox tools.
//
// The client parameter is required and provides access to the Homebox
// API. Configuration defaults to the environment; use functional
// options to override it or to add custom tools.
func NewServer(c *client.Client, opts ...Option) (*Server, error) {
	if c == nil {
		return nil, fmt.Errorf("client is required")
	}

	sc := &serverConfig{}
	for _, opt := range opts {
		opt(sc)
	}
	if sc.config == nil {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		sc.config = cfg
	}
	cfg := sc.config

	logCfg := logging.Config{
		Level:      cfg.LogLevel,
		FilePath:   cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		Compress:   cfg.LogCompress,
	}
	if sc.logLevel != "" {
		logCfg.Level = sc.logLevel
	}
	if sc.logFile != "" {
		logCfg.FilePath = sc.logFile
	}
	logCleanup, err := logging.Setup(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	deps := &tools.Deps{Client: c, Config: cfg}

	var internalOpts []mcp.ServerOption
	if !sc.disableBuiltinTools {
		internalOpts = append(internalOpts, mcp.WithBuiltinTools())
	}
	for _, fn := range sc.registrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}

	internal, err := mcp.NewServer(deps, internalOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	s := &Server{
		internal:   internal,
		cfg:        cfg,
		deps:       deps,
		startedAt:  time.Now(),
		logCleanup: logCleanup,
	}

	if cfg.Transport == config.TransportHTTP && cfg.MCPAuthEnabled {
		s.gateToken, err = authtoken.Resolve(cfg.MCPAuthToken, cfg.MCPAuthTokenFile)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve MCP auth token: %w", err)
		}
	}

	return s, nil
}

// Run starts the server on the configured transport and blocks until
// the context is cancelled or the transport fails.
func (s *Server) Run(ctx context.Context) error {
	if s.cfg.Transport == config.TransportHTTP {
		return s.runHTTP(ctx)
	}
	return s.internal.Run(ctx)
}

// runHTTP serves the MCP endpoint over streamable HTTP together with
// the status dashboard, gated by the bearer middleware when enabled.
func (s *Server) runHTTP(ctx context.Context) error {
	dash := newDashboard(s.deps.Client, s.cfg, s.startedAt)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", dash.handleHome)
	mux.HandleFunc("GET /api/status", dash.handleStatus)
	mux.Handle("/mcp", s.internal.HTTPHandler())

	var handler http.Handler = mux
	if s.cfg.MCPAuthEnabled {
		handler = BearerAuth(s.gateToken, mux)
		slog.Info("MCP authentication enabled, bearer token required on /mcp")
	} else {
		slog.Warn("MCP authentication disabled, endpoint is open")
	}

	addr := net.JoinHostPort(s.cfg.ServerHost, strconv.Itoa(s.cfg.ServerPort))
	srv := &http.Server{Addr: addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("serving MCP over HTTP",
		slog.String("addr", addr),
		slog.String("endpoint", "/mcp"),
	)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

// Close cleans up server resources.
func (s *Server) Close() error {
	if s.logCleanup != nil {
		return s.logCleanup()
	}
	return nil
}

// Deps returns the dependencies for building custom tools.
func (s *Server) Deps() *tools.Deps {
	return s.deps
}

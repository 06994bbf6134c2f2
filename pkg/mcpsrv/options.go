package mcpsrv

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oangelo/homebox-mcp/internal/config"
	"github.com/oangelo/homebox-mcp/internal/mcp/tools"
)

// serverConfig holds configuration built from options.
type serverConfig struct {
	config *config.Config

	// Logging overrides
	logLevel string
	logFile  string

	disableBuiltinTools bool

	// Custom registration callbacks that preserve generic type info
	registrations []func(*sdkmcp.Server)
}

// Option configures the server.
type Option func(*serverConfig)

// WithConfig supplies an explicit configuration instead of loading it
// from the environment.
func WithConfig(cfg *config.Config) Option {
	return func(sc *serverConfig) {
		sc.config = cfg
	}
}

// WithLogLevel sets the log level (debug, info, warn, error).
func WithLogLevel(level string) Option {
	return func(sc *serverConfig) {
		sc.logLevel = level
	}
}

// WithLogFile sets the log file path. If empty, logs go to stderr only.
func WithLogFile(path string) Option {
	return func(sc *serverConfig) {
		sc.logFile = path
	}
}

// WithoutBuiltinTools disables the builtin Homebox tools. Use this to
// register only your own tools.
func WithoutBuiltinTools() Option {
	return func(sc *serverConfig) {
		sc.disableBuiltinTools = true
	}
}

// WithTool registers a custom tool with the server.
//
// The handler signature must match the MCP SDK pattern:
//
//	func(ctx context.Context, req *mcp.CallToolRequest, input In) (*mcp.CallToolResult, Out, error)
func WithTool[In, Out any](tool *sdkmcp.Tool, handler func(context.Context, *sdkmcp.CallToolRequest, In) (*sdkmcp.CallToolResult, Out, error)) Option {
	return func(sc *serverConfig) {
		sc.registrations = append(sc.registrations, func(srv *sdkmcp.Server) {
			tools.AddTool(srv, tool, handler)
		})
	}
}

// WithRegistration adds a callback that receives the underlying MCP
// server and can register tools, prompts, or resources directly.
func WithRegistration(fn func(*sdkmcp.Server)) Option {
	return func(sc *serverConfig) {
		sc.registrations = append(sc.registrations, fn)
	}
}

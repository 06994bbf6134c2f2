// Package config provides configuration loading from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Transport modes for the MCP server.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Auth methods for the Homebox API.
const (
	AuthMethodCredentials = "credentials"
	AuthMethodToken       = "token"
)

// Config holds all configuration for the MCP server.
type Config struct {
	HomeboxURL        string        // HOMEBOX_URL, default "http://localhost:7745"
	AuthMethod        string        // AUTH_METHOD, "credentials" or "token"
	HomeboxEmail      string        // HOMEBOX_EMAIL
	HomeboxPassword   string        // HOMEBOX_PASSWORD
	HomeboxToken      string        // HOMEBOX_TOKEN, static bearer token
	HTTPClientTimeout time.Duration // HTTP_CLIENT_TIMEOUT_MS, default 30000ms (30s)

	Transport  string // MCP_TRANSPORT, "stdio" (default) or "http"
	ServerHost string // SERVER_HOST, default "0.0.0.0"
	ServerPort int    // SERVER_PORT, default 8099

	// Bearer gate for the MCP endpoint itself (HTTP transport only)
	MCPAuthEnabled   bool   // MCP_AUTH_ENABLED, default false
	MCPAuthToken     string // MCP_AUTH_TOKEN, explicit gate token
	MCPAuthTokenFile string // MCP_AUTH_TOKEN_FILE, default "/data/mcp_auth_token"

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
// A SERVER_PORT value that does not parse as an integer is the only fatal
// condition; everything else defaults and is validated lazily when used.
func Load() (*Config, error) {
	port := 8099
	if v := os.Getenv("SERVER_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT %q: %w", v, err)
		}
		port = p
	}

	return &Config{
		HomeboxURL:        getEnvString("HOMEBOX_URL", "http://localhost:7745"),
		AuthMethod:        getEnvString("AUTH_METHOD", AuthMethodCredentials),
		HomeboxEmail:      getEnvString("HOMEBOX_EMAIL", ""),
		HomeboxPassword:   getEnvString("HOMEBOX_PASSWORD", ""),
		HomeboxToken:      getEnvString("HOMEBOX_TOKEN", ""),
		HTTPClientTimeout: getEnvDurationMs("HTTP_CLIENT_TIMEOUT_MS", 30000),

		Transport:  getEnvString("MCP_TRANSPORT", TransportStdio),
		ServerHost: getEnvString("SERVER_HOST", "0.0.0.0"),
		ServerPort: port,

		MCPAuthEnabled:   getEnvBool("MCP_AUTH_ENABLED", false),
		MCPAuthToken:     getEnvString("MCP_AUTH_TOKEN", ""),
		MCPAuthTokenFile: getEnvString("MCP_AUTH_TOKEN_FILE", "/data/mcp_auth_token"),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}, nil
}

// APIBaseURL returns the Homebox API base URL: the configured base with any
// trailing slashes stripped, suffixed with the versioned API path.
func (c *Config) APIBaseURL() string {
	return strings.TrimRight(c.HomeboxURL, "/") + "/api/v1"
}

// UseTokenAuth reports whether a pre-configured static token should be used
// instead of a credentials login.
func (c *Config) UseTokenAuth() bool {
	return c.AuthMethod == AuthMethodToken && c.HomeboxToken != ""
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationMs(key string, defaultMs int) time.Duration {
	ms := getEnvInt(key, defaultMs)
	return time.Duration(ms) * time.Millisecond
}

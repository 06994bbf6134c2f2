package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:7745", cfg.HomeboxURL)
	assert.Equal(t, AuthMethodCredentials, cfg.AuthMethod)
	assert.Equal(t, 30*time.Second, cfg.HTTPClientTimeout)
	assert.Equal(t, TransportStdio, cfg.Transport)
	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, 8099, cfg.ServerPort)
	assert.False(t, cfg.MCPAuthEnabled)
	assert.Equal(t, "/data/mcp_auth_token", cfg.MCPAuthTokenFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_invalidPortIsFatal(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_PORT")
}

func TestLoad_envOverrides(t *testing.T) {
	t.Setenv("HOMEBOX_URL", "http://inventory.local:7745")
	t.Setenv("AUTH_METHOD", "token")
	t.Setenv("HOMEBOX_TOKEN", "abc123")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("MCP_AUTH_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://inventory.local:7745", cfg.HomeboxURL)
	assert.Equal(t, 9000, cfg.ServerPort)
	assert.True(t, cfg.MCPAuthEnabled)
	assert.True(t, cfg.UseTokenAuth())
}

func TestAPIBaseURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"no trailing slash", "http://host:7745", "http://host:7745/api/v1"},
		{"trailing slash", "http://host:7745/", "http://host:7745/api/v1"},
		{"multiple trailing slashes", "http://host:7745//", "http://host:7745/api/v1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{HomeboxURL: tt.url}
			assert.Equal(t, tt.want, cfg.APIBaseURL())
		})
	}
}

func TestUseTokenAuth(t *testing.T) {
	// Token method without a token falls through to credentials login.
	cfg := &Config{AuthMethod: AuthMethodToken}
	assert.False(t, cfg.UseTokenAuth())

	cfg.HomeboxToken = "tok"
	assert.True(t, cfg.UseTokenAuth())

	cfg.AuthMethod = AuthMethodCredentials
	assert.False(t, cfg.UseTokenAuth())
}

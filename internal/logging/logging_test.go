package logging

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestSetup_createsLogDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "homebox-mcp.log")

	cleanup, err := Setup(Config{Level: "debug", FilePath: path, MaxSizeMB: 1})
	require.NoError(t, err)

	slog.Info("test entry")
	require.NoError(t, cleanup())
	assert.DirExists(t, filepath.Dir(path))
}

func TestSetup_stderrOnly(t *testing.T) {
	cleanup, err := Setup(Config{Level: "info"})
	require.NoError(t, err)
	assert.NoError(t, cleanup())
}

// Package authtoken resolves the bearer token protecting the MCP endpoint.
//
// Resolution order: an explicitly configured token wins; otherwise a
// previously generated token is loaded from disk; otherwise a fresh token
// is generated and persisted so it survives restarts. File errors are
// never fatal, the cost of a failed read or write is a new token on the
// next restart.
package authtoken

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// tokenBytes is the entropy of generated tokens. 32 bytes encodes to a
// 43-character URL-safe string.
const tokenBytes = 32

// Resolve returns the token to require on the MCP endpoint.
func Resolve(configured, path string) (string, error) {
	if configured != "" {
		return configured, nil
	}

	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if tok := strings.TrimSpace(string(data)); tok != "" {
				slog.Info("loaded MCP auth token from file", slog.String("path", path))
				return tok, nil
			}
		} else if !os.IsNotExist(err) {
			slog.Warn("could not read MCP auth token file, generating a new token",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		}
	}

	tok, err := Generate()
	if err != nil {
		return "", err
	}

	if path != "" {
		if err := persist(path, tok); err != nil {
			slog.Warn("could not persist MCP auth token, it will be regenerated on restart",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		}
	}

	// Printed once so the operator can copy it into the client configuration.
	slog.Info("generated MCP auth token", slog.String("token", tok))
	return tok, nil
}

// Generate returns a new cryptographically random URL-safe token.
func Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating auth token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func persist(path, token string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token+"\n"), 0o600)
}

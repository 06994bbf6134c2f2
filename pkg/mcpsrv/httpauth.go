package mcpsrv

import (
	"crypto/subtle"
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"
)

// exemptPaths are served without authentication so that the dashboard
// and status endpoint stay reachable for operators and health checks.
var exemptPaths = map[string]bool{
	"/":           true,
	"/api/status": true,
}

// BearerAuth wraps next with a bearer-token check. Requests must carry
// "Authorization: Bearer <token>". As a convenience for clients that
// only speak basic auth, "Authorization: Basic <id:secret>" is accepted
// with the secret compared against the token.
func BearerAuth(token string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if exemptPaths[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}

		presented, ok := extractToken(r.Header.Get("Authorization"))
		if !ok {
			slog.Warn("rejected unauthenticated request",
				slog.String("path", r.URL.Path),
				slog.String("remote", r.RemoteAddr),
			)
			unauthorized(w)
			return
		}
		if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			slog.Warn("rejected request with invalid token",
				slog.String("path", r.URL.Path),
				slog.String("remote", r.RemoteAddr),
			)
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// extractToken pulls the credential out of an Authorization header.
func extractToken(header string) (string, bool) {
	scheme, value, found := strings.Cut(header, " ")
	if !found || value == "" {
		return "", false
	}
	switch {
	case strings.EqualFold(scheme, "Bearer"):
		return value, true
	case strings.EqualFold(scheme, "Basic"):
		decoded, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			return "", false
		}
		_, secret, found := strings.Cut(string(decoded), ":")
		if !found {
			return "", false
		}
		return secret, true
	}
	return "", false
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="MCP"`)
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// DefaultBaseURL is the default base URL for the Homebox API.
const DefaultBaseURL = "http://localhost:7745/api/v1"

// DefaultTimeout is the fixed per-request ceiling applied to every call.
const DefaultTimeout = 30 * time.Second

// Client is a Homebox API client.
//
// The held token is the only shared mutable state. Concurrent calls that
// race on a 401-triggered re-login may each log in independently; every
// login just replaces the token with an equally valid one, so the store
// is guarded but the logins are not serialized.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	email       string
	password    string
	staticToken string

	mu    sync.Mutex
	token string
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL (including the /api/v1 prefix).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithCredentials configures a username/password login.
func WithCredentials(email, password string) Option {
	return func(c *Client) {
		c.email = email
		c.password = password
	}
}

// WithToken configures a static bearer token; no login call is made.
func WithToken(token string) Option {
	return func(c *Client) {
		c.staticToken = token
	}
}

// New creates a new Homebox API client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Client) setToken(tok string) {
	c.mu.Lock()
	c.token = tok
	c.mu.Unlock()
}

// ensureToken returns the held token, adopting the configured static
// token or performing a credentials login first if none is held.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	if tok := c.currentToken(); tok != "" {
		return tok, nil
	}
	if c.staticToken != "" {
		slog.Info("using configured token for Homebox authentication")
		c.setToken(c.staticToken)
		return c.staticToken, nil
	}
	return c.login(ctx)
}

// login authenticates with username and password and adopts the token
// from the response. An absent token field is not an error here; the
// next call simply goes out unauthenticated and the 401 surfaces.
func (c *Client) login(ctx context.Context) (string, error) {
	body, err := json.Marshal(map[string]string{
		"username": c.email,
		"password": c.password,
	})
	if err != nil {
		return "", fmt.Errorf("encoding login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users/login", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", c.parseError(resp, "/users/login")
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", fmt.Errorf("decoding login response: %w", err)
	}

	c.setToken(lr.Token)
	slog.Info("authenticated with Homebox using credentials")
	return lr.Token, nil
}

// do performs an authenticated request. On a 401 the held token is
// discarded, authentication re-runs once, and the request is retried
// exactly once; a second 401 surfaces like any other error status.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	start := time.Now()

	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parsing URL: %w", err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}

	tok, err := c.ensureToken(ctx)
	if err != nil {
		return err
	}

	resp, err := c.send(ctx, method, u.String(), payload, tok)
	if err != nil {
		slog.Debug("HTTP request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		slog.Info("homebox token expired, re-authenticating")
		c.setToken("")

		tok, err = c.ensureToken(ctx)
		if err != nil {
			return err
		}
		resp, err = c.send(ctx, method, u.String(), payload, tok)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := c.parseError(resp, path)
		slog.Debug("HTTP request returned error",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return apiErr
	}

	slog.Debug("HTTP request completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	if resp.StatusCode == http.StatusNoContent || result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, url string, payload []byte, token string) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	return resp, nil
}

// parseError extracts an APIError from an error response.
func (c *Client) parseError(resp *http.Response, endpoint string) error {
	body, _ := io.ReadAll(resp.Body)
	apiErr := &APIError{StatusCode: resp.StatusCode, Endpoint: endpoint}

	var errResp errorResponse
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
		apiErr.Message = errResp.Error
	} else {
		apiErr.Message = string(body)
	}
	return apiErr
}

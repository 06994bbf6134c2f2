package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBackend is a minimal fake Homebox API: a login endpoint issuing
// sequential tokens and a locations endpoint that rejects anything but
// the most recently issued token.
type testBackend struct {
	mux        *http.ServeMux
	logins     atomic.Int32
	listCalls  atomic.Int32
	validToken atomic.Value // string
}

func newTestBackend() *testBackend {
	b := &testBackend{mux: http.NewServeMux()}
	b.validToken.Store("token-1")

	b.mux.HandleFunc("POST /users/login", func(w http.ResponseWriter, r *http.Request) {
		n := b.logins.Add(1)
		var creds map[string]string
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds["username"] == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		tok := "token-1"
		if n > 1 {
			tok = "token-2"
			b.validToken.Store(tok)
		}
		json.NewEncoder(w).Encode(map[string]string{"token": tok})
	})

	b.mux.HandleFunc("GET /locations", func(w http.ResponseWriter, r *http.Request) {
		b.listCalls.Add(1)
		if r.Header.Get("Authorization") != "Bearer "+b.validToken.Load().(string) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode([]Location{{ID: "loc-1", Name: "Garage"}})
	})

	return b
}

func TestCredentialsLogin(t *testing.T) {
	backend := newTestBackend()
	srv := httptest.NewServer(backend.mux)
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithCredentials("user@example.com", "secret"))

	locations, err := c.ListLocations(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Garage", locations[0].Name)
	assert.Equal(t, int32(1), backend.logins.Load())

	// The token is reused; no second login.
	_, err = c.ListLocations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), backend.logins.Load())
}

func TestStaticToken_noLoginCall(t *testing.T) {
	backend := newTestBackend()
	srv := httptest.NewServer(backend.mux)
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithToken("token-1"))

	_, err := c.ListLocations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(0), backend.logins.Load())
}

func TestRetryOn401_reauthenticatesOnce(t *testing.T) {
	backend := newTestBackend()
	srv := httptest.NewServer(backend.mux)
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithCredentials("user@example.com", "secret"))

	_, err := c.ListLocations(context.Background())
	require.NoError(t, err)

	// Invalidate the held token server-side; the next call gets a 401,
	// re-authenticates, retries once, and succeeds invisibly.
	backend.validToken.Store("revoked")
	locations, err := c.ListLocations(context.Background())
	require.NoError(t, err)
	assert.Len(t, locations, 1)
	assert.Equal(t, int32(2), backend.logins.Load())
}

func TestSecond401Surfaces(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/login" {
			json.NewEncoder(w).Encode(map[string]string{"token": "tok"})
			return
		}
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithCredentials("user@example.com", "secret"))

	_, err := c.ListLocations(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	// Exactly one retry: the original call plus the re-authenticated one.
	assert.Equal(t, int32(2), calls.Load())
}

func TestCreateLocation_minimalBody(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/locations" && r.Method == http.MethodPost {
			body, _ = io.ReadAll(r.Body)
			json.NewEncoder(w).Encode(Location{ID: "loc-1", Name: "Garage"})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithToken("tok"))

	loc, err := c.CreateLocation(context.Background(), LocationCreate{Name: "Garage"})
	require.NoError(t, err)
	assert.Equal(t, "loc-1", loc.ID)

	// Optional fields are omitted, not sent as null.
	assert.JSONEq(t, `{"name":"Garage"}`, string(body))
}

func TestDelete_handles204(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithToken("tok"))
	assert.NoError(t, c.DeleteItem(context.Background(), "item-1"))
}

func TestAPIError_carriesStatusAndEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "location not found"})
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithToken("tok"))

	_, err := c.GetLocation(context.Background(), "missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "/locations/missing", apiErr.Endpoint)
	assert.Equal(t, "location not found", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "404")
	assert.Contains(t, apiErr.Error(), "/locations/missing")
}

func TestLogin_missingTokenFieldLeavesSessionUnauthenticated(t *testing.T) {
	var sawAuth atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/login" {
			json.NewEncoder(w).Encode(map[string]string{}) // no token field
			return
		}
		if r.Header.Get("Authorization") != "" {
			sawAuth.Store(true)
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithCredentials("user@example.com", "secret"))

	_, err := c.ListLocations(context.Background())
	require.Error(t, err)
	assert.False(t, sawAuth.Load())
}

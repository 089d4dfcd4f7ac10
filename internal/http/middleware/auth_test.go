package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"github.com/lutia-ai/lutia/internal/config"
	"github.com/lutia-ai/lutia/internal/http/middleware"
	"github.com/lutia-ai/lutia/internal/observability"
)

const secret = "test-secret"

func protected(t *testing.T, cfg *config.AuthConfig) (http.Handler, *int64) {
	t.Helper()
	var seen int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := observability.GetUserID(r.Context())
		require.True(t, ok)
		seen = id
		w.WriteHeader(http.StatusNoContent)
	})
	return middleware.Auth(cfg)(next), &seen
}

func TestAuth(t *testing.T) {
	cfg := &config.AuthConfig{JWTSecret: secret, Issuer: "lutia"}

	valid, err := middleware.IssueToken(secret, "lutia", 42, time.Hour)
	require.NoError(t, err)
	expired, err := middleware.IssueToken(secret, "lutia", 42, -time.Minute)
	require.NoError(t, err)
	wrongKey, err := middleware.IssueToken("other", "lutia", 42, time.Hour)
	require.NoError(t, err)
	wrongIssuer, err := middleware.IssueToken(secret, "someone-else", 42, time.Hour)
	require.NoError(t, err)
	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, middleware.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "42", Issuer: "lutia"},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "valid token", header: "Bearer " + valid, status: http.StatusNoContent},
		{name: "lowercase scheme", header: "bearer " + valid, status: http.StatusNoContent},
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "basic scheme", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired, status: http.StatusUnauthorized},
		{name: "wrong key", header: "Bearer " + wrongKey, status: http.StatusUnauthorized},
		{name: "wrong issuer", header: "Bearer " + wrongIssuer, status: http.StatusUnauthorized},
		{name: "unsigned", header: "Bearer " + noneAlg, status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, seen := protected(t, cfg)
			req := httptest.NewRequest(http.MethodGet, "/v1/models", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			require.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusNoContent {
				require.Equal(t, int64(42), *seen)
			} else {
				require.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestAuth_NoSecretRejects(t *testing.T) {
	handler, _ := protected(t, &config.AuthConfig{})
	token, err := middleware.IssueToken("", "", 1, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/models", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestParseToken_ExpiredError(t *testing.T) {
	token, err := middleware.IssueToken(secret, "", 3, -time.Second)
	require.NoError(t, err)

	_, err = middleware.ParseToken(token, secret, "")
	require.ErrorIs(t, err, middleware.ErrTokenExpired)
}

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) middleware.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := middleware.Chain(mark("first"), mark("second"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestTrace_SetsHeaders(t *testing.T) {
	var requestID string
	handler := middleware.Trace()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		requestID = observability.GetRequestID(r.Context())
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.NotEmpty(t, requestID)
	require.Equal(t, requestID, w.Header().Get("X-Request-Id"))
	require.NotEmpty(t, w.Header().Get("X-Trace-Id"))
}

func TestTrace_RequestIDFromClient(t *testing.T) {
	tests := []struct {
		name    string
		inbound string
		reused  bool
	}{
		{name: "uuid is reused", inbound: "3f2b8c1e-8d4a-4b6e-9a57-2d0c4f1e6b90", reused: true},
		{name: "garbage is replaced", inbound: "not-an-id", reused: false},
		{name: "absent", inbound: "", reused: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requestID string
			handler := middleware.Trace()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				requestID = observability.GetRequestID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.inbound != "" {
				req.Header.Set("X-Request-Id", tt.inbound)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if tt.reused {
				require.Equal(t, tt.inbound, requestID)
			} else {
				require.NotEqual(t, tt.inbound, requestID)
				require.NotEmpty(t, requestID)
			}
		})
	}
}

func TestTrace_PreservesFlusher(t *testing.T) {
	handler := middleware.Trace()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("line\n"))
		flusher.Flush()
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

	require.Equal(t, http.StatusAccepted, w.Code)
	require.True(t, w.Flushed)
	require.Equal(t, "line\n", w.Body.String())
}

func TestCORS_ExposesTraceHeaders(t *testing.T) {
	handler := middleware.CORS(&config.CORSConfig{AllowedOrigins: []string{"https://app.example"}})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://app.example")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Request-Id")
}

package http_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lutia-ai/lutia/internal/config"
	"github.com/lutia-ai/lutia/internal/domain"
	lutiahttp "github.com/lutia-ai/lutia/internal/http"
	"github.com/lutia-ai/lutia/internal/http/middleware"
	"github.com/lutia-ai/lutia/internal/mocks"
	"github.com/lutia-ai/lutia/internal/provider/echo"
	"github.com/lutia-ai/lutia/internal/provider/openai"
	"github.com/lutia-ai/lutia/internal/provider/registry"
)

const jwtSecret = "handler-test-secret"

type fixture struct {
	router    http.Handler
	users     *mocks.MockUserStore
	ledger    *mocks.MockLedger
	finalizer *mocks.MockFinalizer
	token     string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	adapter, err := echo.NewAdapter(echo.Config{Enabled: true})
	require.NoError(t, err)
	reg, err := registry.NewRegistryWith(ctx, []domain.Adapter{adapter})
	require.NoError(t, err)

	catalog := domain.NewModelCatalog()
	require.NoError(t, catalog.RegisterAll(ctx, echo.Models()))
	require.NoError(t, catalog.RegisterAll(ctx, openai.Models()))

	f := &fixture{
		users:     mocks.NewMockUserStore(t),
		ledger:    mocks.NewMockLedger(t),
		finalizer: mocks.NewMockFinalizer(t),
	}

	serverCfg := &config.ServerConfig{MaxBodyBytes: 1 << 20}
	validator := domain.NewRequestValidator(catalog, f.users, f.ledger)
	chat := domain.NewChatService(reg, f.finalizer, domain.DefaultPrices())
	handler := lutiahttp.NewHandler(serverCfg, validator, chat, catalog, reg)
	server := lutiahttp.NewServer(serverCfg, &config.AuthConfig{JWTSecret: jwtSecret}, handler,
		middleware.BuildMiddlewareChain(&config.CORSConfig{AllowedOrigins: []string{"*"}}))

	f.router = server.Router()
	f.token, err = middleware.IssueToken(jwtSecret, "", 7, time.Hour)
	require.NoError(t, err)
	return f
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) expectUser(user *domain.User, balance float64) {
	f.users.EXPECT().GetUser(mock.Anything, user.ID).Return(user, nil)
	if user.EmailVerified && user.PaymentTier != domain.PaymentTierSubscription {
		f.ledger.EXPECT().Balance(mock.Anything, user.ID).Return(balance, nil)
	}
}

func echoBody() map[string]any {
	return map[string]any{
		"provider": "echo",
		"model":    "echo4",
		"messages": []map[string]any{
			{"role": "user", "content": "Hello world", "message_id": 3},
		},
		"reasoning":       true,
		"conversation_id": "new",
	}
}

func decodeLines(t *testing.T, body string) []map[string]any {
	t.Helper()
	var events []map[string]any
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		var event map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &event))
		events = append(events, event)
	}
	require.NoError(t, scanner.Err())
	return events
}

func TestHandleChatStream_Success(t *testing.T) {
	f := newFixture(t)
	f.expectUser(&domain.User{ID: 7, EmailVerified: true, PaymentTier: domain.PaymentTierPayAsYouGo}, 5)

	var finalized *domain.FinalizeInput
	f.finalizer.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, in *domain.FinalizeInput) { finalized = in }).
		Return(&domain.FinalizationResult{MessageID: 11, BillingID: 4}, nil)

	w := f.do(t, http.MethodPost, "/v1/chat/stream", echoBody())

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/x-ndjson", w.Header().Get("Content-Type"))
	require.NotEmpty(t, w.Header().Get("X-Request-Id"))

	events := decodeLines(t, w.Body.String())
	require.GreaterOrEqual(t, len(events), 4)

	first := events[0]
	require.Equal(t, "request_info", first["type"])
	require.True(t, strings.HasPrefix(first["request_id"].(string), "echo-"))
	require.NotEmpty(t, first["conversation_id"])
	require.NotEqual(t, "new", first["conversation_id"])

	require.Equal(t, "reasoning", events[1]["type"])

	var text strings.Builder
	for _, e := range events {
		if e["type"] == "text" {
			text.WriteString(e["content"].(string))
		}
	}
	require.Equal(t, "[user]: Hello world", text.String())

	require.Equal(t, "usage", events[len(events)-2]["type"])
	last := events[len(events)-1]
	require.Equal(t, "message_id", last["type"])
	require.EqualValues(t, 11, last["message_id"])

	require.NotNil(t, finalized)
	require.Equal(t, "[user]: Hello world", finalized.Text)
	require.Equal(t, "Hello world", finalized.Prompt)
	require.True(t, finalized.NewConversation)
	require.Equal(t, []int64{3}, finalized.ReferencedMessageIDs)
	require.False(t, finalized.Aborted)
	require.NoError(t, finalized.Err)
}

func TestHandleChatStream_PartsContent(t *testing.T) {
	f := newFixture(t)
	f.expectUser(&domain.User{ID: 7, EmailVerified: true, PaymentTier: domain.PaymentTierSubscription}, 0)
	f.users.EXPECT().CheckConversationOwner(mock.Anything, int64(7), "c-1").Return(nil)
	f.finalizer.EXPECT().Create(mock.Anything, mock.Anything).
		Return(&domain.FinalizationResult{MessageID: 12}, nil)

	body := `{"provider":"echo","model":"echo4","conversation_id":"c-1",
		"messages":[{"role":"user","content":[{"type":"text","text":"part one"},{"type":"text","text":"part two"}]}]}`
	w := f.do(t, http.MethodPost, "/v1/chat/stream", body)

	require.Equal(t, http.StatusOK, w.Code)
	events := decodeLines(t, w.Body.String())
	require.Equal(t, "c-1", events[0]["conversation_id"])
	require.Contains(t, w.Body.String(), "part")
}

func TestHandleChatStream_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		user   *domain.User
		body   any
		status int
	}{
		{
			name:   "malformed json",
			body:   "{",
			status: http.StatusBadRequest,
		},
		{
			name:   "content of wrong type",
			body:   `{"provider":"echo","model":"echo4","messages":[{"role":"user","content":42}]}`,
			status: http.StatusBadRequest,
		},
		{
			name: "unknown model",
			body: map[string]any{
				"provider": "echo", "model": "echo5",
				"messages": []map[string]any{{"role": "user", "content": "hi"}},
			},
			status: http.StatusNotFound,
		},
		{
			name: "provider mismatch",
			body: map[string]any{
				"provider": "claude", "model": "echo4",
				"messages": []map[string]any{{"role": "user", "content": "hi"}},
			},
			status: http.StatusBadRequest,
		},
		{
			name:   "email not verified",
			user:   &domain.User{ID: 7},
			body:   echoBody(),
			status: http.StatusForbidden,
		},
		{
			name:   "insufficient balance",
			user:   &domain.User{ID: 7, EmailVerified: true, PaymentTier: domain.PaymentTierPayAsYouGo},
			body:   echoBody(),
			status: http.StatusPaymentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.user != nil {
				f.expectUser(tt.user, 0)
			}

			w := f.do(t, http.MethodPost, "/v1/chat/stream", tt.body)

			require.Equal(t, tt.status, w.Code)
			require.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			require.NotEmpty(t, body["error"])
		})
	}
}

func TestHandleChatStream_ProviderNotConfigured(t *testing.T) {
	f := newFixture(t)
	f.expectUser(&domain.User{ID: 7, EmailVerified: true}, 1)

	body := map[string]any{
		"provider": "openai", "model": "gpt-4o",
		"messages": []map[string]any{{"role": "user", "content": "hi"}},
	}
	w := f.do(t, http.MethodPost, "/v1/chat/stream", body)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "provider not implemented")
}

func TestHandleChatStream_Unauthenticated(t *testing.T) {
	f := newFixture(t)
	f.token = ""

	w := f.do(t, http.MethodPost, "/v1/chat/stream", echoBody())

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleModels(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/v1/models", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Models []domain.ModelDescriptor `json:"models"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body.Models, 1)
	require.Equal(t, "echo4", body.Models[0].Name)
}

func TestHandleHealth(t *testing.T) {
	f := newFixture(t)
	f.token = ""

	w := f.do(t, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestNDJSONWriter(t *testing.T) {
	w := httptest.NewRecorder()
	writer, err := lutiahttp.NewNDJSONWriter(w)
	require.NoError(t, err)

	require.NoError(t, writer.WriteEvent(domain.TextEvent("a")))
	require.NoError(t, writer.WriteEvent(domain.MessageIDEvent(5)))
	require.NoError(t, writer.Close())
	require.NoError(t, writer.Close())
	require.ErrorIs(t, writer.WriteEvent(domain.TextEvent("late")), lutiahttp.ErrWriterClosed)

	require.Equal(t, "{\"type\":\"text\",\"content\":\"a\"}\n{\"type\":\"message_id\",\"message_id\":5}\n", w.Body.String())
	require.True(t, w.Flushed)
}

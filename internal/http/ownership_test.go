package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
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
	"github.com/lutia-ai/lutia/internal/provider/registry"
	"github.com/lutia-ai/lutia/internal/store/sqlite"
)

// storeFixture serves the router on a real SQLite store so finalization
// runs against persisted records. Only the ledger is mocked.
type storeFixture struct {
	router http.Handler
	store  *sqlite.Store
	ledger *mocks.MockLedger
}

func newStoreFixture(t *testing.T) *storeFixture {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.NewStore(filepath.Join(t.TempDir(), "lutia.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })

	adapter, err := echo.NewAdapter(echo.Config{Enabled: true})
	require.NoError(t, err)
	reg, err := registry.NewRegistryWith(ctx, []domain.Adapter{adapter})
	require.NoError(t, err)

	catalog := domain.NewModelCatalog()
	require.NoError(t, catalog.RegisterAll(ctx, echo.Models()))

	ledger := mocks.NewMockLedger(t)
	finalizer := domain.NewResponseFinalizer(store, ledger, nil, nil)

	serverCfg := &config.ServerConfig{MaxBodyBytes: 1 << 20}
	handler := lutiahttp.NewHandler(serverCfg,
		domain.NewRequestValidator(catalog, store, ledger),
		domain.NewChatService(reg, finalizer, domain.DefaultPrices()),
		catalog, reg)
	server := lutiahttp.NewServer(serverCfg, &config.AuthConfig{JWTSecret: jwtSecret}, handler,
		middleware.BuildMiddlewareChain(nil))

	return &storeFixture{router: server.Router(), store: store, ledger: ledger}
}

func (f *storeFixture) user(t *testing.T, email string) int64 {
	t.Helper()
	id, err := f.store.CreateUser(context.Background(), &domain.User{Email: email, EmailVerified: true})
	require.NoError(t, err)
	f.ledger.EXPECT().Balance(mock.Anything, id).Return(10.0, nil).Maybe()
	return id
}

func (f *storeFixture) message(t *testing.T, userID int64, conversationID string) int64 {
	t.Helper()
	created, err := f.store.CreateMessageAndBillingEntry(context.Background(),
		&domain.MessageRecord{
			UserID: userID, ConversationID: conversationID, NewConversation: true,
			Provider: "echo", Model: "echo4", Prompt: "hi", Response: "[user]: hi",
		},
		&domain.BillingEntry{UserID: userID, Provider: "echo", Model: "echo4", Status: domain.BillingCompleted})
	require.NoError(t, err)
	return created.MessageID
}

func (f *storeFixture) post(t *testing.T, userID int64, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	token, err := middleware.IssueToken(jwtSecret, "", userID, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/chat/stream", strings.NewReader(string(raw)))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func chatBody(conversationID string, regenerate *int64) map[string]any {
	body := map[string]any{
		"provider":        "echo",
		"model":           "echo4",
		"conversation_id": conversationID,
		"messages":        []map[string]any{{"role": "user", "content": "hi again"}},
	}
	if regenerate != nil {
		body["regenerate_message_id"] = *regenerate
	}
	return body
}

func TestHandleChatStream_ForeignTargetsRejectedBeforeStreaming(t *testing.T) {
	f := newStoreFixture(t)
	owner := f.user(t, "owner@example.com")
	intruder := f.user(t, "intruder@example.com")
	messageID := f.message(t, owner, "owner-conv")
	missing := messageID + 1000

	tests := []struct {
		name           string
		conversationID string
		regenerate     *int64
	}{
		{name: "regenerate a message of another user", conversationID: "new", regenerate: &messageID},
		{name: "regenerate a missing message", conversationID: "new", regenerate: &missing},
		{name: "continue a conversation of another user", conversationID: "owner-conv"},
		{name: "continue a missing conversation", conversationID: "nowhere"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.post(t, intruder, chatBody(tt.conversationID, tt.regenerate))

			require.Equal(t, http.StatusNotFound, w.Code)
			require.Equal(t, "application/json", w.Header().Get("Content-Type"))
			require.NotContains(t, w.Body.String(), "request_info")
		})
	}

	stored, err := f.store.GetMessage(context.Background(), owner, messageID)
	require.NoError(t, err)
	require.Equal(t, 0, stored.RegenerationCount)
	require.Equal(t, "[user]: hi", stored.Response)
}

func TestHandleChatStream_RegenerationIsBilled(t *testing.T) {
	f := newStoreFixture(t)
	owner := f.user(t, "owner@example.com")
	messageID := f.message(t, owner, "owner-conv")

	f.ledger.EXPECT().
		Deduct(mock.Anything, owner, mock.AnythingOfType("float64"), fmt.Sprintf("msg-%d-regen-1", messageID)).
		Return(9.5, nil).
		Once()

	w := f.post(t, owner, chatBody("new", &messageID))

	require.Equal(t, http.StatusOK, w.Code)
	events := decodeLines(t, w.Body.String())
	require.Equal(t, "request_info", events[0]["type"])
	require.Equal(t, "owner-conv", events[0]["conversation_id"])
	last := events[len(events)-1]
	require.Equal(t, "message_id", last["type"])
	require.EqualValues(t, messageID, last["message_id"])

	stored, err := f.store.GetMessage(context.Background(), owner, messageID)
	require.NoError(t, err)
	require.Equal(t, 1, stored.RegenerationCount)
	require.Equal(t, "[user]: hi again", stored.Response)
}

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/lutia-ai/lutia/internal/config"
	"github.com/lutia-ai/lutia/internal/domain"
	"github.com/lutia-ai/lutia/internal/observability"
)

// Handler handles HTTP requests.
type Handler struct {
	validator    *domain.RequestValidator
	chat         *domain.ChatService
	catalog      *domain.ModelCatalog
	registry     domain.ProviderRegistry
	maxBodyBytes int64
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(
	cfg *config.ServerConfig,
	validator *domain.RequestValidator,
	chat *domain.ChatService,
	catalog *domain.ModelCatalog,
	registry domain.ProviderRegistry,
) *Handler {
	return &Handler{
		validator:    validator,
		chat:         chat,
		catalog:      catalog,
		registry:     registry,
		maxBodyBytes: int64(cfg.MaxBodyBytes),
	}
}

// HandleChatStream validates a chat request, opens the vendor stream and
// forwards it as NDJSON. Failures before the stream opens are plain JSON
// errors; later failures arrive as error events.
func (h *Handler) HandleChatStream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := observability.GetUserID(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	var body chatRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	input, err := body.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	// Inject provider and model into context for downstream logging.
	ctx = observability.WithProvider(ctx, input.Provider)
	ctx = observability.WithModel(ctx, input.Model)
	logger := observability.FromContext(ctx)

	req, err := h.validator.Validate(ctx, userID, input)
	if err != nil {
		logger.Info("chat request rejected", observability.Error(err))
		writeError(w, statusFor(err), err.Error())
		return
	}

	ctx = observability.WithConversationID(ctx, req.ConversationID())
	logger = observability.FromContext(ctx)
	logger.Info("chat request received",
		observability.Int("messages", len(req.Messages)),
		observability.Int("images", len(req.Images)),
		observability.Int("files", len(req.Files)),
		observability.Bool("reasoning", req.ReasoningEnabled),
		observability.Bool("regenerate", req.RegenerateMessageID != nil))

	run, err := h.chat.Open(ctx, req)
	if err != nil {
		logger.Error("failed to open stream", observability.Error(err))
		writeError(w, statusFor(err), err.Error())
		return
	}

	writer, err := NewNDJSONWriter(w)
	if err != nil {
		logger.Error("streaming not supported", observability.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	result, err := run.Run(ctx, writer)
	if err != nil {
		// The client already has every event that could be sent.
		logger.Error("chat stream not saved", observability.Error(err))
		return
	}

	logger.Info("chat stream completed",
		observability.Int64("message_id", result.MessageID),
		observability.Bool("client_disconnected", run.ClientDisconnected()))
}

// HandleModels lists the models of every registered provider.
func (h *Handler) HandleModels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	names, err := h.registry.List(ctx)
	if err != nil {
		observability.FromContext(ctx).Error("failed to list providers", observability.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list providers")
		return
	}

	available := make(map[string]bool, len(names))
	for _, name := range names {
		available[name] = true
	}

	models := make([]domain.ModelDescriptor, 0)
	for _, m := range h.catalog.List(ctx) {
		if available[m.Provider] {
			models = append(models, m)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"models": models})
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

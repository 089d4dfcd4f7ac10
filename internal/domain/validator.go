package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/lutia-ai/lutia/internal/observability"
)

// RequestValidator turns raw chat input into a ChatRequest the chat service
// can trust.
type RequestValidator struct {
	catalog *ModelCatalog
	users   UserStore
	ledger  Ledger
}

// NewRequestValidator creates a new request validator (DI constructor).
func NewRequestValidator(catalog *ModelCatalog, users UserStore, ledger Ledger) *RequestValidator {
	return &RequestValidator{
		catalog: catalog,
		users:   users,
		ledger:  ledger,
	}
}

// Validate checks the input on behalf of userID and builds the request bundle.
func (v *RequestValidator) Validate(ctx context.Context, userID int64, in *ChatInput) (*ChatRequest, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: request cannot be nil", ErrInvalidRequest)
	}
	if in.Provider == "" || in.Model == "" {
		return nil, fmt.Errorf("%w: provider and model are required", ErrInvalidRequest)
	}

	model, err := v.catalog.Get(ctx, in.Model)
	if err != nil {
		return nil, err
	}
	if model.Provider != in.Provider {
		return nil, fmt.Errorf("%w: model %s is not served by %s", ErrInvalidRequest, in.Model, in.Provider)
	}
	if err := checkAttachments(model, in.Images, in.Files); err != nil {
		return nil, err
	}
	if in.RegenerateMessageID != nil && *in.RegenerateMessageID <= 0 {
		return nil, fmt.Errorf("%w: invalid regenerate message id", ErrInvalidRequest)
	}

	messages, referenced, err := sanitizeMessages(in.Messages)
	if err != nil {
		return nil, err
	}

	user, err := v.users.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	if !user.EmailVerified {
		return nil, ErrEmailNotVerified
	}
	if user.PaymentTier != PaymentTierSubscription {
		balance, balanceErr := v.ledger.Balance(ctx, user.ID)
		if balanceErr != nil {
			return nil, fmt.Errorf("failed to read balance: %w", balanceErr)
		}
		if balance <= 0 {
			return nil, ErrInsufficientBalance
		}
	}

	conversationID, err := v.resolveConversation(ctx, user.ID, in)
	if err != nil {
		return nil, err
	}

	req := &ChatRequest{
		User:                   user,
		Provider:               in.Provider,
		Model:                  model,
		Messages:               messages,
		Images:                 in.Images,
		Files:                  in.Files,
		ReasoningEnabled:       in.Reasoning,
		OriginalConversationID: conversationID,
		RegenerateMessageID:    in.RegenerateMessageID,
		ReferencedMessageIDs:   referenced,
	}
	if req.IsNewConversation() {
		req.MessageConversationID = observability.GenerateConversationID()
	} else {
		req.MessageConversationID = conversationID
	}

	return req, nil
}

// resolveConversation checks that an existing conversation and a
// regeneration target belong to the user. It must run before the vendor
// stream opens. A regenerated message stays in the conversation it was
// created in, so its conversation id is returned when the client sent none.
func (v *RequestValidator) resolveConversation(ctx context.Context, userID int64, in *ChatInput) (string, error) {
	existing := in.ConversationID != "" && in.ConversationID != NewConversationID
	if existing {
		if err := v.users.CheckConversationOwner(ctx, userID, in.ConversationID); err != nil {
			return "", err
		}
	}
	if in.RegenerateMessageID == nil {
		return in.ConversationID, nil
	}

	owner, err := v.users.MessageConversation(ctx, userID, *in.RegenerateMessageID)
	if err != nil {
		return "", err
	}
	if existing && owner != in.ConversationID {
		return "", fmt.Errorf("%w: message %d is not part of conversation %s",
			ErrInvalidRequest, *in.RegenerateMessageID, in.ConversationID)
	}
	return owner, nil
}

func checkAttachments(model ModelDescriptor, images []Image, files []File) error {
	if len(images) > 0 && !model.SupportsImages {
		return fmt.Errorf("%w: model %s does not accept images", ErrInvalidRequest, model.Name)
	}
	if len(files) > 0 && !model.SupportsFiles {
		return fmt.Errorf("%w: model %s does not accept files", ErrInvalidRequest, model.Name)
	}

	for i, img := range images {
		if !strings.HasPrefix(img.MediaType, "image/") || img.Data == "" {
			return fmt.Errorf("%w: image %d is malformed", ErrInvalidRequest, i)
		}
	}
	for i, f := range files {
		if f.Name == "" || (f.Content == "" && f.Data == "") {
			return fmt.Errorf("%w: file %d is malformed", ErrInvalidRequest, i)
		}
	}
	return nil
}

// sanitizeMessages drops empty messages and collects the ids of persisted
// messages the history refers to. The conversation must end with a user turn.
func sanitizeMessages(in []Message) ([]Message, []int64, error) {
	messages := make([]Message, 0, len(in))
	var referenced []int64

	for i, msg := range in {
		switch msg.Role {
		case RoleUser, RoleAssistant, RoleSystem, RoleDeveloper:
		default:
			return nil, nil, fmt.Errorf("%w: message %d has invalid role %q", ErrInvalidRequest, i, msg.Role)
		}
		if msg.IsEmpty() {
			continue
		}
		if msg.MessageID != nil {
			referenced = append(referenced, *msg.MessageID)
		}
		messages = append(messages, msg)
	}

	if len(messages) == 0 {
		return nil, nil, fmt.Errorf("%w: no messages", ErrInvalidRequest)
	}
	if messages[len(messages)-1].Role != RoleUser {
		return nil, nil, fmt.Errorf("%w: last message must be from the user", ErrInvalidRequest)
	}

	return messages, referenced, nil
}

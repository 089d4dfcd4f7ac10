package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lutia-ai/lutia/internal/domain"
)

// StoredMessage is a persisted assistant message.
type StoredMessage struct {
	ID                   int64
	ConversationID       string
	UserID               int64
	BillingID            int64
	Provider             string
	Model                string
	Prompt               string
	Response             string
	Reasoning            string
	ReferencedMessageIDs []int64
	ImageCount           int
	FileCount            int
	RegenerationCount    int
}

// BillingRecord is a persisted billing entry.
type BillingRecord struct {
	ID           int64
	UserID       int64
	Provider     string
	Model        string
	Usage        domain.Usage
	Cost         domain.Cost
	Status       domain.BillingStatus
	ErrorMessage string
}

// GetMessage loads a message owned by userID.
func (s *Store) GetMessage(ctx context.Context, userID, messageID int64) (*StoredMessage, error) {
	var (
		m          StoredMessage
		referenced string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, conversation_id, user_id, billing_id, provider, model, prompt, response, reasoning,
			referenced_message_ids, image_count, file_count, regeneration_count
		 FROM messages WHERE id = ? AND user_id = ?`,
		messageID, userID).Scan(&m.ID, &m.ConversationID, &m.UserID, &m.BillingID, &m.Provider, &m.Model,
		&m.Prompt, &m.Response, &m.Reasoning, &referenced, &m.ImageCount, &m.FileCount, &m.RegenerationCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", domain.ErrMessageNotFound, messageID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load message %d: %w", messageID, err)
	}

	if err := json.Unmarshal([]byte(referenced), &m.ReferencedMessageIDs); err != nil {
		return nil, fmt.Errorf("failed to decode referenced ids: %w", err)
	}
	return &m, nil
}

// MessageConversation returns the conversation of a message owned by userID.
func (s *Store) MessageConversation(ctx context.Context, userID, messageID int64) (string, error) {
	var conversationID string
	err := s.db.QueryRowContext(ctx,
		`SELECT conversation_id FROM messages WHERE id = ? AND user_id = ?`,
		messageID, userID).Scan(&conversationID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %d", domain.ErrMessageNotFound, messageID)
	}
	if err != nil {
		return "", fmt.Errorf("failed to load message %d: %w", messageID, err)
	}
	return conversationID, nil
}

// CheckConversationOwner fails with domain.ErrConversationNotFound when the
// conversation is missing or owned by someone else.
func (s *Store) CheckConversationOwner(ctx context.Context, userID int64, conversationID string) error {
	var found int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM conversations WHERE id = ? AND user_id = ?`,
		conversationID, userID).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrConversationNotFound, conversationID)
	}
	if err != nil {
		return fmt.Errorf("failed to load conversation %s: %w", conversationID, err)
	}
	return nil
}

// GetBillingRecord loads a billing record by id.
func (s *Store) GetBillingRecord(ctx context.Context, billingID int64) (*BillingRecord, error) {
	var (
		r      BillingRecord
		status string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, provider, model, prompt_tokens, completion_tokens, thinking_tokens, total_tokens,
			input_cost, output_cost, total_cost, status, error_message
		 FROM billing_records WHERE id = ?`,
		billingID).Scan(&r.ID, &r.UserID, &r.Provider, &r.Model,
		&r.Usage.PromptTokens, &r.Usage.CompletionTokens, &r.Usage.ThinkingTokens, &r.Usage.TotalTokens,
		&r.Cost.Input, &r.Cost.Output, &r.Cost.Total, &status, &r.ErrorMessage)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("billing record %d not found", billingID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load billing record %d: %w", billingID, err)
	}
	r.Status = domain.BillingStatus(status)
	return &r, nil
}

// ConversationTitle returns the stored title of a conversation.
func (s *Store) ConversationTitle(ctx context.Context, conversationID string) (string, error) {
	var title string
	err := s.db.QueryRowContext(ctx, `SELECT title FROM conversations WHERE id = ?`, conversationID).Scan(&title)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("conversation %s not found", conversationID)
	}
	return title, err
}

// Package sqlite persists users, conversations, assistant messages and
// billing records in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lutia-ai/lutia/internal/domain"
)

const (
	timeLayout     = time.RFC3339Nano
	maxTitleLength = 80
)

// Store implements domain.MessageStore and domain.UserStore.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore opens or creates the database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("database path is required")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) init() error {
	stmts := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA foreign_keys=ON;",
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL UNIQUE,
			email_verified INTEGER NOT NULL DEFAULT 0,
			payment_tier TEXT NOT NULL DEFAULT 'PAYG',
			stripe_subscription_item TEXT NOT NULL DEFAULT '',
			created_at_utc TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS conversations (
			id TEXT PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			title TEXT NOT NULL DEFAULT '',
			created_at_utc TEXT NOT NULL,
			updated_at_utc TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS billing_records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users(id),
			provider TEXT NOT NULL,
			model TEXT NOT NULL,
			prompt_tokens INTEGER NOT NULL DEFAULT 0,
			completion_tokens INTEGER NOT NULL DEFAULT 0,
			thinking_tokens INTEGER NOT NULL DEFAULT 0,
			total_tokens INTEGER NOT NULL DEFAULT 0,
			input_cost REAL NOT NULL DEFAULT 0,
			output_cost REAL NOT NULL DEFAULT 0,
			total_cost REAL NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			error_message TEXT NOT NULL DEFAULT '',
			created_at_utc TEXT NOT NULL,
			updated_at_utc TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			conversation_id TEXT NOT NULL REFERENCES conversations(id),
			user_id INTEGER NOT NULL REFERENCES users(id),
			billing_id INTEGER NOT NULL REFERENCES billing_records(id),
			provider TEXT NOT NULL,
			model TEXT NOT NULL,
			prompt TEXT NOT NULL DEFAULT '',
			response TEXT NOT NULL DEFAULT '',
			reasoning TEXT NOT NULL DEFAULT '',
			referenced_message_ids TEXT NOT NULL DEFAULT '[]',
			image_count INTEGER NOT NULL DEFAULT 0,
			file_count INTEGER NOT NULL DEFAULT 0,
			regeneration_count INTEGER NOT NULL DEFAULT 0,
			created_at_utc TEXT NOT NULL,
			updated_at_utc TEXT NOT NULL
		);`,
		"CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages(conversation_id, id);",
		"CREATE INDEX IF NOT EXISTS idx_billing_records_user ON billing_records(user_id, created_at_utc);",
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// CreateUser inserts a user and returns its id.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) (int64, error) {
	if user == nil || user.Email == "" {
		return 0, errors.New("user email is required")
	}
	tier := user.PaymentTier
	if tier == "" {
		tier = domain.PaymentTierPayAsYouGo
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (email, email_verified, payment_tier, stripe_subscription_item, created_at_utc)
		 VALUES (?, ?, ?, ?, ?)`,
		user.Email, user.EmailVerified, string(tier), user.StripeSubscriptionItem, s.timestamp())
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	return res.LastInsertId()
}

// GetUser loads a user by id.
func (s *Store) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	var (
		user domain.User
		tier string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, email, email_verified, payment_tier, stripe_subscription_item FROM users WHERE id = ?`,
		userID).Scan(&user.ID, &user.Email, &user.EmailVerified, &tier, &user.StripeSubscriptionItem)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", domain.ErrUserNotFound, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	user.PaymentTier = domain.PaymentTier(tier)
	return &user, nil
}

// CreateMessageAndBillingEntry stores a new assistant message and its billing
// record. A new conversation row is created when the message starts one.
func (s *Store) CreateMessageAndBillingEntry(
	ctx context.Context,
	msg *domain.MessageRecord,
	billing *domain.BillingEntry,
) (*domain.FinalizationResult, error) {
	if msg == nil || billing == nil {
		return nil, errors.New("message and billing entry are required")
	}

	referenced, err := json.Marshal(nonNil(msg.ReferencedMessageIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to encode referenced ids: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := s.timestamp()

	if err := upsertConversation(ctx, tx, msg, now); err != nil {
		return nil, err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO billing_records (user_id, provider, model, prompt_tokens, completion_tokens,
			thinking_tokens, total_tokens, input_cost, output_cost, total_cost, status, error_message,
			created_at_utc, updated_at_utc)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		billing.UserID, billing.Provider, billing.Model,
		billing.Usage.PromptTokens, billing.Usage.CompletionTokens,
		billing.Usage.ThinkingTokens, billing.Usage.TotalTokens,
		billing.Cost.Input, billing.Cost.Output, billing.Cost.Total,
		string(billing.Status), billing.ErrorMessage, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert billing record: %w", err)
	}
	billingID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	res, err = tx.ExecContext(ctx,
		`INSERT INTO messages (conversation_id, user_id, billing_id, provider, model, prompt, response,
			reasoning, referenced_message_ids, image_count, file_count, created_at_utc, updated_at_utc)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		msg.ConversationID, msg.UserID, billingID, msg.Provider, msg.Model, msg.Prompt, msg.Response,
		msg.Reasoning, string(referenced), msg.ImageCount, msg.FileCount, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert message: %w", err)
	}
	messageID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &domain.FinalizationResult{MessageID: messageID, BillingID: billingID}, nil
}

func upsertConversation(ctx context.Context, tx *sql.Tx, msg *domain.MessageRecord, now string) error {
	if msg.ConversationID == "" {
		return errors.New("conversation id is required")
	}

	title := ""
	if msg.NewConversation {
		title = conversationTitle(msg.Prompt)
	}

	var owner int64
	err := tx.QueryRowContext(ctx, `SELECT user_id FROM conversations WHERE id = ?`, msg.ConversationID).Scan(&owner)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = tx.ExecContext(ctx,
			`INSERT INTO conversations (id, user_id, title, created_at_utc, updated_at_utc) VALUES (?, ?, ?, ?, ?)`,
			msg.ConversationID, msg.UserID, title, now, now)
		if err != nil {
			return fmt.Errorf("failed to insert conversation: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("failed to load conversation: %w", err)
	case owner != msg.UserID:
		return fmt.Errorf("%w: %s belongs to another user", domain.ErrConversationNotFound, msg.ConversationID)
	}

	_, err = tx.ExecContext(ctx, `UPDATE conversations SET updated_at_utc = ? WHERE id = ?`, now, msg.ConversationID)
	return err
}

// UpdateMessageAndBillingEntry rewrites a regenerated message. Token counts
// and costs are added to the existing billing record and the regeneration
// count goes up by one.
func (s *Store) UpdateMessageAndBillingEntry(
	ctx context.Context,
	messageID int64,
	msg *domain.MessageRecord,
	billing *domain.BillingEntry,
) (*domain.FinalizationResult, error) {
	if msg == nil || billing == nil {
		return nil, errors.New("message and billing entry are required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var (
		billingID    int64
		regenerated  int
		conversation string
	)
	err = tx.QueryRowContext(ctx,
		`SELECT billing_id, regeneration_count, conversation_id FROM messages WHERE id = ? AND user_id = ?`,
		messageID, msg.UserID).Scan(&billingID, &regenerated, &conversation)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", domain.ErrMessageNotFound, messageID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load message %d: %w", messageID, err)
	}

	now := s.timestamp()
	regenerated++

	_, err = tx.ExecContext(ctx,
		`UPDATE messages SET provider = ?, model = ?, response = ?, reasoning = ?,
			regeneration_count = ?, updated_at_utc = ?
		 WHERE id = ?`,
		msg.Provider, msg.Model, msg.Response, msg.Reasoning, regenerated, now, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to update message: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE billing_records SET provider = ?, model = ?,
			prompt_tokens = prompt_tokens + ?, completion_tokens = completion_tokens + ?,
			thinking_tokens = thinking_tokens + ?, total_tokens = total_tokens + ?,
			input_cost = input_cost + ?, output_cost = output_cost + ?, total_cost = total_cost + ?,
			status = ?, error_message = ?, updated_at_utc = ?
		 WHERE id = ?`,
		billing.Provider, billing.Model,
		billing.Usage.PromptTokens, billing.Usage.CompletionTokens,
		billing.Usage.ThinkingTokens, billing.Usage.TotalTokens,
		billing.Cost.Input, billing.Cost.Output, billing.Cost.Total,
		string(billing.Status), billing.ErrorMessage, now, billingID)
	if err != nil {
		return nil, fmt.Errorf("failed to update billing record: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE conversations SET updated_at_utc = ? WHERE id = ?`, now, conversation); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &domain.FinalizationResult{
		MessageID:         messageID,
		BillingID:         billingID,
		RegenerationCount: regenerated,
	}, nil
}

func (s *Store) timestamp() string {
	return s.now().Format(timeLayout)
}

func conversationTitle(prompt string) string {
	runes := []rune(prompt)
	if len(runes) > maxTitleLength {
		return string(runes[:maxTitleLength])
	}
	return prompt
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}

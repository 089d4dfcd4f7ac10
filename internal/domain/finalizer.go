package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/lutia-ai/lutia/internal/observability"
)

// BillingStatus is the outcome recorded on a billing entry.
type BillingStatus string

// Billing statuses.
const (
	BillingCompleted BillingStatus = "COMPLETED"
	BillingFailed    BillingStatus = "FAILED"
	BillingAborted   BillingStatus = "ABORTED"
)

// StatusFor picks the billing status of a stream. An abort wins over an
// error, which wins over success.
func StatusFor(aborted bool, err error) BillingStatus {
	switch {
	case aborted:
		return BillingAborted
	case err != nil:
		return BillingFailed
	default:
		return BillingCompleted
	}
}

// FinalizeInput is everything a finished stream accumulated.
type FinalizeInput struct {
	User                 *User
	Model                ModelDescriptor
	ConversationID       string
	NewConversation      bool
	Prompt               string
	Text                 string
	Reasoning            string
	Usage                Usage
	Prices               Prices
	Aborted              bool
	Err                  error
	ReferencedMessageIDs []int64
	ImageCount           int
	FileCount            int
}

// FinalizationResult identifies the persisted message and billing record.
type FinalizationResult struct {
	MessageID         int64
	BillingID         int64
	RegenerationCount int
}

// MessageRecord is the assistant message handed to the store.
type MessageRecord struct {
	UserID               int64
	ConversationID       string
	NewConversation      bool
	Provider             string
	Model                string
	Prompt               string
	Response             string
	Reasoning            string
	ReferencedMessageIDs []int64
	ImageCount           int
	FileCount            int
}

// BillingEntry is the billing record handed to the store.
type BillingEntry struct {
	UserID       int64
	Provider     string
	Model        string
	Usage        Usage
	Cost         Cost
	Status       BillingStatus
	ErrorMessage string
}

// ResponseFinalizer persists the assistant message, then charges the user.
type ResponseFinalizer struct {
	store     MessageStore
	ledger    Ledger
	reporter  UsageReporter
	publisher EventPublisher
}

// NewResponseFinalizer creates a finalizer. reporter and publisher may be nil.
func NewResponseFinalizer(
	store MessageStore,
	ledger Ledger,
	reporter UsageReporter,
	publisher EventPublisher,
) *ResponseFinalizer {
	return &ResponseFinalizer{
		store:     store,
		ledger:    ledger,
		reporter:  reporter,
		publisher: publisher,
	}
}

// Create persists a new assistant message with its billing record.
func (f *ResponseFinalizer) Create(ctx context.Context, in *FinalizeInput) (*FinalizationResult, error) {
	if err := validateFinalizeInput(in); err != nil {
		return nil, err
	}

	usage, cost := settle(in)
	result, err := f.store.CreateMessageAndBillingEntry(ctx, messageRecord(in), billingEntry(in, usage, cost))
	if err != nil {
		return nil, fmt.Errorf("failed to persist message: %w", err)
	}

	key := fmt.Sprintf("msg-%d-0", result.MessageID)
	if err := f.charge(ctx, in.User, usage, cost, key); err != nil {
		return result, err
	}

	f.publish(ctx, "billing.finalized", in, usage, cost, result)
	return result, nil
}

// Update rewrites a regenerated message. The store accumulates the billing
// counters of the existing record.
func (f *ResponseFinalizer) Update(
	ctx context.Context,
	messageID int64,
	in *FinalizeInput,
) (*FinalizationResult, error) {
	if err := validateFinalizeInput(in); err != nil {
		return nil, err
	}
	if messageID <= 0 {
		return nil, fmt.Errorf("%w: invalid message id %d", ErrInvalidRequest, messageID)
	}

	usage, cost := settle(in)
	result, err := f.store.UpdateMessageAndBillingEntry(ctx, messageID, messageRecord(in), billingEntry(in, usage, cost))
	if err != nil {
		return nil, fmt.Errorf("failed to update message %d: %w", messageID, err)
	}

	key := fmt.Sprintf("msg-%d-regen-%d", result.MessageID, result.RegenerationCount)
	if err := f.charge(ctx, in.User, usage, cost, key); err != nil {
		return result, err
	}

	f.publish(ctx, "billing.regenerated", in, usage, cost, result)
	return result, nil
}

// charge bills pay-as-you-go users through the ledger and meters
// subscription users through the usage reporter.
func (f *ResponseFinalizer) charge(ctx context.Context, user *User, usage Usage, cost Cost, key string) error {
	logger := observability.FromContext(ctx)

	switch user.PaymentTier {
	case PaymentTierSubscription:
		if f.reporter == nil {
			return nil
		}
		if err := f.reporter.ReportUsage(ctx, user, usage, key); err != nil {
			return fmt.Errorf("failed to report usage: %w", err)
		}
	default:
		if !IsBillable(cost.Total) {
			logger.Debug("nothing to deduct", observability.Float64("cost", cost.Total))
			return nil
		}
		balance, err := f.ledger.Deduct(ctx, user.ID, cost.Total, key)
		if err != nil {
			return fmt.Errorf("failed to deduct balance: %w", err)
		}
		logger.Debug("balance deducted",
			observability.Float64("cost", cost.Total),
			observability.Float64("balance", balance))
	}

	return nil
}

func (f *ResponseFinalizer) publish(
	ctx context.Context,
	eventType string,
	in *FinalizeInput,
	usage Usage,
	cost Cost,
	result *FinalizationResult,
) {
	if f.publisher == nil {
		return
	}
	f.publisher.Publish(ctx, eventType, map[string]interface{}{
		"user_id":            in.User.ID,
		"provider":           in.Model.Provider,
		"model":              in.Model.Name,
		"message_id":         result.MessageID,
		"billing_id":         result.BillingID,
		"regeneration_count": result.RegenerationCount,
		"prompt_tokens":      usage.PromptTokens,
		"completion_tokens":  usage.CompletionTokens,
		"cost":               cost.Total,
		"status":             string(StatusFor(in.Aborted, in.Err)),
	})
}

func validateFinalizeInput(in *FinalizeInput) error {
	if in == nil {
		return errors.New("finalize input cannot be nil")
	}
	if in.User == nil {
		return errors.New("finalize input has no user")
	}
	return nil
}

// settle fills in a missing completion count from the accumulated text and
// prices the usage.
func settle(in *FinalizeInput) (Usage, Cost) {
	usage := in.Usage
	if usage.CompletionTokens <= 0 {
		usage.CompletionTokens = EstimateTokens(in.Text) + EstimateTokens(in.Reasoning)
	}
	if usage.PromptTokens < 0 {
		usage.PromptTokens = 0
	}
	if sum := usage.PromptTokens + usage.CompletionTokens; usage.TotalTokens < sum {
		usage.TotalTokens = sum
	}

	return usage, CalculateCost(usage, in.Prices.Sanitize())
}

func messageRecord(in *FinalizeInput) *MessageRecord {
	return &MessageRecord{
		UserID:               in.User.ID,
		ConversationID:       in.ConversationID,
		NewConversation:      in.NewConversation,
		Provider:             in.Model.Provider,
		Model:                in.Model.Name,
		Prompt:               in.Prompt,
		Response:             in.Text,
		Reasoning:            in.Reasoning,
		ReferencedMessageIDs: in.ReferencedMessageIDs,
		ImageCount:           in.ImageCount,
		FileCount:            in.FileCount,
	}
}

func billingEntry(in *FinalizeInput, usage Usage, cost Cost) *BillingEntry {
	entry := &BillingEntry{
		UserID:   in.User.ID,
		Provider: in.Model.Provider,
		Model:    in.Model.Name,
		Usage:    usage,
		Cost:     cost,
		Status:   StatusFor(in.Aborted, in.Err),
	}
	if in.Err != nil {
		entry.ErrorMessage = in.Err.Error()
	}
	return entry
}

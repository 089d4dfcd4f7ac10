package domain

import "context"

// Prompt is a vendor-shaped message payload produced by Adapter.ProcessMessages.
type Prompt interface {
	// Provider returns the id of the adapter that built the prompt.
	Provider() string
}

// Chunk is one vendor stream chunk, already decoded into the adapter's own types.
type Chunk interface {
	// Provider returns the id of the adapter that decoded the chunk.
	Provider() string
}

// ChunkStream iterates the chunks of an open vendor stream.
type ChunkStream interface {
	// Next advances to the next chunk. It returns false on exhaustion or failure.
	Next() bool

	// Current returns the chunk Next advanced to.
	Current() Chunk

	// Err returns the failure that stopped the stream, if any.
	Err() error

	// Close releases the underlying connection.
	Close() error
}

// StreamRequest describes a completion stream to open.
type StreamRequest struct {
	Model            ModelDescriptor
	Prompt           Prompt
	ReasoningEnabled bool
}

// StreamCallbacks receive the normalized events of one chunk. The chat
// service always sets every field.
type StreamCallbacks struct {
	OnFirstChunk func(requestID string)
	OnUsage      func(usage Usage, prices *Prices)
	OnContent    func(text string)
	OnReasoning  func(text string)

	// AccumulatedText returns the content forwarded so far.
	AccumulatedText func() string
}

// Adapter translates between the normalized model and one vendor's streaming API.
type Adapter interface {
	// Name returns the provider identifier.
	Name() string

	// ProcessMessages converts messages and attachments to the vendor wire format.
	ProcessMessages(messages []Message, images []Image, files []File) (Prompt, error)

	// CreateCompletionStream opens the vendor streaming call.
	CreateCompletionStream(ctx context.Context, req *StreamRequest) (ChunkStream, error)

	// HandleStreamChunk maps one vendor chunk onto zero or more callbacks.
	HandleStreamChunk(chunk Chunk, cb StreamCallbacks)
}

// ImplicitStarter is implemented by adapters whose vendor never signals the
// start of a stream. The chat service treats their first chunk as the start.
type ImplicitStarter interface {
	// StartID returns the vendor request id carried by a chunk, or "".
	StartID(chunk Chunk) string
}

// ProviderRegistry manages available adapters.
type ProviderRegistry interface {
	// Register adds an adapter to the registry.
	Register(ctx context.Context, adapter Adapter) error

	// Get retrieves an adapter by provider id.
	Get(ctx context.Context, providerName string) (Adapter, error)

	// List returns all registered provider ids.
	List(ctx context.Context) ([]string, error)
}

// Finalizer persists and bills a finished stream.
type Finalizer interface {
	// Create persists a new assistant message and its billing record.
	Create(ctx context.Context, in *FinalizeInput) (*FinalizationResult, error)

	// Update rewrites a regenerated message and accumulates its billing record.
	Update(ctx context.Context, messageID int64, in *FinalizeInput) (*FinalizationResult, error)
}

// MessageStore persists messages together with their billing records.
type MessageStore interface {
	// CreateMessageAndBillingEntry stores both records in one transaction.
	CreateMessageAndBillingEntry(ctx context.Context, msg *MessageRecord, billing *BillingEntry) (*FinalizationResult, error)

	// UpdateMessageAndBillingEntry rewrites the message and increments the billing counters.
	UpdateMessageAndBillingEntry(
		ctx context.Context,
		messageID int64,
		msg *MessageRecord,
		billing *BillingEntry,
	) (*FinalizationResult, error)
}

// UserStore resolves user records and what they own.
type UserStore interface {
	GetUser(ctx context.Context, userID int64) (*User, error)

	// MessageConversation returns the conversation of a message owned by
	// userID, or ErrMessageNotFound.
	MessageConversation(ctx context.Context, userID, messageID int64) (string, error)

	// CheckConversationOwner returns ErrConversationNotFound unless the
	// conversation exists and belongs to userID.
	CheckConversationOwner(ctx context.Context, userID int64, conversationID string) error
}

// Ledger holds pay-as-you-go balances.
type Ledger interface {
	// Balance returns the user's remaining balance in USD.
	Balance(ctx context.Context, userID int64) (float64, error)

	// Deduct subtracts amount once per idempotency key and returns the new balance.
	Deduct(ctx context.Context, userID int64, amount float64, idempotencyKey string) (float64, error)
}

// UsageReporter meters usage of subscription users.
type UsageReporter interface {
	ReportUsage(ctx context.Context, user *User, usage Usage, idempotencyKey string) error
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}

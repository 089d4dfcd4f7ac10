// Package claude provides an adapter for the Anthropic Messages API.
package claude

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/lutia-ai/lutia/internal/domain"
	"github.com/lutia-ai/lutia/internal/observability"
	"github.com/lutia-ai/lutia/internal/provider"
)

// ProviderName is the provider identifier of Anthropic.
const ProviderName = "claude"

const (
	// ThinkingBudget is added on top of the model's output limit when
	// extended thinking is enabled.
	ThinkingBudget = 16000

	defaultMaxTokens = 8192
)

// Adapter implements domain.Adapter for Claude.
type Adapter struct {
	client anthropic.Client
	prices map[string]domain.Prices
}

// NewAdapter creates a new Claude adapter. The SDK client never retries; a
// dropped vendor connection is terminal for the request.
func NewAdapter(config Config) (*Adapter, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: Anthropic API key is required", provider.ErrNotConfigured)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithMaxRetries(0),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}
	if config.Version != "" {
		opts = append(opts, option.WithHeader("anthropic-version", config.Version))
	}
	if config.Timeout > 0 {
		opts = append(opts, option.WithHTTPClient(provider.NewHTTPClient(time.Duration(config.Timeout)*time.Second)))
	}

	return &Adapter{
		client: anthropic.NewClient(opts...),
		prices: provider.PriceTable(Models()),
	}, nil
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// ProcessMessages converts messages to the Messages API shape. Images are
// sent as base64 image blocks and PDFs as document blocks.
func (a *Adapter) ProcessMessages(
	messages []domain.Message,
	images []domain.Image,
	files []domain.File,
) (domain.Prompt, error) {
	prompt, err := buildPrompt(messages, images, files)
	if err != nil {
		return nil, err
	}
	return prompt, nil
}

// CreateCompletionStream opens a streaming Messages call. The SDK sends the
// request right away, so open failures surface here.
func (a *Adapter) CreateCompletionStream(ctx context.Context, req *domain.StreamRequest) (domain.ChunkStream, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	prompt, ok := req.Prompt.(*Prompt)
	if !ok {
		return nil, fmt.Errorf("prompt was not built for %s", ProviderName)
	}

	params := newMessageParams(req, prompt)

	observability.FromContext(ctx).Debug("calling Anthropic streaming API",
		observability.String("model", string(params.Model)),
		observability.Int("max_tokens", int(params.MaxTokens)),
		observability.Bool("thinking", params.Thinking.OfEnabled != nil))

	sdk := a.client.Messages.NewStreaming(ctx, params)
	if err := sdk.Err(); err != nil {
		_ = sdk.Close()
		return nil, fmt.Errorf("%s stream request failed: %w", ProviderName, err)
	}

	return &Stream{sdk: sdk, prices: provider.PricesFor(a.prices, req.Model.Name)}, nil
}

func newMessageParams(req *domain.StreamRequest, prompt *Prompt) anthropic.MessageNewParams {
	maxTokens := int64(req.Model.MaxOutputTokens)
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model.Name),
		MaxTokens: maxTokens,
		Messages:  prompt.Messages,
	}
	if prompt.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: prompt.System}}
	}
	if req.ReasoningEnabled && req.Model.SupportsReasoning() {
		params.MaxTokens += ThinkingBudget
		params.Thinking = anthropic.ThinkingConfigParamOfEnabled(ThinkingBudget)
	}
	return params
}

// HandleStreamChunk maps message_start to the first chunk, text and thinking
// deltas to content and reasoning, and both usage reports to OnUsage.
func (a *Adapter) HandleStreamChunk(chunk domain.Chunk, cb domain.StreamCallbacks) {
	c, ok := chunk.(*Chunk)
	if !ok {
		return
	}

	switch event := c.Event.AsAny().(type) {
	case anthropic.MessageStartEvent:
		cb.OnFirstChunk(event.Message.ID)
		u := event.Message.Usage
		if usage := usageOf(u.InputTokens, u.CacheCreationInputTokens, u.CacheReadInputTokens, u.OutputTokens); usage != (domain.Usage{}) {
			cb.OnUsage(usage, c.Prices)
		}
	case anthropic.ContentBlockDeltaEvent:
		switch delta := event.Delta.AsAny().(type) {
		case anthropic.TextDelta:
			cb.OnContent(delta.Text)
		case anthropic.ThinkingDelta:
			cb.OnReasoning(delta.Thinking)
		}
	case anthropic.MessageDeltaEvent:
		u := event.Usage
		cb.OnUsage(usageOf(u.InputTokens, u.CacheCreationInputTokens, u.CacheReadInputTokens, u.OutputTokens), c.Prices)
	}
}

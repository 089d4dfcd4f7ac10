// Package xai provides an adapter for the xAI (Grok) chat API.
package xai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"

	"github.com/lutia-ai/lutia/internal/domain"
	"github.com/lutia-ai/lutia/internal/observability"
	"github.com/lutia-ai/lutia/internal/provider"
	"github.com/lutia-ai/lutia/internal/provider/openaicompat"
)

// ProviderName is the provider identifier of xAI.
const ProviderName = "xai"

// Adapter implements domain.Adapter for xAI.
type Adapter struct {
	client openai.Client
	prices map[string]domain.Prices
}

// NewAdapter creates a new xAI adapter.
func NewAdapter(config Config) (*Adapter, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: xAI API key is required", provider.ErrNotConfigured)
	}

	return &Adapter{
		client: openaicompat.NewClient(openaicompat.ClientConfig{
			APIKey:  config.APIKey,
			BaseURL: config.BaseURL,
			Timeout: config.Timeout,
		}),
		prices: provider.PriceTable(Models()),
	}, nil
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// ProcessMessages converts messages. Developer messages are sent as system
// messages and PDFs are rejected.
func (a *Adapter) ProcessMessages(
	messages []domain.Message,
	images []domain.Image,
	files []domain.File,
) (domain.Prompt, error) {
	return openaicompat.BuildMessages(ProviderName, messages, images, files, openaicompat.BuildOptions{})
}

// CreateCompletionStream opens a streaming chat completion. Grok mini models
// take a reasoning effort of low or high.
func (a *Adapter) CreateCompletionStream(ctx context.Context, req *domain.StreamRequest) (domain.ChunkStream, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	prompt, err := openaicompat.PromptFrom(req.Prompt, ProviderName)
	if err != nil {
		return nil, err
	}

	params := openaicompat.NewParams(req.Model.Name, prompt)
	if req.ReasoningEnabled && req.Model.SupportsReasoning() {
		params.ReasoningEffort = openai.ReasoningEffortHigh
	}

	observability.FromContext(ctx).Debug("calling xAI streaming API",
		observability.String("model", req.Model.Name),
		observability.Bool("reasoning", params.ReasoningEffort != ""))

	return openaicompat.Open(ctx, a.client, params, ProviderName, provider.PricesFor(a.prices, req.Model.Name))
}

// HandleStreamChunk forwards reasoning_content, content and usage. xAI never
// signals the start of a stream; see StartID.
func (a *Adapter) HandleStreamChunk(chunk domain.Chunk, cb domain.StreamCallbacks) {
	c, ok := chunk.(*openaicompat.Chunk)
	if !ok {
		return
	}
	openaicompat.Dispatch(c, cb)
}

// StartID returns the completion id, which serves as the request id.
func (a *Adapter) StartID(chunk domain.Chunk) string {
	if c, ok := chunk.(*openaicompat.Chunk); ok {
		return c.ID
	}
	return ""
}

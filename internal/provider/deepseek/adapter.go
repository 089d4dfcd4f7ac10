// Package deepseek provides an adapter for the DeepSeek chat API.
package deepseek

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

// ProviderName is the provider identifier of DeepSeek.
const ProviderName = "deepseek"

// Adapter implements domain.Adapter for DeepSeek.
type Adapter struct {
	client openai.Client
	prices map[string]domain.Prices
}

// NewAdapter creates a new DeepSeek adapter.
func NewAdapter(config Config) (*Adapter, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: DeepSeek API key is required", provider.ErrNotConfigured)
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

// ProcessMessages converts messages. DeepSeek has no developer role and no
// document input, so developer messages become system messages and only text
// files are accepted.
func (a *Adapter) ProcessMessages(
	messages []domain.Message,
	images []domain.Image,
	files []domain.File,
) (domain.Prompt, error) {
	return openaicompat.BuildMessages(ProviderName, messages, images, files, openaicompat.BuildOptions{})
}

// CreateCompletionStream opens a streaming chat completion. deepseek-reasoner
// always reasons, so there is no reasoning parameter to send.
func (a *Adapter) CreateCompletionStream(ctx context.Context, req *domain.StreamRequest) (domain.ChunkStream, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	prompt, err := openaicompat.PromptFrom(req.Prompt, ProviderName)
	if err != nil {
		return nil, err
	}

	observability.FromContext(ctx).Debug("calling DeepSeek streaming API",
		observability.String("model", req.Model.Name))

	params := openaicompat.NewParams(req.Model.Name, prompt)
	return openaicompat.Open(ctx, a.client, params, ProviderName, provider.PricesFor(a.prices, req.Model.Name))
}

// HandleStreamChunk signals the start on a chunk whose first choice is the
// index-0 delta, or on a chunk that carries neither content nor usage.
func (a *Adapter) HandleStreamChunk(chunk domain.Chunk, cb domain.StreamCallbacks) {
	c, ok := chunk.(*openaicompat.Chunk)
	if !ok {
		return
	}

	indexZero := len(c.Choices) > 0 && c.Choices[0].Index == 0
	if indexZero || (!c.HasContent() && c.Usage == nil) {
		cb.OnFirstChunk(c.ID)
	}

	openaicompat.Dispatch(c, cb)
}

// Package gemini provides an adapter for the Google Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/lutia-ai/lutia/internal/domain"
	"github.com/lutia-ai/lutia/internal/observability"
	"github.com/lutia-ai/lutia/internal/provider"
)

// ProviderName is the provider identifier of Google Gemini.
const ProviderName = "gemini"

// Adapter implements domain.Adapter for Gemini.
type Adapter struct {
	client *genai.Client
	prices map[string]domain.Prices
}

// NewAdapter creates a new Gemini adapter on the Gemini API backend.
func NewAdapter(config Config) (*Adapter, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: Gemini API key is required", provider.ErrNotConfigured)
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     config.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: provider.NewHTTPClient(time.Duration(config.Timeout) * time.Second),
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    config.BaseURL,
			APIVersion: config.APIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Adapter{
		client: client,
		prices: provider.PriceTable(Models()),
	}, nil
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// ProcessMessages converts messages to contents. Only the first image is
// attached, as inline data.
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

// CreateCompletionStream counts the prompt tokens, then opens the stream.
// The stream does not report input usage, so a failed count is logged and
// billed as zero input tokens.
func (a *Adapter) CreateCompletionStream(ctx context.Context, req *domain.StreamRequest) (domain.ChunkStream, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	prompt, ok := req.Prompt.(*Prompt)
	if !ok {
		return nil, fmt.Errorf("prompt was not built for %s", ProviderName)
	}

	logger := observability.FromContext(ctx)

	promptTokens, err := a.countTokens(ctx, req.Model.Name, prompt)
	if err != nil {
		logger.Warn("gemini token count failed, billing zero input tokens",
			observability.String("model", req.Model.Name),
			observability.Error(err))
		promptTokens = 0
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: prompt.SystemInstruction,
		MaxOutputTokens:   int32(req.Model.MaxOutputTokens),
	}
	if req.ReasoningEnabled && req.Model.SupportsReasoning() {
		config.ThinkingConfig = &genai.ThinkingConfig{IncludeThoughts: true}
	}

	logger.Debug("calling Gemini streaming API",
		observability.String("model", req.Model.Name),
		observability.Int("prompt_tokens", promptTokens),
		observability.Bool("thinking", config.ThinkingConfig != nil))

	seq := a.client.Models.GenerateContentStream(ctx, req.Model.Name, prompt.Contents, config)
	return openStream(seq, promptTokens, provider.PricesFor(a.prices, req.Model.Name))
}

// countTokens counts the system instruction as a leading user turn; the
// Gemini API does not accept it on countTokens.
func (a *Adapter) countTokens(ctx context.Context, model string, prompt *Prompt) (int, error) {
	contents := prompt.Contents
	if prompt.SystemInstruction != nil {
		system := genai.NewContentFromParts(prompt.SystemInstruction.Parts, genai.RoleUser)
		contents = append([]*genai.Content{system}, contents...)
	}

	resp, err := a.client.Models.CountTokens(ctx, model, contents, nil)
	if err != nil {
		return 0, err
	}
	return int(resp.TotalTokens), nil
}

// HandleStreamChunk reports the first chunk while no content has been
// accumulated, forwards thought parts as reasoning and the rest as content,
// and converts the usage report. The counted prompt tokens are reported with
// the first chunk so a stream cut short of its usage report is still billed
// for input.
func (a *Adapter) HandleStreamChunk(chunk domain.Chunk, cb domain.StreamCallbacks) {
	c, ok := chunk.(*Chunk)
	if !ok || c.GenerateContentResponse == nil {
		return
	}

	if cb.AccumulatedText() == "" {
		cb.OnFirstChunk(c.ResponseID)
	}
	if c.First && c.PromptTokens > 0 {
		cb.OnUsage(domain.Usage{PromptTokens: c.PromptTokens}, c.Prices)
	}

	for _, candidate := range c.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Text == "" {
				continue
			}
			if part.Thought {
				cb.OnReasoning(part.Text)
			} else {
				cb.OnContent(part.Text)
			}
		}
	}

	if c.UsageMetadata != nil {
		cb.OnUsage(c.Usage(), c.Prices)
	}
}

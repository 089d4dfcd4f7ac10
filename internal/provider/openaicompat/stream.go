package openaicompat

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/ssestream"

	"github.com/lutia-ai/lutia/internal/domain"
)

// Chunk is a decoded chat completion chunk. Vendor extensions such as
// reasoning_content are kept, which the SDK type drops.
type Chunk struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   *Usage   `json:"usage"`

	// Prices are the vendor prices of the streamed model, nil when unknown.
	Prices *domain.Prices `json:"-"`

	provider string
}

// Provider returns the adapter that decoded the chunk.
func (c *Chunk) Provider() string { return c.provider }

// Choice is one streamed choice.
type Choice struct {
	Index        int    `json:"index"`
	Delta        Delta  `json:"delta"`
	FinishReason string `json:"finish_reason"`
}

// Delta is the incremental message of a choice.
type Delta struct {
	Role             string `json:"role"`
	Content          string `json:"content"`
	ReasoningContent string `json:"reasoning_content"`
	Reasoning        string `json:"reasoning"`
}

// ReasoningText returns whichever reasoning field the vendor filled.
func (d Delta) ReasoningText() string {
	if d.ReasoningContent != "" {
		return d.ReasoningContent
	}
	return d.Reasoning
}

// Usage is the token usage reported with the final chunk.
type Usage struct {
	PromptTokens            int `json:"prompt_tokens"`
	CompletionTokens        int `json:"completion_tokens"`
	TotalTokens             int `json:"total_tokens"`
	CompletionTokensDetails *struct {
		ReasoningTokens int `json:"reasoning_tokens"`
	} `json:"completion_tokens_details"`
}

// Domain converts the usage report.
func (u *Usage) Domain() domain.Usage {
	usage := domain.Usage{
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		TotalTokens:      u.TotalTokens,
	}
	if u.CompletionTokensDetails != nil {
		usage.ThinkingTokens = u.CompletionTokensDetails.ReasoningTokens
	}
	return usage
}

// HasContent reports whether any choice carries content or reasoning.
func (c *Chunk) HasContent() bool {
	for _, choice := range c.Choices {
		if choice.Delta.Content != "" || choice.Delta.ReasoningText() != "" {
			return true
		}
	}
	return false
}

// Dispatch maps a chunk onto the reasoning, content and usage callbacks.
func Dispatch(c *Chunk, cb domain.StreamCallbacks) {
	for _, choice := range c.Choices {
		if reasoning := choice.Delta.ReasoningText(); reasoning != "" {
			cb.OnReasoning(reasoning)
		}
		if choice.Delta.Content != "" {
			cb.OnContent(choice.Delta.Content)
		}
	}
	if c.Usage != nil {
		cb.OnUsage(c.Usage.Domain(), c.Prices)
	}
}

// NewParams builds streaming parameters that request a final usage chunk.
func NewParams(model string, prompt *Prompt) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model:    model,
		Messages: prompt.Messages,
		StreamOptions: openai.ChatCompletionStreamOptionsParam{
			IncludeUsage: openai.Bool(true),
		},
	}
}

// Stream adapts the SDK stream to domain.ChunkStream.
type Stream struct {
	provider string
	prices   *domain.Prices
	sdk      *ssestream.Stream[openai.ChatCompletionChunk]
	cur      *Chunk
	err      error
}

// Open starts a streaming completion. The SDK sends the request right away,
// so open failures surface here rather than on the first Next.
func Open(
	ctx context.Context,
	client openai.Client,
	params openai.ChatCompletionNewParams,
	provider string,
	prices *domain.Prices,
) (*Stream, error) {
	sdk := client.Chat.Completions.NewStreaming(ctx, params)
	if err := sdk.Err(); err != nil {
		_ = sdk.Close()
		return nil, fmt.Errorf("%s stream request failed: %w", provider, err)
	}

	return &Stream{provider: provider, prices: prices, sdk: sdk}, nil
}

// Next decodes the next chunk.
func (s *Stream) Next() bool {
	if s.err != nil || !s.sdk.Next() {
		return false
	}

	chunk, err := DecodeChunk(s.provider, []byte(s.sdk.Current().RawJSON()))
	if err != nil {
		s.err = err
		return false
	}
	chunk.Prices = s.prices
	s.cur = chunk
	return true
}

// Current returns the chunk Next decoded.
func (s *Stream) Current() domain.Chunk { return s.cur }

// Err returns the decoding or transport failure that stopped the stream.
func (s *Stream) Err() error {
	if s.err != nil {
		return s.err
	}
	if err := s.sdk.Err(); err != nil {
		return fmt.Errorf("%s stream error: %w", s.provider, err)
	}
	return nil
}

// Close releases the connection.
func (s *Stream) Close() error { return s.sdk.Close() }

// DecodeChunk decodes one raw chunk.
func DecodeChunk(provider string, raw []byte) (*Chunk, error) {
	var chunk Chunk
	if err := json.Unmarshal(raw, &chunk); err != nil {
		return nil, fmt.Errorf("failed to decode %s chunk: %w", provider, err)
	}
	chunk.provider = provider
	return &chunk, nil
}

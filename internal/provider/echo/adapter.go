// Package echo provides a development adapter that echoes back input messages.
// It implements the domain.Adapter interface without making external API calls,
// producing deterministic streams for testing and local development.
package echo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lutia-ai/lutia/internal/domain"
	"github.com/lutia-ai/lutia/internal/observability"
	"github.com/lutia-ai/lutia/internal/provider"
)

// ProviderName is the provider identifier of the echo adapter.
const ProviderName = "echo"

const modelName = "echo4"

// Adapter implements domain.Adapter by echoing the conversation.
type Adapter struct {
	chunkDelay time.Duration
	prices     map[string]domain.Prices
}

// NewAdapter creates a new echo adapter.
func NewAdapter(config Config) (*Adapter, error) {
	if !config.Enabled {
		return nil, fmt.Errorf("%w: echo provider is disabled", provider.ErrNotConfigured)
	}

	return &Adapter{
		chunkDelay: time.Duration(config.ChunkDelayMS) * time.Millisecond,
		prices:     provider.PriceTable(Models()),
	}, nil
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// Prompt is the rendered echo transcript.
type Prompt struct {
	Content string
}

// Provider returns the provider the prompt was built for.
func (p *Prompt) Provider() string { return ProviderName }

// ProcessMessages renders one line per message and notes the attachments.
func (a *Adapter) ProcessMessages(
	messages []domain.Message,
	images []domain.Image,
	files []domain.File,
) (domain.Prompt, error) {
	if len(messages) == 0 {
		return nil, errors.New("no messages to echo")
	}

	var builder strings.Builder
	for _, msg := range messages {
		builder.WriteString(fmt.Sprintf("[%s]: %s\n", msg.Role, msg.Text()))
	}
	if len(images) > 0 || len(files) > 0 {
		builder.WriteString(fmt.Sprintf("[attachments]: %d image(s), %d file(s)\n", len(images), len(files)))
	}

	return &Prompt{Content: builder.String()}, nil
}

// CreateCompletionStream streams the transcript back word by word.
func (a *Adapter) CreateCompletionStream(ctx context.Context, req *domain.StreamRequest) (domain.ChunkStream, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Model.Name != modelName {
		return nil, fmt.Errorf("model %s is not supported by echo provider", req.Model.Name)
	}

	prompt, ok := req.Prompt.(*Prompt)
	if !ok {
		return nil, fmt.Errorf("prompt was not built for %s", ProviderName)
	}

	observability.FromContext(ctx).Debug("streaming echo request",
		observability.Bool("reasoning", req.ReasoningEnabled))

	streamCtx, cancel := context.WithCancel(ctx)
	s := &Stream{
		chunks: make(chan *Chunk),
		cancel: cancel,
	}
	go a.produce(streamCtx, s.chunks, prompt.Content, req.ReasoningEnabled,
		provider.PricesFor(a.prices, req.Model.Name))

	return s, nil
}

func (a *Adapter) produce(
	ctx context.Context,
	chunks chan<- *Chunk,
	content string,
	reasoning bool,
	prices *domain.Prices,
) {
	defer close(chunks)

	send := func(c *Chunk) bool {
		if err := ctx.Err(); err != nil {
			select {
			case chunks <- &Chunk{Err: err}:
			default:
			}
			return false
		}
		select {
		case chunks <- c:
			return true
		case <-ctx.Done():
			select {
			case chunks <- &Chunk{Err: ctx.Err()}:
			default:
			}
			return false
		}
	}

	if !send(&Chunk{Kind: KindStart, ID: "echo-" + observability.GenerateRequestID()}) {
		return
	}
	if reasoning {
		thought := fmt.Sprintf("Echoing %d line(s).", strings.Count(content, "\n"))
		if !send(&Chunk{Kind: KindReasoning, Text: thought}) {
			return
		}
	}

	words := strings.Fields(content)
	for i, word := range words {
		delta := word
		if i < len(words)-1 {
			delta += " "
		}
		if !send(&Chunk{Kind: KindText, Text: delta}) {
			return
		}
		if a.chunkDelay > 0 {
			time.Sleep(a.chunkDelay)
		}
	}

	tokens := domain.EstimateTokens(content)
	send(&Chunk{
		Kind:   KindUsage,
		Usage:  domain.Usage{PromptTokens: tokens, CompletionTokens: tokens, TotalTokens: 2 * tokens},
		Prices: prices,
	})
}

// HandleStreamChunk maps echo chunks one to one onto the callbacks.
func (a *Adapter) HandleStreamChunk(chunk domain.Chunk, cb domain.StreamCallbacks) {
	c, ok := chunk.(*Chunk)
	if !ok {
		return
	}

	switch c.Kind {
	case KindStart:
		cb.OnFirstChunk(c.ID)
	case KindReasoning:
		cb.OnReasoning(c.Text)
	case KindText:
		cb.OnContent(c.Text)
	case KindUsage:
		cb.OnUsage(c.Usage, c.Prices)
	}
}

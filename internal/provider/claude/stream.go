package claude

import (
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"

	"github.com/lutia-ai/lutia/internal/domain"
)

// Chunk wraps a stream event with the vendor prices of the streamed model.
type Chunk struct {
	Event  anthropic.MessageStreamEventUnion
	Prices *domain.Prices
}

// Provider returns the adapter that decoded the chunk.
func (c *Chunk) Provider() string { return ProviderName }

// usageOf converts a usage report. Cache reads and writes count as input.
func usageOf(input, cacheCreation, cacheRead, output int64) domain.Usage {
	return domain.Usage{
		PromptTokens:     int(input + cacheCreation + cacheRead),
		CompletionTokens: int(output),
	}
}

// Stream adapts the SDK event stream to domain.ChunkStream. Pings are
// skipped by the SDK and error events end the stream.
type Stream struct {
	sdk    *ssestream.Stream[anthropic.MessageStreamEventUnion]
	prices *domain.Prices
	cur    *Chunk
}

// Next decodes the next event.
func (s *Stream) Next() bool {
	if !s.sdk.Next() {
		return false
	}
	s.cur = &Chunk{Event: s.sdk.Current(), Prices: s.prices}
	return true
}

// Current returns the chunk Next decoded.
func (s *Stream) Current() domain.Chunk { return s.cur }

// Err returns the failure that stopped the stream.
func (s *Stream) Err() error {
	if err := s.sdk.Err(); err != nil {
		return fmt.Errorf("%s stream error: %w", ProviderName, err)
	}
	return nil
}

// Close releases the connection.
func (s *Stream) Close() error { return s.sdk.Close() }

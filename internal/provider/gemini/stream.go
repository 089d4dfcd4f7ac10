package gemini

import (
	"fmt"
	"iter"

	"google.golang.org/genai"

	"github.com/lutia-ai/lutia/internal/domain"
)

// Chunk wraps a response with the prompt token count and vendor prices of
// the call that produced it. First marks the opening chunk of the stream.
type Chunk struct {
	*genai.GenerateContentResponse
	First        bool
	PromptTokens int
	Prices       *domain.Prices
}

// Provider returns the adapter that decoded the chunk.
func (c *Chunk) Provider() string { return ProviderName }

// Usage converts the usage report. The streamed prompt count is not trusted;
// the count taken before the call is used instead. Thoughts are billed as
// output.
func (c *Chunk) Usage() domain.Usage {
	m := c.UsageMetadata
	return domain.Usage{
		PromptTokens:     c.PromptTokens,
		CompletionTokens: int(m.CandidatesTokenCount + m.ThoughtsTokenCount),
		ThinkingTokens:   int(m.ThoughtsTokenCount),
	}
}

// Stream adapts the SDK response iterator to domain.ChunkStream.
type Stream struct {
	next func() (*genai.GenerateContentResponse, error, bool)
	stop func()

	pending      *genai.GenerateContentResponse
	promptTokens int
	prices       *domain.Prices
	started      bool
	cur          *Chunk
	err          error
}

// openStream pulls the first response so a rejected request fails the open
// instead of the first Next.
func openStream(seq iter.Seq2[*genai.GenerateContentResponse, error], promptTokens int, prices *domain.Prices) (*Stream, error) {
	next, stop := iter.Pull2(seq)

	first, err, ok := next()
	if err != nil {
		stop()
		return nil, fmt.Errorf("%s stream request failed: %w", ProviderName, err)
	}

	s := &Stream{next: next, stop: stop, promptTokens: promptTokens, prices: prices}
	if ok {
		s.pending = first
	}
	return s, nil
}

// Next returns the next response.
func (s *Stream) Next() bool {
	if s.err != nil {
		return false
	}

	resp := s.pending
	s.pending = nil
	for resp == nil {
		var err error
		var ok bool
		resp, err, ok = s.next()
		if err != nil {
			s.err = fmt.Errorf("%s stream error: %w", ProviderName, err)
			return false
		}
		if !ok {
			return false
		}
	}

	s.cur = &Chunk{
		GenerateContentResponse: resp,
		First:                   !s.started,
		PromptTokens:            s.promptTokens,
		Prices:                  s.prices,
	}
	s.started = true
	return true
}

// Current returns the chunk Next decoded.
func (s *Stream) Current() domain.Chunk { return s.cur }

// Err returns the failure that stopped the stream.
func (s *Stream) Err() error { return s.err }

// Close stops the iterator, which releases the connection.
func (s *Stream) Close() error {
	s.stop()
	return nil
}

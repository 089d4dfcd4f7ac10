package echo

import (
	"context"

	"github.com/lutia-ai/lutia/internal/domain"
)

// ChunkKind discriminates echo chunks.
type ChunkKind int

// Chunk kinds.
const (
	KindStart ChunkKind = iota + 1
	KindReasoning
	KindText
	KindUsage
)

// Chunk is one echo stream element. A chunk with Err ends the stream.
type Chunk struct {
	Kind   ChunkKind
	ID     string
	Text   string
	Usage  domain.Usage
	Prices *domain.Prices
	Err    error
}

// Provider returns the adapter that produced the chunk.
func (c *Chunk) Provider() string { return ProviderName }

// Stream reads chunks from the producing goroutine.
type Stream struct {
	chunks chan *Chunk
	cancel context.CancelFunc
	cur    *Chunk
	err    error
}

// Next receives the next chunk.
func (s *Stream) Next() bool {
	if s.err != nil {
		return false
	}

	c, ok := <-s.chunks
	if !ok {
		return false
	}
	if c.Err != nil {
		s.err = c.Err
		return false
	}
	s.cur = c
	return true
}

// Current returns the chunk Next received.
func (s *Stream) Current() domain.Chunk { return s.cur }

// Err returns the cancellation that ended the stream, if any.
func (s *Stream) Err() error { return s.err }

// Close stops the producer.
func (s *Stream) Close() error {
	s.cancel()
	return nil
}

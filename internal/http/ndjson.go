package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/lutia-ai/lutia/internal/domain"
)

const ndjsonContentType = "application/x-ndjson"

// ErrWriterClosed is returned by WriteEvent after Close.
var ErrWriterClosed = errors.New("event writer closed")

// NDJSONWriter implements domain.EventWriter as newline-delimited JSON,
// flushing after every event.
type NDJSONWriter struct {
	mu      sync.Mutex
	w       http.ResponseWriter
	flusher http.Flusher
	closed  bool
}

// NewNDJSONWriter prepares w for streaming and sends the response headers.
func NewNDJSONWriter(w http.ResponseWriter) (*NDJSONWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, errors.New("streaming not supported")
	}

	w.Header().Set("Content-Type", ndjsonContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &NDJSONWriter{w: w, flusher: flusher}, nil
}

// WriteEvent writes one event line.
func (n *NDJSONWriter) WriteEvent(event domain.Event) error {
	line, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	line = append(line, '\n')

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return ErrWriterClosed
	}
	if _, err := n.w.Write(line); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	n.flusher.Flush()
	return nil
}

// Close marks the stream finished. Closing twice is not an error.
func (n *NDJSONWriter) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.closed = true
	return nil
}

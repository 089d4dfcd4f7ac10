package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/lutia-ai/lutia/internal/observability"
)

// StreamState is the lifecycle stage of a StreamRun. It only moves forward.
type StreamState int32

// Stream states.
const (
	StateInitializing StreamState = iota
	StateStreaming
	StateFinalizing
	StateClosed
)

func (s StreamState) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateStreaming:
		return "streaming"
	case StateFinalizing:
		return "finalizing"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// ChatService opens vendor streams and drives them to finalization.
type ChatService struct {
	registry  ProviderRegistry
	finalizer Finalizer
	defaults  Prices
}

// NewChatService creates a new chat service (DI constructor). defaults are
// the fallback per-token prices used when neither the vendor nor the model
// descriptor supplies one.
func NewChatService(registry ProviderRegistry, finalizer Finalizer, defaults Prices) *ChatService {
	return &ChatService{
		registry:  registry,
		finalizer: finalizer,
		defaults:  defaults.Sanitize(),
	}
}

// Open resolves the adapter, converts the messages and opens the vendor
// stream. Nothing is written to the client when Open fails.
func (s *ChatService) Open(ctx context.Context, req *ChatRequest) (*StreamRun, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request cannot be nil", ErrInvalidRequest)
	}
	if req.User == nil {
		return nil, fmt.Errorf("%w: request has no user", ErrInvalidRequest)
	}

	adapter, err := s.registry.Get(ctx, req.Provider)
	if err != nil {
		return nil, fmt.Errorf("provider lookup failed: %w", err)
	}

	prompt, err := adapter.ProcessMessages(StripMessageIDs(req.Messages), req.Images, req.Files)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	streamCtx, cancel := context.WithCancel(ctx)
	stream, err := adapter.CreateCompletionStream(streamCtx, &StreamRequest{
		Model:            req.Model,
		Prompt:           prompt,
		ReasoningEnabled: req.ReasoningEnabled,
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: %w", ErrStreamOpen, err)
	}

	requestID := observability.GetRequestID(ctx)
	if requestID == "" {
		requestID = observability.GenerateRequestID()
	}

	modelPrices := req.Model.Prices()
	base := s.defaults.Merge(&modelPrices)

	return &StreamRun{
		finalizer:  s.finalizer,
		adapter:    adapter,
		stream:     stream,
		cancel:     cancel,
		req:        req,
		requestID:  requestID,
		basePrices: base,
		prices:     base,
	}, nil
}

// StreamRun is one opened vendor stream. It is driven by a single goroutine.
type StreamRun struct {
	finalizer Finalizer
	adapter   Adapter
	stream    ChunkStream
	cancel    context.CancelFunc
	req       *ChatRequest
	writer    EventWriter

	state atomic.Int32

	requestID  string
	basePrices Prices
	prices     Prices

	started            bool
	clientDisconnected bool
	streamErr          error

	text      strings.Builder
	reasoning strings.Builder
	usage     Usage
}

// State returns the current lifecycle stage.
func (r *StreamRun) State() StreamState {
	return StreamState(r.state.Load())
}

// ClientDisconnected reports whether forwarding stopped because the client went away.
func (r *StreamRun) ClientDisconnected() bool {
	return r.clientDisconnected
}

// Run forwards the vendor stream to w, then finalizes and closes. Finalization
// runs exactly once whether the stream completed, failed or the client left.
// A non-nil error means the response was not confirmed saved.
func (r *StreamRun) Run(ctx context.Context, w EventWriter) (*FinalizationResult, error) {
	if w == nil {
		return nil, errors.New("event writer cannot be nil")
	}
	if !r.advance(StateStreaming) {
		return nil, errors.New("stream run already started")
	}
	r.writer = w

	logger := observability.FromContext(ctx)
	start := time.Now()

	r.consume(ctx)
	result, err := r.finalize(ctx)
	r.close(ctx)

	logger.Info("stream finished",
		observability.Duration("duration", time.Since(start)),
		observability.Int("text_length", r.text.Len()),
		observability.Int("reasoning_length", r.reasoning.Len()),
		observability.Bool("client_disconnected", r.clientDisconnected),
		observability.Bool("stream_error", r.streamErr != nil))

	return result, err
}

func (r *StreamRun) consume(ctx context.Context) {
	defer func() {
		if p := recover(); p != nil {
			r.fail(ctx, fmt.Errorf("stream handler panic: %v", p))
		}
	}()

	starter, implicit := r.adapter.(ImplicitStarter)
	cb := r.callbacks()

	for r.stream.Next() {
		if r.checkDisconnect(ctx) {
			return
		}

		chunk := r.stream.Current()
		if implicit {
			r.start(starter.StartID(chunk))
		}
		r.adapter.HandleStreamChunk(chunk, cb)

		if r.clientDisconnected {
			return
		}
	}

	if r.checkDisconnect(ctx) {
		return
	}
	if err := r.stream.Err(); err != nil {
		r.fail(ctx, err)
	}
}

func (r *StreamRun) callbacks() StreamCallbacks {
	return StreamCallbacks{
		OnFirstChunk: r.start,
		OnUsage: func(usage Usage, prices *Prices) {
			r.start("")
			r.usage = r.usage.Merge(usage)
			if prices != nil {
				r.prices = r.basePrices.Merge(prices)
			}
			r.emit(UsageEvent(CalculateCost(r.usage, r.prices)))
		},
		OnContent: func(text string) {
			if text == "" {
				return
			}
			r.start("")
			r.text.WriteString(text)
			r.emit(TextEvent(text))
		},
		OnReasoning: func(text string) {
			if text == "" {
				return
			}
			r.start("")
			r.reasoning.WriteString(text)
			r.emit(ReasoningEvent(text))
		},
		AccumulatedText: r.text.String,
	}
}

// start emits request_info once. Later calls are ignored.
func (r *StreamRun) start(vendorRequestID string) {
	if r.started {
		return
	}
	r.started = true

	id := vendorRequestID
	if id == "" {
		id = r.requestID
	}
	r.emit(RequestInfoEvent(id, r.req.ConversationID()))
}

func (r *StreamRun) emit(event Event) {
	if r.clientDisconnected {
		return
	}
	if err := r.writer.WriteEvent(event); err != nil {
		r.disconnect()
	}
}

func (r *StreamRun) checkDisconnect(ctx context.Context) bool {
	if r.clientDisconnected {
		return true
	}
	if ctx.Err() != nil {
		r.disconnect()
		return true
	}
	return false
}

func (r *StreamRun) disconnect() {
	r.clientDisconnected = true
	r.cancel()
}

// fail records the first mid-stream error and forwards it to the client.
func (r *StreamRun) fail(ctx context.Context, err error) {
	if r.streamErr != nil {
		return
	}
	r.streamErr = err

	observability.FromContext(ctx).Warn("stream failed", observability.Error(err))

	r.start("")
	r.emit(ErrorEvent(err.Error()))
}

func (r *StreamRun) finalize(ctx context.Context) (*FinalizationResult, error) {
	r.advance(StateFinalizing)

	logger := observability.FromContext(ctx)
	fctx := context.WithoutCancel(ctx)

	in := &FinalizeInput{
		User:                 r.req.User,
		Model:                r.req.Model,
		ConversationID:       r.req.ConversationID(),
		NewConversation:      r.req.IsNewConversation(),
		Prompt:               r.req.PromptText(),
		Text:                 r.text.String(),
		Reasoning:            r.reasoning.String(),
		Usage:                r.usage,
		Prices:               r.prices,
		Aborted:              r.clientDisconnected,
		Err:                  r.streamErr,
		ReferencedMessageIDs: r.req.ReferencedMessageIDs,
		ImageCount:           len(r.req.Images),
		FileCount:            len(r.req.Files),
	}

	var (
		result *FinalizationResult
		err    error
	)
	if r.req.RegenerateMessageID != nil {
		result, err = r.finalizer.Update(fctx, *r.req.RegenerateMessageID, in)
	} else {
		result, err = r.finalizer.Create(fctx, in)
	}
	if err != nil {
		fields := []observability.Field{
			observability.Error(err),
			observability.Int("completion_tokens", r.usage.CompletionTokens),
			observability.Bool("aborted", in.Aborted),
		}
		if result != nil {
			fields = append(fields, observability.Int64("message_id", result.MessageID))
		}
		logger.Error("finalization failed", fields...)
		return result, fmt.Errorf("failed to finalize response: %w", err)
	}

	r.start("")
	if err := r.writer.WriteEvent(MessageIDEvent(result.MessageID)); err != nil {
		logger.Debug("message id not delivered", observability.Error(err))
	}

	return result, nil
}

func (r *StreamRun) close(ctx context.Context) {
	r.advance(StateClosed)
	r.cancel()

	logger := observability.FromContext(ctx)
	if err := r.stream.Close(); err != nil {
		logger.Debug("vendor stream close failed", observability.Error(err))
	}
	if err := r.writer.Close(); err != nil {
		logger.Debug("event writer close failed", observability.Error(err))
	}
}

// advance moves the run to a later state. It reports false when the run is
// already at or past to.
func (r *StreamRun) advance(to StreamState) bool {
	for {
		current := r.state.Load()
		if current >= int32(to) {
			return false
		}
		if r.state.CompareAndSwap(current, int32(to)) {
			return true
		}
	}
}

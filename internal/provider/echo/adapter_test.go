package echo_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lutia-ai/lutia/internal/domain"
	"github.com/lutia-ai/lutia/internal/provider"
	"github.com/lutia-ai/lutia/internal/provider/echo"
)

func newAdapter(t *testing.T) *echo.Adapter {
	t.Helper()
	adapter, err := echo.NewAdapter(echo.Config{Enabled: true})
	require.NoError(t, err)
	return adapter
}

func echoModel() domain.ModelDescriptor {
	return echo.Models()[0]
}

type collected struct {
	starts    []string
	content   strings.Builder
	reasoning strings.Builder
	usage     domain.Usage
	prices    *domain.Prices
}

func collect(t *testing.T, adapter *echo.Adapter, stream domain.ChunkStream) *collected {
	t.Helper()
	out := &collected{}
	cb := domain.StreamCallbacks{
		OnFirstChunk: func(id string) { out.starts = append(out.starts, id) },
		OnUsage: func(u domain.Usage, p *domain.Prices) {
			out.usage = u
			out.prices = p
		},
		OnContent:       func(s string) { out.content.WriteString(s) },
		OnReasoning:     func(s string) { out.reasoning.WriteString(s) },
		AccumulatedText: func() string { return out.content.String() },
	}
	for stream.Next() {
		adapter.HandleStreamChunk(stream.Current(), cb)
	}
	return out
}

func TestNewAdapter(t *testing.T) {
	_, err := echo.NewAdapter(echo.Config{})
	require.ErrorIs(t, err, provider.ErrNotConfigured)

	adapter := newAdapter(t)
	require.Equal(t, "echo", adapter.Name())
}

func TestProcessMessages(t *testing.T) {
	adapter := newAdapter(t)

	prompt, err := adapter.ProcessMessages([]domain.Message{
		{Role: "system", Content: "You are helpful"},
		{Role: "user", Content: "Hello world"},
	}, []domain.Image{{MediaType: "image/png", Data: "x"}}, nil)

	require.NoError(t, err)
	require.Equal(t, "echo", prompt.Provider())
	require.Equal(t,
		"[system]: You are helpful\n[user]: Hello world\n[attachments]: 1 image(s), 0 file(s)\n",
		prompt.(*echo.Prompt).Content)

	_, err = adapter.ProcessMessages(nil, nil, nil)
	require.Error(t, err)
}

func TestStream_Success(t *testing.T) {
	adapter := newAdapter(t)
	ctx := context.Background()

	prompt, err := adapter.ProcessMessages([]domain.Message{{Role: "user", Content: "Hello world"}}, nil, nil)
	require.NoError(t, err)

	stream, err := adapter.CreateCompletionStream(ctx, &domain.StreamRequest{
		Model:            echoModel(),
		Prompt:           prompt,
		ReasoningEnabled: true,
	})
	require.NoError(t, err)
	defer stream.Close()

	out := collect(t, adapter, stream)

	require.NoError(t, stream.Err())
	require.Len(t, out.starts, 1)
	require.True(t, strings.HasPrefix(out.starts[0], "echo-"))
	require.Equal(t, "Echoing 1 line(s).", out.reasoning.String())
	require.Equal(t, "[user]: Hello world", out.content.String())

	tokens := domain.EstimateTokens("[user]: Hello world\n")
	require.Equal(t, domain.Usage{PromptTokens: tokens, CompletionTokens: tokens, TotalTokens: 2 * tokens}, out.usage)
	require.NotNil(t, out.prices)
}

func TestStream_NilRequest(t *testing.T) {
	adapter := newAdapter(t)

	stream, err := adapter.CreateCompletionStream(context.Background(), nil)

	require.Error(t, err)
	require.Nil(t, stream)
	require.Contains(t, err.Error(), "request cannot be nil")
}

func TestStream_UnsupportedModel(t *testing.T) {
	adapter := newAdapter(t)

	prompt, err := adapter.ProcessMessages([]domain.Message{{Role: "user", Content: "Hello"}}, nil, nil)
	require.NoError(t, err)

	stream, err := adapter.CreateCompletionStream(context.Background(), &domain.StreamRequest{
		Model:  domain.ModelDescriptor{Name: "gpt-4", Provider: "openai"},
		Prompt: prompt,
	})

	require.Error(t, err)
	require.Nil(t, stream)
	require.Contains(t, err.Error(), "not supported")
}

func TestStream_ContextCancellation(t *testing.T) {
	adapter := newAdapter(t)
	ctx, cancel := context.WithCancel(context.Background())

	prompt, err := adapter.ProcessMessages([]domain.Message{
		{Role: "user", Content: "This is a longer message for testing cancellation"},
	}, nil, nil)
	require.NoError(t, err)

	stream, err := adapter.CreateCompletionStream(ctx, &domain.StreamRequest{Model: echoModel(), Prompt: prompt})
	require.NoError(t, err)
	defer stream.Close()

	require.True(t, stream.Next())
	cancel()

	var usage bool
	for stream.Next() {
		if c := stream.Current().(*echo.Chunk); c.Kind == echo.KindUsage {
			usage = true
		}
	}
	require.False(t, usage)
}

func TestHandleStreamChunk_IgnoresForeignChunks(t *testing.T) {
	adapter := newAdapter(t)
	called := false
	cb := domain.StreamCallbacks{
		OnFirstChunk: func(string) { called = true },
		OnContent:    func(string) { called = true },
	}

	adapter.HandleStreamChunk(nil, cb)
	require.False(t, called)
}

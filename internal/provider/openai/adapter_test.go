package openai_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lutia-ai/lutia/internal/domain"
	"github.com/lutia-ai/lutia/internal/provider"
	"github.com/lutia-ai/lutia/internal/provider/openai"
)

func TestNewAdapter_Success(t *testing.T) {
	adapter, err := openai.NewAdapter(openai.Config{
		APIKey:  "test-api-key",
		BaseURL: "https://api.openai.com/v1",
		Timeout: 60,
	})

	require.NoError(t, err)
	require.NotNil(t, adapter)
	require.Equal(t, "openai", adapter.Name())
}

func TestNewAdapter_MissingAPIKey(t *testing.T) {
	adapter, err := openai.NewAdapter(openai.Config{BaseURL: "https://api.openai.com/v1"})

	require.Error(t, err)
	require.Nil(t, adapter)
	require.ErrorIs(t, err, provider.ErrNotConfigured)
	require.Contains(t, err.Error(), "OpenAI API key is required")
}

func TestModels(t *testing.T) {
	for _, m := range openai.Models() {
		require.Equal(t, openai.ProviderName, m.Provider)
		require.Positive(t, m.InputPricePerMillion, m.Name)
		require.Positive(t, m.OutputPricePerMillion, m.Name)
	}
}

type capture struct {
	body map[string]any
}

func newServer(t *testing.T, c *capture) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &c.body)

		w.Header().Set("Content-Type", "text/event-stream")
		for _, e := range []string{
			`{"id":"chatcmpl-1","model":"o4-mini","choices":[{"index":0,"delta":{"role":"assistant","content":""}}]}`,
			`{"id":"chatcmpl-1","model":"o4-mini","choices":[{"index":0,"delta":{"content":"Hi"}}]}`,
			`{"id":"chatcmpl-1","model":"o4-mini","choices":[],"usage":{"prompt_tokens":8,"completion_tokens":1,"total_tokens":9}}`,
		} {
			_, _ = fmt.Fprintf(w, "data: %s\n\n", e)
		}
		_, _ = fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAdapter_Stream(t *testing.T) {
	tests := []struct {
		name          string
		model         string
		reasoning     bool
		wantReasoning bool
	}{
		{name: "reasoning model with reasoning", model: "o4-mini", reasoning: true, wantReasoning: true},
		{name: "reasoning model without reasoning", model: "o4-mini", reasoning: false, wantReasoning: false},
		{name: "plain model ignores reasoning", model: "gpt-4o", reasoning: true, wantReasoning: false},
	}

	catalog := map[string]domain.ModelDescriptor{}
	for _, m := range openai.Models() {
		catalog[m.Name] = m
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &capture{}
			srv := newServer(t, c)

			adapter, err := openai.NewAdapter(openai.Config{APIKey: "k", BaseURL: srv.URL})
			require.NoError(t, err)

			prompt, err := adapter.ProcessMessages([]domain.Message{{Role: domain.RoleUser, Content: "hello"}}, nil, nil)
			require.NoError(t, err)

			stream, err := adapter.CreateCompletionStream(context.Background(), &domain.StreamRequest{
				Model:            catalog[tt.model],
				Prompt:           prompt,
				ReasoningEnabled: tt.reasoning,
			})
			require.NoError(t, err)
			defer stream.Close()

			var (
				text   string
				starts []string
				usage  domain.Usage
				priced *domain.Prices
			)
			cb := domain.StreamCallbacks{
				OnFirstChunk: func(id string) { starts = append(starts, id) },
				OnUsage: func(u domain.Usage, p *domain.Prices) {
					usage = u
					priced = p
				},
				OnContent:       func(s string) { text += s },
				OnReasoning:     func(string) {},
				AccumulatedText: func() string { return text },
			}
			var ids []string
			for stream.Next() {
				ids = append(ids, adapter.StartID(stream.Current()))
				adapter.HandleStreamChunk(stream.Current(), cb)
			}
			require.NoError(t, stream.Err())

			require.Equal(t, "Hi", text)
			require.Empty(t, starts)
			require.Equal(t, "chatcmpl-1", ids[0])
			require.Equal(t, 9, usage.TotalTokens)
			require.NotNil(t, priced)

			require.Equal(t, tt.model, c.body["model"])
			require.Equal(t, true, c.body["stream"])
			require.Equal(t, map[string]any{"include_usage": true}, c.body["stream_options"])
			if tt.wantReasoning {
				require.Equal(t, "medium", c.body["reasoning_effort"])
			} else {
				require.NotContains(t, c.body, "reasoning_effort")
			}
		})
	}
}

func TestAdapter_CreateCompletionStream_ForeignPrompt(t *testing.T) {
	adapter, err := openai.NewAdapter(openai.Config{APIKey: "k"})
	require.NoError(t, err)

	_, err = adapter.CreateCompletionStream(context.Background(), &domain.StreamRequest{Prompt: nil})
	require.Error(t, err)

	_, err = adapter.CreateCompletionStream(context.Background(), nil)
	require.Error(t, err)
}

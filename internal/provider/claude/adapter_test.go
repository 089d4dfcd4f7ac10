package claude_test

import (
	"bytes"
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
	"github.com/lutia-ai/lutia/internal/provider/claude"
)

const sonnet = "claude-sonnet-4-20250514"

type recorder struct {
	starts    []string
	content   string
	reasoning string
	usage     domain.Usage
	prices    *domain.Prices
}

func (r *recorder) callbacks() domain.StreamCallbacks {
	return domain.StreamCallbacks{
		OnFirstChunk: func(id string) { r.starts = append(r.starts, id) },
		OnUsage: func(u domain.Usage, p *domain.Prices) {
			r.usage = r.usage.Merge(u)
			r.prices = p
		},
		OnContent:       func(s string) { r.content += s },
		OnReasoning:     func(s string) { r.reasoning += s },
		AccumulatedText: func() string { return r.content },
	}
}

func modelByName(t *testing.T, name string) domain.ModelDescriptor {
	t.Helper()
	for _, m := range claude.Models() {
		if m.Name == name {
			return m
		}
	}
	t.Fatalf("model %s not found", name)
	return domain.ModelDescriptor{}
}

func marshalMessages(t *testing.T, prompt *claude.Prompt) []map[string]any {
	t.Helper()
	data, err := json.Marshal(prompt.Messages)
	require.NoError(t, err)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestNewAdapter(t *testing.T) {
	_, err := claude.NewAdapter(claude.Config{})
	require.ErrorIs(t, err, provider.ErrNotConfigured)
}

func TestAdapter_ProcessMessages(t *testing.T) {
	adapter, err := claude.NewAdapter(claude.Config{APIKey: "k"})
	require.NoError(t, err)

	id := int64(4)
	messages := []domain.Message{
		{Role: domain.RoleAssistant, Content: "hello, how can I help?"},
		{Role: domain.RoleSystem, Content: "be brief"},
		{Role: domain.RoleDeveloper, Content: "answer in English"},
		{Role: domain.RoleUser, Content: "first", MessageID: &id},
		{Role: domain.RoleUser, Content: "second"},
		{Role: domain.RoleAssistant, Content: "ok"},
		{Role: domain.RoleUser, Content: "read these"},
	}
	images := []domain.Image{{MediaType: "image/jpeg", Data: "/9j/4AAQ"}}
	files := []domain.File{
		{Name: "report.pdf", MediaType: "application/pdf", Data: "JVBERi0x"},
		{Name: "notes.md", MediaType: "text/markdown", Content: "# notes"},
	}

	got, err := adapter.ProcessMessages(messages, images, files)
	require.NoError(t, err)
	require.Equal(t, claude.ProviderName, got.Provider())

	prompt := got.(*claude.Prompt)
	require.Equal(t, "be brief\n\nanswer in English", prompt.System)

	out := marshalMessages(t, prompt)
	require.Len(t, out, 3)
	require.Equal(t, "user", out[0]["role"])
	first := out[0]["content"].([]any)
	require.Len(t, first, 2)
	require.Equal(t, "second", first[1].(map[string]any)["text"])
	require.Equal(t, "assistant", out[1]["role"])

	last := out[2]["content"].([]any)
	require.Len(t, last, 4)
	image := last[1].(map[string]any)
	require.Equal(t, "image", image["type"])
	require.Equal(t, map[string]any{"type": "base64", "media_type": "image/jpeg", "data": "/9j/4AAQ"}, image["source"])
	doc := last[2].(map[string]any)
	require.Equal(t, "document", doc["type"])
	require.Equal(t, "report.pdf", doc["title"])
	require.Equal(t, "application/pdf", doc["source"].(map[string]any)["media_type"])
	notes := last[3].(map[string]any)
	require.Equal(t, "text", notes["type"])
	require.Contains(t, notes["text"], "notes.md")

	raw, err := json.Marshal(prompt.Messages)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "message_id")

	_, err = adapter.ProcessMessages([]domain.Message{{Role: domain.RoleSystem, Content: "x"}}, nil, nil)
	require.Error(t, err)
}

func sseServer(t *testing.T, check func(r *http.Request, body map[string]any), events ...string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		if check != nil {
			check(r, body)
		}

		w.Header().Set("Content-Type", "text/event-stream")
		for _, e := range events {
			var line bytes.Buffer
			if err := json.Compact(&line, []byte(e)); err != nil {
				panic(err)
			}
			var head struct {
				Type string `json:"type"`
			}
			_ = json.Unmarshal(line.Bytes(), &head)
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", head.Type, line.String())
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func drain(t *testing.T, adapter *claude.Adapter, stream domain.ChunkStream) *recorder {
	t.Helper()
	rec := &recorder{}
	cb := rec.callbacks()
	for stream.Next() {
		adapter.HandleStreamChunk(stream.Current(), cb)
	}
	require.NoError(t, stream.Close())
	return rec
}

func TestAdapter_Stream(t *testing.T) {
	var (
		gotPath    string
		gotHeaders http.Header
		gotBody    map[string]any
	)
	srv := sseServer(t, func(r *http.Request, body map[string]any) {
		gotPath = r.URL.Path
		gotHeaders = r.Header.Clone()
		gotBody = body
	},
		`{"type":"message_start","message":{"id":"msg_01","model":"claude-sonnet-4-20250514",
			"usage":{"input_tokens":20,"cache_read_input_tokens":5,"output_tokens":1}}}`,
		`{"type":"content_block_start","index":0,"content_block":{"type":"thinking","thinking":""}}`,
		`{"type":"content_block_delta","index":0,"delta":{"type":"thinking_delta","thinking":"Checking."}}`,
		`{"type":"ping"}`,
		`{"type":"content_block_delta","index":1,"delta":{"type":"text_delta","text":"Hello"}}`,
		`{"type":"content_block_delta","index":1,"delta":{"type":"text_delta","text":" there"}}`,
		`{"type":"message_delta","delta":{"stop_reason":"end_turn"},"usage":{"output_tokens":42}}`,
		`{"type":"message_stop"}`,
	)

	adapter, err := claude.NewAdapter(claude.Config{APIKey: "secret", BaseURL: srv.URL + "/", Version: "2023-06-01"})
	require.NoError(t, err)

	prompt, err := adapter.ProcessMessages([]domain.Message{
		{Role: domain.RoleSystem, Content: "be brief"},
		{Role: domain.RoleUser, Content: "hi"},
	}, nil, nil)
	require.NoError(t, err)

	stream, err := adapter.CreateCompletionStream(context.Background(), &domain.StreamRequest{
		Model:            modelByName(t, sonnet),
		Prompt:           prompt,
		ReasoningEnabled: true,
	})
	require.NoError(t, err)

	rec := drain(t, adapter, stream)
	require.NoError(t, stream.Err())

	require.Equal(t, "/v1/messages", gotPath)
	require.Equal(t, "secret", gotHeaders.Get("x-api-key"))
	require.Equal(t, "2023-06-01", gotHeaders.Get("anthropic-version"))
	require.Equal(t, true, gotBody["stream"])
	require.Equal(t, sonnet, gotBody["model"])
	require.Equal(t, []any{map[string]any{"type": "text", "text": "be brief"}}, gotBody["system"])
	require.EqualValues(t, 8192+claude.ThinkingBudget, gotBody["max_tokens"])
	require.Equal(t, map[string]any{"type": "enabled", "budget_tokens": float64(claude.ThinkingBudget)}, gotBody["thinking"])

	require.Equal(t, []string{"msg_01"}, rec.starts)
	require.Equal(t, "Checking.", rec.reasoning)
	require.Equal(t, "Hello there", rec.content)
	require.Equal(t, domain.Usage{PromptTokens: 25, CompletionTokens: 42, TotalTokens: 67}, rec.usage)
	require.NotNil(t, rec.prices)
	require.InDelta(t, 3.0/1_000_000, rec.prices.InputPrice, 1e-15)
}

func TestAdapter_ThinkingIgnoredWithoutSupport(t *testing.T) {
	var gotBody map[string]any
	srv := sseServer(t, func(_ *http.Request, body map[string]any) { gotBody = body },
		`{"type":"message_start","message":{"id":"msg_02","usage":{"input_tokens":3}}}`)

	adapter, err := claude.NewAdapter(claude.Config{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)
	prompt, err := adapter.ProcessMessages([]domain.Message{{Role: domain.RoleUser, Content: "hi"}}, nil, nil)
	require.NoError(t, err)

	stream, err := adapter.CreateCompletionStream(context.Background(), &domain.StreamRequest{
		Model:            modelByName(t, "claude-3-5-haiku-20241022"),
		Prompt:           prompt,
		ReasoningEnabled: true,
	})
	require.NoError(t, err)
	drain(t, adapter, stream)

	require.EqualValues(t, 8192, gotBody["max_tokens"])
	require.NotContains(t, gotBody, "thinking")
	require.NotContains(t, gotBody, "system")
}

func TestAdapter_StreamErrorEvent(t *testing.T) {
	srv := sseServer(t, nil,
		`{"type":"message_start","message":{"id":"msg_03"}}`,
		`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"par"}}`,
		`{"type":"error","error":{"type":"overloaded_error","message":"Overloaded"}}`,
	)

	adapter, err := claude.NewAdapter(claude.Config{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)
	prompt, err := adapter.ProcessMessages([]domain.Message{{Role: domain.RoleUser, Content: "hi"}}, nil, nil)
	require.NoError(t, err)

	stream, err := adapter.CreateCompletionStream(context.Background(), &domain.StreamRequest{
		Model: modelByName(t, sonnet), Prompt: prompt,
	})
	require.NoError(t, err)

	rec := drain(t, adapter, stream)
	require.Equal(t, "par", rec.content)
	require.ErrorContains(t, stream.Err(), "Overloaded")
}

func TestAdapter_OpenFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	t.Cleanup(srv.Close)

	adapter, err := claude.NewAdapter(claude.Config{APIKey: "bad", BaseURL: srv.URL})
	require.NoError(t, err)
	prompt, err := adapter.ProcessMessages([]domain.Message{{Role: domain.RoleUser, Content: "hi"}}, nil, nil)
	require.NoError(t, err)

	_, err = adapter.CreateCompletionStream(context.Background(), &domain.StreamRequest{
		Model: modelByName(t, sonnet), Prompt: prompt,
	})
	require.ErrorContains(t, err, "authentication_error")
	require.ErrorContains(t, err, "invalid x-api-key")

	_, err = adapter.CreateCompletionStream(context.Background(), nil)
	require.Error(t, err)
}

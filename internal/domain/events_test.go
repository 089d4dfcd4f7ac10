package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lutia-ai/lutia/internal/domain"
)

func TestEvent_MarshalJSON(t *testing.T) {
	tests := []struct {
		event    domain.Event
		expected string
	}{
		{
			event:    domain.RequestInfoEvent("req-1", "abc-123"),
			expected: `{"type":"request_info","request_id":"req-1","conversation_id":"abc-123"}`,
		},
		{
			event:    domain.UsageEvent(domain.Cost{Input: 0.5, Output: 0.25}),
			expected: `{"type":"usage","usage":{"inputPrice":0.5,"outputPrice":0.25}}`,
		},
		{
			event:    domain.TextEvent("Hello"),
			expected: `{"type":"text","content":"Hello"}`,
		},
		{
			event:    domain.ReasoningEvent("hmm"),
			expected: `{"type":"reasoning","content":"hmm"}`,
		},
		{
			event:    domain.ErrorEvent("boom"),
			expected: `{"type":"error","message":"boom"}`,
		},
		{
			event:    domain.MessageIDEvent(42),
			expected: `{"type":"message_id","message_id":42}`,
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.event.Type), func(t *testing.T) {
			data, err := json.Marshal(tt.event)
			require.NoError(t, err)
			require.JSONEq(t, tt.expected, string(data))
		})
	}

	_, err := json.Marshal(domain.Event{Type: "bogus"})
	require.Error(t, err)
}

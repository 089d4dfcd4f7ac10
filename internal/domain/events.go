package domain

import (
	"encoding/json"
	"fmt"
)

// EventType discriminates outbound stream events.
type EventType string

// Outbound event types.
const (
	EventRequestInfo EventType = "request_info"
	EventUsage       EventType = "usage"
	EventText        EventType = "text"
	EventReasoning   EventType = "reasoning"
	EventError       EventType = "error"
	EventMessageID   EventType = "message_id"
)

// UsagePayload is the payload of a usage event.
type UsagePayload struct {
	InputPrice  float64 `json:"inputPrice"`
	OutputPrice float64 `json:"outputPrice"`
}

// Event is one line of the outbound event stream.
type Event struct {
	Type           EventType
	RequestID      string
	ConversationID string
	Usage          UsagePayload
	Content        string
	Message        string
	MessageID      int64
}

// RequestInfoEvent announces the request and the conversation it belongs to.
func RequestInfoEvent(requestID, conversationID string) Event {
	return Event{Type: EventRequestInfo, RequestID: requestID, ConversationID: conversationID}
}

// UsageEvent reports the cost accumulated so far.
func UsageEvent(cost Cost) Event {
	return Event{Type: EventUsage, Usage: UsagePayload{InputPrice: cost.Input, OutputPrice: cost.Output}}
}

// TextEvent forwards a content delta.
func TextEvent(content string) Event {
	return Event{Type: EventText, Content: content}
}

// ReasoningEvent forwards a reasoning delta.
func ReasoningEvent(content string) Event {
	return Event{Type: EventReasoning, Content: content}
}

// ErrorEvent reports a mid-stream failure.
func ErrorEvent(message string) Event {
	return Event{Type: EventError, Message: message}
}

// MessageIDEvent carries the id of the persisted assistant message.
func MessageIDEvent(messageID int64) Event {
	return Event{Type: EventMessageID, MessageID: messageID}
}

// MarshalJSON renders the type-specific wire shape of the event.
func (e Event) MarshalJSON() ([]byte, error) {
	switch e.Type {
	case EventRequestInfo:
		return json.Marshal(struct {
			Type           EventType `json:"type"`
			RequestID      string    `json:"request_id"`
			ConversationID string    `json:"conversation_id"`
		}{e.Type, e.RequestID, e.ConversationID})
	case EventUsage:
		return json.Marshal(struct {
			Type  EventType    `json:"type"`
			Usage UsagePayload `json:"usage"`
		}{e.Type, e.Usage})
	case EventText, EventReasoning:
		return json.Marshal(struct {
			Type    EventType `json:"type"`
			Content string    `json:"content"`
		}{e.Type, e.Content})
	case EventError:
		return json.Marshal(struct {
			Type    EventType `json:"type"`
			Message string    `json:"message"`
		}{e.Type, e.Message})
	case EventMessageID:
		return json.Marshal(struct {
			Type      EventType `json:"type"`
			MessageID int64     `json:"message_id"`
		}{e.Type, e.MessageID})
	default:
		return nil, fmt.Errorf("unknown event type %q", e.Type)
	}
}

// EventWriter delivers events to the client.
type EventWriter interface {
	// WriteEvent sends one event. An error means the client is gone.
	WriteEvent(event Event) error

	// Close ends the stream. Closing twice is not an error.
	Close() error
}

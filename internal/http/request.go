package http

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lutia-ai/lutia/internal/domain"
)

// chatRequestBody is the inbound body of POST /v1/chat/stream.
type chatRequestBody struct {
	Provider            string         `json:"provider"`
	Model               string         `json:"model"`
	Messages            []messageBody  `json:"messages"`
	Images              []domain.Image `json:"images"`
	Files               []domain.File  `json:"files"`
	Reasoning           bool           `json:"reasoning"`
	ConversationID      string         `json:"conversation_id"`
	RegenerateMessageID *int64         `json:"regenerate_message_id"`
}

// messageBody accepts content as either a string or an array of parts.
type messageBody struct {
	Role      string          `json:"role"`
	Content   json.RawMessage `json:"content"`
	MessageID *int64          `json:"message_id"`
}

func (b *chatRequestBody) toInput() (*domain.ChatInput, error) {
	messages := make([]domain.Message, 0, len(b.Messages))
	for i, m := range b.Messages {
		msg, err := m.toMessage()
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
		messages = append(messages, msg)
	}

	return &domain.ChatInput{
		Provider:            b.Provider,
		Model:               b.Model,
		Messages:            messages,
		Images:              b.Images,
		Files:               b.Files,
		Reasoning:           b.Reasoning,
		ConversationID:      b.ConversationID,
		RegenerateMessageID: b.RegenerateMessageID,
	}, nil
}

func (m messageBody) toMessage() (domain.Message, error) {
	msg := domain.Message{Role: m.Role, MessageID: m.MessageID}
	if len(m.Content) == 0 || string(m.Content) == "null" {
		return msg, nil
	}

	switch m.Content[0] {
	case '"':
		if err := json.Unmarshal(m.Content, &msg.Content); err != nil {
			return msg, err
		}
	case '[':
		if err := json.Unmarshal(m.Content, &msg.Parts); err != nil {
			return msg, err
		}
	default:
		return msg, errors.New("content must be a string or an array of parts")
	}
	return msg, nil
}

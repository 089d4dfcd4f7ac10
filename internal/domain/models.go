package domain

import (
	"strings"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
	RoleDeveloper = "developer"
)

// NewConversationID is the sentinel a client sends when starting a conversation.
const NewConversationID = "new"

// ContentPartType discriminates the structured content of a message.
type ContentPartType string

// Content part types.
const (
	PartText  ContentPartType = "text"
	PartImage ContentPartType = "image"
	PartFile  ContentPartType = "file"
)

// ContentPart is one element of structured message content.
type ContentPart struct {
	Type  ContentPartType `json:"type"`
	Text  string          `json:"text,omitempty"`
	Image *Image          `json:"image,omitempty"`
	File  *File           `json:"file,omitempty"`
}

// Message represents a chat message.
type Message struct {
	Role    string        `json:"role"` // user, assistant, system, developer
	Content string        `json:"content,omitempty"`
	Parts   []ContentPart `json:"parts,omitempty"`

	// MessageID references a persisted record. It never leaves the process.
	MessageID *int64 `json:"message_id,omitempty"`
}

// Text returns the plain text of the message, joining text parts after Content.
func (m Message) Text() string {
	if len(m.Parts) == 0 {
		return m.Content
	}

	var b strings.Builder
	b.WriteString(m.Content)
	for _, part := range m.Parts {
		if part.Type != PartText || part.Text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(part.Text)
	}
	return b.String()
}

// IsEmpty reports whether the message carries neither text nor attachments.
func (m Message) IsEmpty() bool {
	if strings.TrimSpace(m.Content) != "" {
		return false
	}
	for _, part := range m.Parts {
		switch part.Type {
		case PartText:
			if strings.TrimSpace(part.Text) != "" {
				return false
			}
		case PartImage:
			if part.Image != nil {
				return false
			}
		case PartFile:
			if part.File != nil {
				return false
			}
		}
	}
	return true
}

// Image is an inline image attachment.
type Image struct {
	MediaType string `json:"media_type"`
	Data      string `json:"data"` // base64, no data URL prefix
}

// DataURL renders the image as a base64 data URL.
func (i Image) DataURL() string {
	return "data:" + i.MediaType + ";base64," + i.Data
}

// File is a document attachment. Text documents carry Content; binary
// documents (PDF) carry base64 Data.
type File struct {
	Name      string `json:"name"`
	MediaType string `json:"media_type"`
	Content   string `json:"content,omitempty"`
	Data      string `json:"data,omitempty"`
}

// IsPDF reports whether the file is a PDF document.
func (f File) IsPDF() bool {
	return f.MediaType == "application/pdf"
}

// AsText renders a text document as a fenced block suitable for a prompt.
func (f File) AsText() string {
	return "File: " + f.Name + "\n```\n" + f.Content + "\n```"
}

// StripMessageIDs returns a copy of messages without internal record ids.
func StripMessageIDs(messages []Message) []Message {
	stripped := make([]Message, len(messages))
	for i, msg := range messages {
		msg.MessageID = nil
		if len(msg.Parts) > 0 {
			msg.Parts = append([]ContentPart(nil), msg.Parts...)
		}
		stripped[i] = msg
	}
	return stripped
}

// LastUserIndex returns the index of the last user message or -1.
func LastUserIndex(messages []Message) int {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleUser {
			return i
		}
	}
	return -1
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
	ThinkingTokens   int `json:"thinking_tokens,omitempty"`
}

// Merge applies a newer usage report. Vendors send partial counts, so only
// the fields present (positive) in next overwrite the current values.
func (u Usage) Merge(next Usage) Usage {
	if next.PromptTokens > 0 {
		u.PromptTokens = next.PromptTokens
	}
	if next.CompletionTokens > 0 {
		u.CompletionTokens = next.CompletionTokens
	}
	if next.ThinkingTokens > 0 {
		u.ThinkingTokens = next.ThinkingTokens
	}
	if next.TotalTokens > 0 {
		u.TotalTokens = next.TotalTokens
	}
	if sum := u.PromptTokens + u.CompletionTokens; u.TotalTokens < sum {
		u.TotalTokens = sum
	}
	return u
}

// PaymentTier selects how a user pays for usage.
type PaymentTier string

// Payment tiers.
const (
	PaymentTierPayAsYouGo   PaymentTier = "PAYG"
	PaymentTierSubscription PaymentTier = "SUBSCRIPTION"
)

// User is the account a request is billed to.
type User struct {
	ID                     int64       `json:"id"`
	Email                  string      `json:"email"`
	EmailVerified          bool        `json:"email_verified"`
	PaymentTier            PaymentTier `json:"payment_tier"`
	StripeSubscriptionItem string      `json:"-"`
}

// ChatInput is the raw, unvalidated chat request.
type ChatInput struct {
	Provider            string
	Model               string
	Messages            []Message
	Images              []Image
	Files               []File
	Reasoning           bool
	ConversationID      string
	RegenerateMessageID *int64
}

// ChatRequest is the validated request bundle consumed by the chat service.
type ChatRequest struct {
	User                   *User
	Provider               string
	Model                  ModelDescriptor
	Messages               []Message
	Images                 []Image
	Files                  []File
	ReasoningEnabled       bool
	OriginalConversationID string
	MessageConversationID  string
	RegenerateMessageID    *int64
	ReferencedMessageIDs   []int64
}

// IsNewConversation reports whether the request starts a conversation.
func (r *ChatRequest) IsNewConversation() bool {
	return r.OriginalConversationID == "" || r.OriginalConversationID == NewConversationID
}

// ConversationID returns the externally visible conversation id: the new id
// for a fresh conversation, the pre-existing one otherwise.
func (r *ChatRequest) ConversationID() string {
	if r.IsNewConversation() {
		return r.MessageConversationID
	}
	return r.OriginalConversationID
}

// PromptText returns the text of the last user message.
func (r *ChatRequest) PromptText() string {
	if idx := LastUserIndex(r.Messages); idx >= 0 {
		return r.Messages[idx].Text()
	}
	return ""
}

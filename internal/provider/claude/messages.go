package claude

import (
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/lutia-ai/lutia/internal/domain"
)

// Prompt is a conversation in the Messages API shape. System and developer
// messages are lifted into System.
type Prompt struct {
	System   string
	Messages []anthropic.MessageParam
}

// Provider returns the provider the prompt was built for.
func (p *Prompt) Provider() string { return ProviderName }

func imageBlock(img domain.Image) anthropic.ContentBlockParamUnion {
	return anthropic.NewImageBlockBase64(img.MediaType, img.Data)
}

func fileBlock(f domain.File) anthropic.ContentBlockParamUnion {
	if !f.IsPDF() {
		return anthropic.NewTextBlock(f.AsText())
	}
	block := anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{Data: f.Data})
	if f.Name != "" {
		block.OfDocument.Title = anthropic.String(f.Name)
	}
	return block
}

// buildPrompt converts messages. Consecutive turns of one role are merged
// because the API requires alternating roles, and the conversation may not
// open with an assistant turn. Attachments go on the last user turn.
func buildPrompt(messages []domain.Message, images []domain.Image, files []domain.File) (*Prompt, error) {
	var system []string
	turns := make([]anthropic.MessageParam, 0, len(messages))

	for _, msg := range messages {
		role := anthropic.MessageParamRoleUser
		switch msg.Role {
		case domain.RoleSystem, domain.RoleDeveloper:
			if text := strings.TrimSpace(msg.Text()); text != "" {
				system = append(system, text)
			}
			continue
		case domain.RoleAssistant:
			if len(turns) == 0 {
				continue
			}
			role = anthropic.MessageParamRoleAssistant
		}

		blocks := messageBlocks(msg)
		if len(blocks) == 0 {
			continue
		}

		if n := len(turns); n > 0 && turns[n-1].Role == role {
			turns[n-1].Content = append(turns[n-1].Content, blocks...)
			continue
		}
		turns = append(turns, anthropic.MessageParam{Role: role, Content: blocks})
	}

	last := -1
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role == anthropic.MessageParamRoleUser {
			last = i
			break
		}
	}
	if last < 0 {
		return nil, errors.New("conversation has no user message")
	}

	for _, img := range images {
		turns[last].Content = append(turns[last].Content, imageBlock(img))
	}
	for _, f := range files {
		turns[last].Content = append(turns[last].Content, fileBlock(f))
	}

	return &Prompt{System: strings.Join(system, "\n\n"), Messages: turns}, nil
}

func messageBlocks(msg domain.Message) []anthropic.ContentBlockParamUnion {
	var blocks []anthropic.ContentBlockParamUnion
	if strings.TrimSpace(msg.Content) != "" {
		blocks = append(blocks, anthropic.NewTextBlock(msg.Content))
	}
	for _, part := range msg.Parts {
		switch part.Type {
		case domain.PartText:
			if strings.TrimSpace(part.Text) != "" {
				blocks = append(blocks, anthropic.NewTextBlock(part.Text))
			}
		case domain.PartImage:
			if part.Image != nil {
				blocks = append(blocks, imageBlock(*part.Image))
			}
		case domain.PartFile:
			if part.File != nil {
				blocks = append(blocks, fileBlock(*part.File))
			}
		}
	}
	return blocks
}

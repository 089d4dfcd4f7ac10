package gemini

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/lutia-ai/lutia/internal/domain"
)

// Prompt is a conversation in the generateContent shape.
type Prompt struct {
	SystemInstruction *genai.Content
	Contents          []*genai.Content
}

// Provider returns the provider the prompt was built for.
func (p *Prompt) Provider() string { return ProviderName }

// inlinePart decodes a base64 attachment. The SDK re-encodes the bytes on
// the wire.
func inlinePart(mediaType, data string) (*genai.Part, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: attachment of type %s is not valid base64", domain.ErrInvalidRequest, mediaType)
	}
	return genai.NewPartFromBytes(raw, mediaType), nil
}

// buildPrompt converts messages. Assistant turns use the model role and
// consecutive turns of one role are merged. Only the first image is sent.
func buildPrompt(messages []domain.Message, images []domain.Image, files []domain.File) (*Prompt, error) {
	var system []*genai.Part
	contents := make([]*genai.Content, 0, len(messages))

	for _, msg := range messages {
		text := msg.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		role := genai.RoleUser
		switch msg.Role {
		case domain.RoleSystem, domain.RoleDeveloper:
			system = append(system, genai.NewPartFromText(text))
			continue
		case domain.RoleAssistant:
			role = genai.RoleModel
		}

		if n := len(contents); n > 0 && contents[n-1].Role == role {
			contents[n-1].Parts = append(contents[n-1].Parts, genai.NewPartFromText(text))
			continue
		}
		contents = append(contents, genai.NewContentFromText(text, genai.Role(role)))
	}

	last := -1
	for i := len(contents) - 1; i >= 0; i-- {
		if contents[i].Role == genai.RoleUser {
			last = i
			break
		}
	}
	if last < 0 {
		return nil, errors.New("conversation has no user message")
	}

	if len(images) > 0 {
		part, err := inlinePart(images[0].MediaType, images[0].Data)
		if err != nil {
			return nil, err
		}
		contents[last].Parts = append(contents[last].Parts, part)
	}
	for _, f := range files {
		part := genai.NewPartFromText(f.AsText())
		if f.IsPDF() {
			var err error
			if part, err = inlinePart(f.MediaType, f.Data); err != nil {
				return nil, err
			}
		}
		contents[last].Parts = append(contents[last].Parts, part)
	}

	prompt := &Prompt{Contents: contents}
	if len(system) > 0 {
		prompt.SystemInstruction = &genai.Content{Parts: system}
	}
	return prompt, nil
}

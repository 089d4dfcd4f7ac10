package openaicompat

import (
	"fmt"

	"github.com/openai/openai-go"

	"github.com/lutia-ai/lutia/internal/domain"
)

// Prompt is the OpenAI-shaped message list of one request.
type Prompt struct {
	provider string
	Messages []openai.ChatCompletionMessageParamUnion
}

// Provider returns the adapter that built the prompt.
func (p *Prompt) Provider() string { return p.provider }

// BuildOptions selects vendor differences in message building.
type BuildOptions struct {
	// DeveloperRole keeps developer messages. Otherwise they are sent as system messages.
	DeveloperRole bool

	// InlinePDF sends PDF attachments as file parts. Otherwise PDFs are rejected.
	InlinePDF bool
}

// BuildMessages converts domain messages. Images and files are attached to the
// last user message as content parts.
func BuildMessages(
	provider string,
	messages []domain.Message,
	images []domain.Image,
	files []domain.File,
	opts BuildOptions,
) (*Prompt, error) {
	last := domain.LastUserIndex(messages)
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))

	for i, msg := range messages {
		switch msg.Role {
		case domain.RoleAssistant:
			out = append(out, openai.AssistantMessage(msg.Text()))
		case domain.RoleSystem:
			out = append(out, openai.SystemMessage(msg.Text()))
		case domain.RoleDeveloper:
			if opts.DeveloperRole {
				out = append(out, openai.DeveloperMessage(msg.Text()))
			} else {
				out = append(out, openai.SystemMessage(msg.Text()))
			}
		default:
			var attachedImages []domain.Image
			var attachedFiles []domain.File
			if i == last {
				attachedImages, attachedFiles = images, files
			}
			user, err := userMessage(provider, msg, attachedImages, attachedFiles, opts)
			if err != nil {
				return nil, err
			}
			out = append(out, user)
		}
	}

	return &Prompt{provider: provider, Messages: out}, nil
}

func userMessage(
	provider string,
	msg domain.Message,
	images []domain.Image,
	files []domain.File,
	opts BuildOptions,
) (openai.ChatCompletionMessageParamUnion, error) {
	if len(msg.Parts) == 0 && len(images) == 0 && len(files) == 0 {
		return openai.UserMessage(msg.Content), nil
	}

	parts := make([]openai.ChatCompletionContentPartUnionParam, 0, 1+len(msg.Parts)+len(images)+len(files))
	if msg.Content != "" {
		parts = append(parts, openai.TextContentPart(msg.Content))
	}

	for _, part := range msg.Parts {
		switch {
		case part.Type == domain.PartText && part.Text != "":
			parts = append(parts, openai.TextContentPart(part.Text))
		case part.Type == domain.PartImage && part.Image != nil:
			parts = append(parts, imagePart(*part.Image))
		case part.Type == domain.PartFile && part.File != nil:
			p, err := filePart(provider, *part.File, opts)
			if err != nil {
				return openai.ChatCompletionMessageParamUnion{}, err
			}
			parts = append(parts, p)
		}
	}

	for _, img := range images {
		parts = append(parts, imagePart(img))
	}
	for _, f := range files {
		p, err := filePart(provider, f, opts)
		if err != nil {
			return openai.ChatCompletionMessageParamUnion{}, err
		}
		parts = append(parts, p)
	}

	return openai.UserMessage(parts), nil
}

func imagePart(img domain.Image) openai.ChatCompletionContentPartUnionParam {
	return openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
		URL: img.DataURL(),
	})
}

func filePart(provider string, f domain.File, opts BuildOptions) (openai.ChatCompletionContentPartUnionParam, error) {
	if !f.IsPDF() {
		return openai.TextContentPart(f.AsText()), nil
	}
	if !opts.InlinePDF {
		return openai.ChatCompletionContentPartUnionParam{}, fmt.Errorf("%s does not accept pdf attachments", provider)
	}
	return openai.FileContentPart(openai.ChatCompletionContentPartFileFileParam{
		FileData: openai.String("data:" + f.MediaType + ";base64," + f.Data),
		Filename: openai.String(f.Name),
	}), nil
}

// PromptFrom asserts that p was built by BuildMessages for provider.
func PromptFrom(p domain.Prompt, provider string) (*Prompt, error) {
	prompt, ok := p.(*Prompt)
	if !ok || prompt == nil {
		return nil, fmt.Errorf("unexpected prompt type %T", p)
	}
	if prompt.provider != provider {
		return nil, fmt.Errorf("prompt built for %s, not %s", prompt.provider, provider)
	}
	return prompt, nil
}

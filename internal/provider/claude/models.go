package claude

import "github.com/lutia-ai/lutia/internal/domain"

// Models returns the static descriptors of the Claude models.
func Models() []domain.ModelDescriptor {
	return []domain.ModelDescriptor{
		{
			Name: "claude-opus-4-20250514", Provider: ProviderName, DisplayName: "Claude Opus 4",
			InputPricePerMillion: 15, OutputPricePerMillion: 75,
			ContextWindow: 200000, MaxOutputTokens: 8192,
			SupportsImages: true, SupportsFiles: true, ExtendedThinking: true,
		},
		{
			Name: "claude-sonnet-4-20250514", Provider: ProviderName, DisplayName: "Claude Sonnet 4",
			InputPricePerMillion: 3, OutputPricePerMillion: 15,
			ContextWindow: 200000, MaxOutputTokens: 8192,
			SupportsImages: true, SupportsFiles: true, ExtendedThinking: true,
		},
		{
			Name: "claude-3-7-sonnet-20250219", Provider: ProviderName, DisplayName: "Claude 3.7 Sonnet",
			InputPricePerMillion: 3, OutputPricePerMillion: 15,
			ContextWindow: 200000, MaxOutputTokens: 8192,
			SupportsImages: true, SupportsFiles: true, ExtendedThinking: true,
		},
		{
			Name: "claude-3-5-haiku-20241022", Provider: ProviderName, DisplayName: "Claude 3.5 Haiku",
			InputPricePerMillion: 0.8, OutputPricePerMillion: 4,
			ContextWindow: 200000, MaxOutputTokens: 8192,
			SupportsImages: true, SupportsFiles: true,
		},
	}
}

package openai

import "github.com/lutia-ai/lutia/internal/domain"

// Models returns the static descriptors of the OpenAI models.
func Models() []domain.ModelDescriptor {
	return []domain.ModelDescriptor{
		{
			Name: "gpt-4o", Provider: ProviderName, DisplayName: "GPT-4o",
			InputPricePerMillion: 2.5, OutputPricePerMillion: 10,
			ContextWindow: 128000, MaxOutputTokens: 16384,
			SupportsImages: true, SupportsFiles: true,
		},
		{
			Name: "gpt-4o-mini", Provider: ProviderName, DisplayName: "GPT-4o mini",
			InputPricePerMillion: 0.15, OutputPricePerMillion: 0.6,
			ContextWindow: 128000, MaxOutputTokens: 16384,
			SupportsImages: true, SupportsFiles: true,
		},
		{
			Name: "gpt-4.1", Provider: ProviderName, DisplayName: "GPT-4.1",
			InputPricePerMillion: 2, OutputPricePerMillion: 8,
			ContextWindow: 1047576, MaxOutputTokens: 32768,
			SupportsImages: true, SupportsFiles: true,
		},
		{
			Name: "o3-mini", Provider: ProviderName, DisplayName: "o3-mini",
			InputPricePerMillion: 1.1, OutputPricePerMillion: 4.4,
			ContextWindow: 200000, MaxOutputTokens: 100000,
			SupportsFiles: true, Reasons: true,
		},
		{
			Name: "o4-mini", Provider: ProviderName, DisplayName: "o4-mini",
			InputPricePerMillion: 1.1, OutputPricePerMillion: 4.4,
			ContextWindow: 200000, MaxOutputTokens: 100000,
			SupportsImages: true, SupportsFiles: true, Reasons: true,
		},
	}
}

package xai

import "github.com/lutia-ai/lutia/internal/domain"

// Models returns the static descriptors of the xAI models.
func Models() []domain.ModelDescriptor {
	return []domain.ModelDescriptor{
		{
			Name: "grok-3", Provider: ProviderName, DisplayName: "Grok 3",
			InputPricePerMillion: 3, OutputPricePerMillion: 15,
			ContextWindow: 131072, MaxOutputTokens: 16384,
			SupportsFiles: true,
		},
		{
			Name: "grok-3-mini", Provider: ProviderName, DisplayName: "Grok 3 Mini",
			InputPricePerMillion: 0.3, OutputPricePerMillion: 0.5,
			ContextWindow: 131072, MaxOutputTokens: 16384,
			SupportsFiles: true, Reasons: true,
		},
		{
			Name: "grok-2-vision-1212", Provider: ProviderName, DisplayName: "Grok 2 Vision",
			InputPricePerMillion: 2, OutputPricePerMillion: 10,
			ContextWindow: 32768, MaxOutputTokens: 8192,
			SupportsImages: true,
		},
	}
}

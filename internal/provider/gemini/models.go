package gemini

import "github.com/lutia-ai/lutia/internal/domain"

// Models returns the static descriptors of the Gemini models.
func Models() []domain.ModelDescriptor {
	return []domain.ModelDescriptor{
		{
			Name: "gemini-2.5-pro", Provider: ProviderName, DisplayName: "Gemini 2.5 Pro",
			InputPricePerMillion: 1.25, OutputPricePerMillion: 10,
			ContextWindow: 1048576, MaxOutputTokens: 65536,
			SupportsImages: true, SupportsFiles: true, Reasons: true,
		},
		{
			Name: "gemini-2.5-flash", Provider: ProviderName, DisplayName: "Gemini 2.5 Flash",
			InputPricePerMillion: 0.3, OutputPricePerMillion: 2.5,
			ContextWindow: 1048576, MaxOutputTokens: 65536,
			SupportsImages: true, SupportsFiles: true, Reasons: true,
		},
		{
			Name: "gemini-2.0-flash", Provider: ProviderName, DisplayName: "Gemini 2.0 Flash",
			InputPricePerMillion: 0.1, OutputPricePerMillion: 0.4,
			ContextWindow: 1048576, MaxOutputTokens: 8192,
			SupportsImages: true, SupportsFiles: true,
		},
	}
}

package deepseek

import "github.com/lutia-ai/lutia/internal/domain"

// Models returns the static descriptors of the DeepSeek models.
func Models() []domain.ModelDescriptor {
	return []domain.ModelDescriptor{
		{
			Name: "deepseek-chat", Provider: ProviderName, DisplayName: "DeepSeek V3",
			InputPricePerMillion: 0.27, OutputPricePerMillion: 1.1,
			ContextWindow: 64000, MaxOutputTokens: 8192,
			SupportsFiles: true,
		},
		{
			Name: "deepseek-reasoner", Provider: ProviderName, DisplayName: "DeepSeek R1",
			InputPricePerMillion: 0.55, OutputPricePerMillion: 2.19,
			ContextWindow: 64000, MaxOutputTokens: 32768,
			SupportsFiles: true, Reasons: true,
		},
	}
}

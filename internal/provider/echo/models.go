package echo

import "github.com/lutia-ai/lutia/internal/domain"

// Models returns the descriptor of the echo model. It is priced at a nominal
// rate so development traffic still exercises billing.
func Models() []domain.ModelDescriptor {
	return []domain.ModelDescriptor{
		{
			Name: modelName, Provider: ProviderName, DisplayName: "Echo",
			InputPricePerMillion: 0.01, OutputPricePerMillion: 0.01,
			ContextWindow: 8192, MaxOutputTokens: 8192,
			SupportsImages: true, SupportsFiles: true, Reasons: true,
		},
	}
}

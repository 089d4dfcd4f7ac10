package domain

import "math"

// Cost is the USD amount billed for a usage report.
type Cost struct {
	Input  float64 `json:"input"`
	Output float64 `json:"output"`
	Total  float64 `json:"total"`
}

// CalculateCost computes the cost of usage at the given per-token prices.
// Every product is clamped so the result is never NaN, infinite or negative.
func CalculateCost(usage Usage, prices Prices) Cost {
	input := clampAmount(float64(usage.PromptTokens) * prices.InputPrice)
	output := clampAmount(float64(usage.CompletionTokens) * prices.OutputPrice)

	return Cost{
		Input:  input,
		Output: output,
		Total:  clampAmount(input + output),
	}
}

// IsBillable reports whether the amount is a positive finite number.
func IsBillable(amount float64) bool {
	return amount > 0 && !math.IsNaN(amount) && !math.IsInf(amount, 0)
}

func clampAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

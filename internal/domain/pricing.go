package domain

import "math"

const tokensPerMillion = 1_000_000.0

// Fallback per-token prices used when neither the vendor nor the model
// descriptor supplies one.
const (
	DefaultInputPrice  = 0.00001
	DefaultOutputPrice = 0.00005
)

// Prices holds USD prices per token.
type Prices struct {
	InputPrice  float64 `json:"input_price"`
	OutputPrice float64 `json:"output_price"`
}

// DefaultPrices returns the built-in fallback prices.
func DefaultPrices() Prices {
	return Prices{
		InputPrice:  DefaultInputPrice,
		OutputPrice: DefaultOutputPrice,
	}
}

// Merge overlays over onto p. A field is taken from over only when it is a
// positive finite number, so partial or missing overrides keep p's values.
func (p Prices) Merge(over *Prices) Prices {
	if over == nil {
		return p
	}
	if validPrice(over.InputPrice) {
		p.InputPrice = over.InputPrice
	}
	if validPrice(over.OutputPrice) {
		p.OutputPrice = over.OutputPrice
	}
	return p
}

// Sanitize replaces unusable fields with the fallback prices.
func (p Prices) Sanitize() Prices {
	return DefaultPrices().Merge(&p)
}

func validPrice(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// PerTokenFromMillion converts a per-million-token price to per token.
func PerTokenFromMillion(perMillion float64) float64 {
	return perMillion / tokensPerMillion
}

// Package provider holds helpers shared by the vendor adapters.
package provider

import (
	"errors"
	"net/http"
	"time"

	"github.com/lutia-ai/lutia/internal/domain"
)

// ErrNotConfigured is returned by adapter constructors when the vendor has no
// credentials. Such adapters are left out of the registry.
var ErrNotConfigured = errors.New("provider not configured")

// PriceTable indexes the per-token prices of models by name. Models without a
// known price are left out.
func PriceTable(models []domain.ModelDescriptor) map[string]domain.Prices {
	table := make(map[string]domain.Prices, len(models))
	for _, m := range models {
		prices := m.Prices()
		if prices.InputPrice <= 0 && prices.OutputPrice <= 0 {
			continue
		}
		table[m.Name] = prices
	}
	return table
}

// PricesFor returns the vendor prices of model, or nil when unknown.
func PricesFor(table map[string]domain.Prices, model string) *domain.Prices {
	prices, ok := table[model]
	if !ok {
		return nil
	}
	return &prices
}

// NewHTTPClient returns a client whose timeout covers the wait for response
// headers only, so long streams are not cut off.
func NewHTTPClient(headerTimeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = headerTimeout
	return &http.Client{Transport: transport}
}

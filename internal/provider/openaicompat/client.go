// Package openaicompat implements the parts shared by vendors that speak the
// OpenAI chat completions protocol (OpenAI, DeepSeek and xAI).
package openaicompat

import (
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/lutia-ai/lutia/internal/provider"
)

// ClientConfig contains the SDK settings shared by compatible vendors.
//   - APIKey: maps to option.WithAPIKey()
//   - BaseURL: maps to option.WithBaseURL()
//   - Timeout: time to wait for response headers, in seconds
type ClientConfig struct {
	APIKey  string
	BaseURL string
	Timeout int
}

// NewClient creates an SDK client that never retries. A dropped vendor
// connection is terminal for the request.
func NewClient(cfg ClientConfig) openai.Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}

	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	if cfg.Timeout > 0 {
		opts = append(opts, option.WithHTTPClient(provider.NewHTTPClient(time.Duration(cfg.Timeout)*time.Second)))
	}

	return openai.NewClient(opts...)
}

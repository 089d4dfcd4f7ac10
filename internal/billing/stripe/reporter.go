// Package stripe meters subscription usage through Stripe usage records.
package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"

	"github.com/lutia-ai/lutia/internal/domain"
	"github.com/lutia-ai/lutia/internal/observability"
)

// ErrNotConfigured is returned when no Stripe API key is set.
var ErrNotConfigured = errors.New("stripe not configured")

// Config contains Stripe settings. BaseURL overrides the API endpoint.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// UsageReporter implements domain.UsageReporter.
type UsageReporter struct {
	api *client.API
	now func() time.Time
}

// NewUsageReporter creates a Stripe usage reporter. Stripe retries are off.
func NewUsageReporter(config Config) (*UsageReporter, error) {
	if config.APIKey == "" {
		return nil, ErrNotConfigured
	}

	backendConfig := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
	}
	if config.BaseURL != "" {
		backendConfig.URL = stripe.String(config.BaseURL)
	}
	if config.Timeout > 0 {
		backendConfig.HTTPClient = &http.Client{Timeout: config.Timeout}
	}

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig)
	api := &client.API{}
	api.Init(config.APIKey, &stripe.Backends{API: backend, Connect: backend, Uploads: backend})

	return &UsageReporter{api: api, now: time.Now}, nil
}

// ReportUsage adds the total tokens of usage to the user's subscription item.
// Users without a subscription item are skipped.
func (r *UsageReporter) ReportUsage(ctx context.Context, user *domain.User, usage domain.Usage, idempotencyKey string) error {
	logger := observability.FromContext(ctx)

	if user == nil || user.StripeSubscriptionItem == "" {
		logger.Debug("no subscription item, skipping usage record")
		return nil
	}

	quantity := int64(usage.TotalTokens)
	if sum := int64(usage.PromptTokens + usage.CompletionTokens); quantity < sum {
		quantity = sum
	}
	if quantity <= 0 {
		return nil
	}

	params := &stripe.UsageRecordParams{
		SubscriptionItem: stripe.String(user.StripeSubscriptionItem),
		Quantity:         stripe.Int64(quantity),
		Timestamp:        stripe.Int64(r.now().Unix()),
		Action:           stripe.String(string(stripe.UsageRecordActionIncrement)),
	}
	params.Context = ctx
	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey)
	}

	record, err := r.api.UsageRecords.New(params)
	if err != nil {
		return fmt.Errorf("failed to create usage record: %w", err)
	}

	logger.Debug("usage record created",
		observability.String("usage_record", record.ID),
		observability.Int64("quantity", quantity))

	return nil
}

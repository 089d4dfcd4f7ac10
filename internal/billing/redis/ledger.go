// Package redis keeps prepaid balances in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lutia-ai/lutia/internal/observability"
)

const (
	defaultKeyPrefix = "lutia"
	defaultMarkerTTL = 7 * 24 * time.Hour
)

// deductScript subtracts ARGV[1] from the balance unless the idempotency
// marker already exists. It returns the balance after the call.
var deductScript = redis.NewScript(`
if redis.call('SET', KEYS[2], '1', 'NX', 'EX', ARGV[2]) then
	return redis.call('INCRBYFLOAT', KEYS[1], ARGV[1])
end
return redis.call('GET', KEYS[1]) or '0'
`)

// LedgerConfig contains balance ledger settings.
type LedgerConfig struct {
	KeyPrefix string
	MarkerTTL time.Duration
}

// Ledger implements domain.Ledger. Balances are USD amounts stored as floats.
type Ledger struct {
	client    redis.UniversalClient
	keyPrefix string
	markerTTL time.Duration
}

// NewLedger creates a ledger on client.
func NewLedger(client redis.UniversalClient, config LedgerConfig) (*Ledger, error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	l := &Ledger{
		client:    client,
		keyPrefix: config.KeyPrefix,
		markerTTL: config.MarkerTTL,
	}
	if l.keyPrefix == "" {
		l.keyPrefix = defaultKeyPrefix
	}
	if l.markerTTL <= 0 {
		l.markerTTL = defaultMarkerTTL
	}
	return l, nil
}

func (l *Ledger) balanceKey(userID int64) string {
	return fmt.Sprintf("%s:balance:%d", l.keyPrefix, userID)
}

func (l *Ledger) markerKey(idempotencyKey string) string {
	return fmt.Sprintf("%s:deduct:%s", l.keyPrefix, idempotencyKey)
}

// Balance returns the balance of userID. A user without a balance has zero.
func (l *Ledger) Balance(ctx context.Context, userID int64) (float64, error) {
	balance, err := l.client.Get(ctx, l.balanceKey(userID)).Float64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read balance: %w", err)
	}
	return balance, nil
}

// Deduct subtracts amount from the balance of userID once per idempotency
// key. Replays return the current balance without deducting again.
func (l *Ledger) Deduct(ctx context.Context, userID int64, amount float64, idempotencyKey string) (float64, error) {
	if idempotencyKey == "" {
		return 0, errors.New("idempotency key is required")
	}
	if amount < 0 {
		return 0, fmt.Errorf("invalid deduction amount %f", amount)
	}

	res, err := deductScript.Run(ctx, l.client,
		[]string{l.balanceKey(userID), l.markerKey(idempotencyKey)},
		strconv.FormatFloat(-amount, 'f', -1, 64),
		int64(l.markerTTL/time.Second),
	).Text()
	if err != nil {
		return 0, fmt.Errorf("failed to deduct balance: %w", err)
	}

	balance, err := strconv.ParseFloat(res, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse balance %q: %w", res, err)
	}

	observability.FromContext(ctx).Debug("ledger deduction",
		observability.Int64("user_id", userID),
		observability.String("idempotency_key", idempotencyKey),
		observability.Float64("balance", balance))

	return balance, nil
}

// Credit adds amount to the balance of userID and returns the new balance.
func (l *Ledger) Credit(ctx context.Context, userID int64, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("invalid credit amount %f", amount)
	}
	balance, err := l.client.IncrByFloat(ctx, l.balanceKey(userID), amount).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to credit balance: %w", err)
	}
	return balance, nil
}

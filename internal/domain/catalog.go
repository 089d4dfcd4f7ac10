package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ModelDescriptor is the static capability and pricing record of a model.
type ModelDescriptor struct {
	Name                  string  `json:"name"                      yaml:"name"`
	Provider              string  `json:"provider"                  yaml:"provider"`
	DisplayName           string  `json:"display_name,omitempty"    yaml:"display_name"`
	InputPricePerMillion  float64 `json:"input_price_per_million"   yaml:"input_price_per_million"`
	OutputPricePerMillion float64 `json:"output_price_per_million"  yaml:"output_price_per_million"`
	ContextWindow         int     `json:"context_window"            yaml:"context_window"`
	MaxOutputTokens       int     `json:"max_output_tokens"         yaml:"max_output_tokens"`
	SupportsImages        bool    `json:"supports_images"           yaml:"supports_images"`
	SupportsFiles         bool    `json:"supports_files"            yaml:"supports_files"`
	Reasons               bool    `json:"reasons"                   yaml:"reasons"`
	ExtendedThinking      bool    `json:"extended_thinking"         yaml:"extended_thinking"`
}

// SupportsReasoning reports whether reasoning may be requested for the model.
func (m ModelDescriptor) SupportsReasoning() bool {
	return m.Reasons || m.ExtendedThinking
}

// Prices returns the per-token prices of the model. Zero means unknown.
func (m ModelDescriptor) Prices() Prices {
	return Prices{
		InputPrice:  PerTokenFromMillion(m.InputPricePerMillion),
		OutputPrice: PerTokenFromMillion(m.OutputPricePerMillion),
	}
}

// ModelCatalog stores model descriptors in memory. It is filled at startup
// and only read afterwards.
type ModelCatalog struct {
	mu     sync.RWMutex
	models map[string]ModelDescriptor
}

// NewModelCatalog creates an empty model catalog.
func NewModelCatalog() *ModelCatalog {
	return &ModelCatalog{
		mu:     sync.RWMutex{},
		models: make(map[string]ModelDescriptor),
	}
}

// Register adds or replaces a model descriptor.
func (c *ModelCatalog) Register(_ context.Context, model ModelDescriptor) error {
	if model.Name == "" {
		return errors.New("model name cannot be empty")
	}
	if model.Provider == "" {
		return fmt.Errorf("model %s has no provider", model.Name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.models[model.Name] = model
	return nil
}

// RegisterAll registers every descriptor, stopping at the first failure.
func (c *ModelCatalog) RegisterAll(ctx context.Context, models []ModelDescriptor) error {
	for _, model := range models {
		if err := c.Register(ctx, model); err != nil {
			return fmt.Errorf("failed to register model %s: %w", model.Name, err)
		}
	}
	return nil
}

// Get retrieves a model descriptor by name.
func (c *ModelCatalog) Get(_ context.Context, name string) (ModelDescriptor, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	model, exists := c.models[name]
	if !exists {
		return ModelDescriptor{}, fmt.Errorf("%w: %s", ErrUnknownModel, name)
	}

	return model, nil
}

// List returns all descriptors ordered by provider, then name.
func (c *ModelCatalog) List(_ context.Context) []ModelDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	models := make([]ModelDescriptor, 0, len(c.models))
	for _, model := range c.models {
		models = append(models, model)
	}
	sort.Slice(models, func(i, j int) bool {
		if models[i].Provider != models[j].Provider {
			return models[i].Provider < models[j].Provider
		}
		return models[i].Name < models[j].Name
	})
	return models
}

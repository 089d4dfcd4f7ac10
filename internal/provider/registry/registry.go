package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/lutia-ai/lutia/internal/domain"
)

// Registry implements the ProviderRegistry interface. It is filled once at
// startup and only read while serving requests.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]domain.Adapter
}

// NewRegistry creates a new provider registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:       sync.RWMutex{},
		adapters: make(map[string]domain.Adapter),
	}
}

// NewRegistryWith creates a registry holding every non-nil adapter.
func NewRegistryWith(ctx context.Context, adapters []domain.Adapter) (*Registry, error) {
	reg := NewRegistry()
	for _, adapter := range adapters {
		if adapter == nil {
			continue
		}
		if err := reg.Register(ctx, adapter); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Register adds an adapter to the registry.
func (r *Registry) Register(_ context.Context, adapter domain.Adapter) error {
	if adapter == nil {
		return errors.New("adapter cannot be nil")
	}

	name := adapter.Name()
	if name == "" {
		return errors.New("adapter name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.adapters[name]; exists {
		return fmt.Errorf("provider %s already registered", name)
	}

	r.adapters[name] = adapter
	return nil
}

// Get retrieves an adapter by provider id. A miss means the provider is not
// implemented or not configured.
func (r *Registry) Get(_ context.Context, providerName string) (domain.Adapter, error) {
	if providerName == "" {
		return nil, fmt.Errorf("%w: empty provider name", domain.ErrProviderNotFound)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, exists := r.adapters[providerName]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrProviderNotFound, providerName)
	}

	return adapter, nil
}

// List returns all registered provider ids in sorted order.
func (r *Registry) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

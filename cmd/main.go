package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/lutia-ai/lutia/internal/billing/redis"
	"github.com/lutia-ai/lutia/internal/billing/stripe"
	"github.com/lutia-ai/lutia/internal/config"
	"github.com/lutia-ai/lutia/internal/domain"
	"github.com/lutia-ai/lutia/internal/http"
	"github.com/lutia-ai/lutia/internal/http/middleware"
	"github.com/lutia-ai/lutia/internal/observability"
	"github.com/lutia-ai/lutia/internal/provider"
	"github.com/lutia-ai/lutia/internal/provider/claude"
	"github.com/lutia-ai/lutia/internal/provider/deepseek"
	"github.com/lutia-ai/lutia/internal/provider/echo"
	"github.com/lutia-ai/lutia/internal/provider/gemini"
	"github.com/lutia-ai/lutia/internal/provider/openai"
	"github.com/lutia-ai/lutia/internal/provider/registry"
	"github.com/lutia-ai/lutia/internal/provider/xai"
	"github.com/lutia-ai/lutia/internal/store/sqlite"
)

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *http.Server, serverCfg *config.ServerConfig, store *sqlite.Store) error {
		return run(server, serverCfg, store)
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func run(server *http.Server, serverCfg *config.ServerConfig, store *sqlite.Store) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(serverCfg.ShutdownTimeout)*time.Second)
	defer cancel()

	shutdownErr := server.Shutdown(ctx)
	if err := store.Close(); err != nil {
		observability.FromContext(ctx).Warn("failed to close store", observability.Error(err))
	}
	return shutdownErr
}

// adapterSet collects every configured adapter into the "adapters" group.
type adapterSet struct {
	dig.Out

	Adapters []domain.Adapter `group:"adapters,flatten"`
}

type registryParams struct {
	dig.In

	Adapters []domain.Adapter `group:"adapters"`
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(func(cfg *config.LogConfig) (*zap.Logger, error) {
		return observability.InitLogger(cfg.Development)
	}); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func(logger *zap.Logger) domain.EventPublisher {
		return observability.NewEventBus(logger)
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}

	// Model catalog
	if err := container.Provide(provideCatalog); err != nil {
		log.Fatalf("Failed to provide model catalog: %v", err)
	}

	// Providers
	if err := container.Provide(provideAdapters); err != nil {
		log.Fatalf("Failed to provide adapters: %v", err)
	}
	if err := container.Provide(func(p registryParams) (domain.ProviderRegistry, error) {
		return registry.NewRegistryWith(context.Background(), p.Adapters)
	}); err != nil {
		log.Fatalf("Failed to provide registry: %v", err)
	}

	// Persistence and billing
	if err := container.Provide(func(cfg *config.DatabaseConfig) (*sqlite.Store, error) {
		return sqlite.NewStore(cfg.Path)
	}); err != nil {
		log.Fatalf("Failed to provide store: %v", err)
	}
	if err := container.Provide(func(store *sqlite.Store) (domain.MessageStore, domain.UserStore) {
		return store, store
	}); err != nil {
		log.Fatalf("Failed to provide store interfaces: %v", err)
	}
	if err := container.Provide(provideLedger); err != nil {
		log.Fatalf("Failed to provide ledger: %v", err)
	}
	if err := container.Provide(provideUsageReporter); err != nil {
		log.Fatalf("Failed to provide usage reporter: %v", err)
	}

	// Domain Services
	if err := container.Provide(func(
		store domain.MessageStore,
		ledger domain.Ledger,
		reporter domain.UsageReporter,
		publisher domain.EventPublisher,
	) domain.Finalizer {
		return domain.NewResponseFinalizer(store, ledger, reporter, publisher)
	}); err != nil {
		log.Fatalf("Failed to provide finalizer: %v", err)
	}
	if err := container.Provide(domain.NewRequestValidator); err != nil {
		log.Fatalf("Failed to provide request validator: %v", err)
	}
	if err := container.Provide(func(
		reg domain.ProviderRegistry,
		finalizer domain.Finalizer,
		billing *config.BillingConfig,
	) *domain.ChatService {
		defaults := domain.DefaultPrices().Merge(&domain.Prices{
			InputPrice:  billing.DefaultInputPrice,
			OutputPrice: billing.DefaultOutputPrice,
		})
		return domain.NewChatService(reg, finalizer, defaults)
	}); err != nil {
		log.Fatalf("Failed to provide chat service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

func provideCatalog(cfg *config.CatalogConfig) (*domain.ModelCatalog, error) {
	ctx := context.Background()
	catalog := domain.NewModelCatalog()

	builtin := [][]domain.ModelDescriptor{
		openai.Models(),
		claude.Models(),
		gemini.Models(),
		deepseek.Models(),
		xai.Models(),
		echo.Models(),
	}
	for _, models := range builtin {
		if err := catalog.RegisterAll(ctx, models); err != nil {
			return nil, fmt.Errorf("failed to register built-in models: %w", err)
		}
	}

	extra, err := config.LoadModels(cfg.ModelsFile)
	if err != nil {
		return nil, err
	}
	if err := catalog.RegisterAll(ctx, extra); err != nil {
		return nil, fmt.Errorf("failed to register models from %s: %w", cfg.ModelsFile, err)
	}

	return catalog, nil
}

// provideAdapters builds every vendor adapter. Vendors without credentials
// are skipped; any other construction failure is fatal.
func provideAdapters(
	logger *zap.Logger,
	openaiCfg *openai.Config,
	claudeCfg *claude.Config,
	geminiCfg *gemini.Config,
	deepseekCfg *deepseek.Config,
	xaiCfg *xai.Config,
	echoCfg *echo.Config,
) (adapterSet, error) {
	constructors := []struct {
		name  string
		build func() (domain.Adapter, error)
	}{
		{openai.ProviderName, func() (domain.Adapter, error) { return openai.NewAdapter(*openaiCfg) }},
		{claude.ProviderName, func() (domain.Adapter, error) { return claude.NewAdapter(*claudeCfg) }},
		{gemini.ProviderName, func() (domain.Adapter, error) { return gemini.NewAdapter(*geminiCfg) }},
		{deepseek.ProviderName, func() (domain.Adapter, error) { return deepseek.NewAdapter(*deepseekCfg) }},
		{xai.ProviderName, func() (domain.Adapter, error) { return xai.NewAdapter(*xaiCfg) }},
		{echo.ProviderName, func() (domain.Adapter, error) { return echo.NewAdapter(*echoCfg) }},
	}

	var set adapterSet
	for _, c := range constructors {
		adapter, err := c.build()
		if errors.Is(err, provider.ErrNotConfigured) {
			logger.Info("provider not configured, skipping", zap.String("provider", c.name))
			continue
		}
		if err != nil {
			return adapterSet{}, fmt.Errorf("failed to create %s adapter: %w", c.name, err)
		}
		set.Adapters = append(set.Adapters, adapter)
	}

	if len(set.Adapters) == 0 {
		logger.Warn("no providers configured")
	}
	return set, nil
}

func provideLedger(cfg *config.RedisConfig, billing *config.BillingConfig) (domain.Ledger, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return redis.NewLedger(client, redis.LedgerConfig{
		KeyPrefix: cfg.KeyPrefix,
		MarkerTTL: time.Duration(billing.DeductionMarkerTTL) * time.Second,
	})
}

// provideUsageReporter returns a nil reporter when Stripe is not configured.
func provideUsageReporter(cfg *config.BillingConfig) (domain.UsageReporter, error) {
	reporter, err := stripe.NewUsageReporter(stripe.Config{
		APIKey:  cfg.StripeAPIKey,
		BaseURL: cfg.StripeBaseURL,
		Timeout: time.Duration(cfg.StripeTimeout) * time.Second,
	})
	if errors.Is(err, stripe.ErrNotConfigured) {
		observability.FromContext(context.Background()).Info("stripe not configured, subscription usage is not reported")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return reporter, nil
}

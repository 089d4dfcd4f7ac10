package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lutia-ai/lutia/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Zero(t, cfg.Server.WriteTimeout)
		require.False(t, cfg.Log.Development)
		require.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
		require.Equal(t, 60, cfg.OpenAI.Timeout)
		require.Empty(t, cfg.OpenAI.APIKey)
		require.Equal(t, "https://api.anthropic.com", cfg.Claude.BaseURL)
		require.Equal(t, "2023-06-01", cfg.Claude.Version)
		require.Equal(t, "https://generativelanguage.googleapis.com/", cfg.Gemini.BaseURL)
		require.Equal(t, "v1beta", cfg.Gemini.APIVersion)
		require.Equal(t, "https://api.deepseek.com", cfg.DeepSeek.BaseURL)
		require.Equal(t, "https://api.x.ai/v1", cfg.XAI.BaseURL)
		require.False(t, cfg.Echo.Enabled)
		require.InDelta(t, 0.00001, cfg.Billing.DefaultInputPrice, 1e-12)
		require.InDelta(t, 0.00005, cfg.Billing.DefaultOutputPrice, 1e-12)
		require.Equal(t, "data/lutia.db", cfg.Database.Path)
		require.Equal(t, "localhost:6379", cfg.Redis.Addr)
		require.Equal(t, []string{"Content-Type", "Authorization"}, cfg.CORS.AllowedHeaders)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("SERVER_READ_TIMEOUT", "60")
		t.Setenv("OPENAI_API_KEY", "sk-test-key")
		t.Setenv("OPENAI_BASE_URL", "https://test.openai.com")
		t.Setenv("OPENAI_TIMEOUT", "120")
		t.Setenv("ANTHROPIC_API_KEY", "ak")
		t.Setenv("GEMINI_API_KEY", "gk")
		t.Setenv("ECHO_ENABLED", "true")
		t.Setenv("BILLING_DEFAULT_INPUT_PRICE", "0.000002")
		t.Setenv("AUTH_JWT_SECRET", "s3cret")
		t.Setenv("CATALOG_MODELS_FILE", "/etc/lutia/models.yaml")

		cfg := config.Load()

		require.NotNil(t, cfg)

		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, 60, cfg.Server.ReadTimeout)
		require.Equal(t, "sk-test-key", cfg.OpenAI.APIKey)
		require.Equal(t, "https://test.openai.com", cfg.OpenAI.BaseURL)
		require.Equal(t, 120, cfg.OpenAI.Timeout)
		require.Equal(t, "ak", cfg.Claude.APIKey)
		require.Equal(t, "gk", cfg.Gemini.APIKey)
		require.True(t, cfg.Echo.Enabled)
		require.InDelta(t, 0.000002, cfg.Billing.DefaultInputPrice, 1e-12)
		require.Equal(t, "s3cret", cfg.Auth.JWTSecret)
		require.Equal(t, "/etc/lutia/models.yaml", cfg.Catalog.ModelsFile)
	})
}

func TestParseDependenciesConfig(t *testing.T) {
	cfg := &config.Config{}
	deps := config.ParseDependenciesConfig(cfg)

	require.Same(t, &cfg.Server, deps.ServerConfig)
	require.Same(t, &cfg.Billing, deps.BillingConfig)
	require.Same(t, &cfg.Claude, deps.Claude)
	require.Same(t, &cfg.Echo, deps.Echo)
}

func TestLoadModels(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		models, err := config.LoadModels("")
		require.NoError(t, err)
		require.Empty(t, models)
	})

	t.Run("parses descriptors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "models.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`models:
  - name: gpt-4o
    provider: openai
    input_price_per_million: 2
    output_price_per_million: 8
    supports_images: true
  - name: claude-next
    provider: claude
    extended_thinking: true
    max_output_tokens: 16384
`), 0o600))

		models, err := config.LoadModels(path)
		require.NoError(t, err)
		require.Len(t, models, 2)
		require.Equal(t, "gpt-4o", models[0].Name)
		require.InDelta(t, 2.0, models[0].InputPricePerMillion, 1e-9)
		require.True(t, models[0].SupportsImages)
		require.True(t, models[1].ExtendedThinking)
		require.Equal(t, 16384, models[1].MaxOutputTokens)
	})

	t.Run("rejects entries without provider", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "models.yaml")
		require.NoError(t, os.WriteFile(path, []byte("models:\n  - name: orphan\n"), 0o600))

		_, err := config.LoadModels(path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadModels(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

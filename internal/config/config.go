package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/lutia-ai/lutia/internal/provider/claude"
	"github.com/lutia-ai/lutia/internal/provider/deepseek"
	"github.com/lutia-ai/lutia/internal/provider/echo"
	"github.com/lutia-ai/lutia/internal/provider/gemini"
	"github.com/lutia-ai/lutia/internal/provider/openai"
	"github.com/lutia-ai/lutia/internal/provider/xai"
)

// Config represents the service configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	CORS     CORSConfig
	Auth     AuthConfig
	Billing  BillingConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Catalog  CatalogConfig

	OpenAI   openai.Config
	Claude   claude.Config
	Gemini   gemini.Config
	DeepSeek deepseek.Config
	XAI      xai.Config
	Echo     echo.Config
}

// ServerConfig contains HTTP server settings. WriteTimeout is zero by
// default because chat streams outlive any fixed write deadline.
type ServerConfig struct {
	Port            int `env:"SERVER_PORT"             envDefault:"8080"`
	ReadTimeout     int `env:"SERVER_READ_TIMEOUT"     envDefault:"30"`
	WriteTimeout    int `env:"SERVER_WRITE_TIMEOUT"    envDefault:"0"`
	ShutdownTimeout int `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30"`
	MaxBodyBytes    int `env:"SERVER_MAX_BODY_BYTES"   envDefault:"33554432"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Development bool `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// AuthConfig contains bearer token verification settings.
type AuthConfig struct {
	JWTSecret string `env:"AUTH_JWT_SECRET"`
	Issuer    string `env:"AUTH_JWT_ISSUER"`
}

// BillingConfig contains pricing fallbacks and payment settings. Prices are
// USD per token.
type BillingConfig struct {
	DefaultInputPrice  float64 `env:"BILLING_DEFAULT_INPUT_PRICE"  envDefault:"0.00001"`
	DefaultOutputPrice float64 `env:"BILLING_DEFAULT_OUTPUT_PRICE" envDefault:"0.00005"`
	StripeAPIKey       string  `env:"STRIPE_API_KEY"`
	StripeBaseURL      string  `env:"STRIPE_BASE_URL"`
	StripeTimeout      int     `env:"STRIPE_TIMEOUT"               envDefault:"30"`
	DeductionMarkerTTL int     `env:"BILLING_DEDUCTION_MARKER_TTL" envDefault:"604800"`
}

// DatabaseConfig contains SQLite settings.
type DatabaseConfig struct {
	Path string `env:"DATABASE_PATH" envDefault:"data/lutia.db"`
}

// RedisConfig contains Redis connection settings for the balance ledger.
type RedisConfig struct {
	Addr      string `env:"REDIS_ADDR"       envDefault:"localhost:6379"`
	Password  string `env:"REDIS_PASSWORD"`
	DB        int    `env:"REDIS_DB"         envDefault:"0"`
	KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"lutia"`
}

// CatalogConfig points at an optional YAML file of model descriptors that
// extend or override the built-in ones.
type CatalogConfig struct {
	ModelsFile string `env:"CATALOG_MODELS_FILE"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*LogConfig
	*CORSConfig
	*AuthConfig
	*BillingConfig
	*DatabaseConfig
	*RedisConfig
	*CatalogConfig

	OpenAI   *openai.Config
	Claude   *claude.Config
	Gemini   *gemini.Config
	DeepSeek *deepseek.Config
	XAI      *xai.Config
	Echo     *echo.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		ServerConfig:   &cfg.Server,
		LogConfig:      &cfg.Log,
		CORSConfig:     &cfg.CORS,
		AuthConfig:     &cfg.Auth,
		BillingConfig:  &cfg.Billing,
		DatabaseConfig: &cfg.Database,
		RedisConfig:    &cfg.Redis,
		CatalogConfig:  &cfg.Catalog,
		OpenAI:         &cfg.OpenAI,
		Claude:         &cfg.Claude,
		Gemini:         &cfg.Gemini,
		DeepSeek:       &cfg.DeepSeek,
		XAI:            &cfg.XAI,
		Echo:           &cfg.Echo,
	}
}

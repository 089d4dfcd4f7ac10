package xai

// Config contains xAI provider configuration. xAI speaks the OpenAI
// protocol, so the fields map to the same SDK options.
type Config struct {
	APIKey  string `env:"XAI_API_KEY"`
	BaseURL string `env:"XAI_BASE_URL" envDefault:"https://api.x.ai/v1"`
	Timeout int    `env:"XAI_TIMEOUT"  envDefault:"60"`
}

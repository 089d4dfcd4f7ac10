package deepseek

// Config contains DeepSeek provider configuration. DeepSeek speaks the
// OpenAI protocol, so the fields map to the same SDK options.
type Config struct {
	APIKey  string `env:"DEEPSEEK_API_KEY"`
	BaseURL string `env:"DEEPSEEK_BASE_URL" envDefault:"https://api.deepseek.com"`
	Timeout int    `env:"DEEPSEEK_TIMEOUT"  envDefault:"60"`
}

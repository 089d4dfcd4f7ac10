package gemini

// Config contains Google Gemini provider configuration.
//   - BaseURL: host of the Gemini API, maps to genai.HTTPOptions.BaseURL
//   - APIVersion: path version segment, maps to genai.HTTPOptions.APIVersion
type Config struct {
	APIKey     string `env:"GEMINI_API_KEY"`
	BaseURL    string `env:"GEMINI_BASE_URL"    envDefault:"https://generativelanguage.googleapis.com/"`
	APIVersion string `env:"GEMINI_API_VERSION" envDefault:"v1beta"`
	Timeout    int    `env:"GEMINI_TIMEOUT"     envDefault:"60"`
}

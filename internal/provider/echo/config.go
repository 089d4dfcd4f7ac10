package echo

// Config contains echo provider configuration. The provider is off unless
// enabled, so production deployments never list it.
type Config struct {
	Enabled      bool `env:"ECHO_ENABLED"        envDefault:"false"`
	ChunkDelayMS int  `env:"ECHO_CHUNK_DELAY_MS" envDefault:"10"`
}

package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/lutia-ai/lutia/internal/config"
)

// exposedHeaders lets browser clients read the ids needed to correlate a
// chat stream with server logs.
var exposedHeaders = []string{headerRequestID, headerTraceID}

// CORS applies the configured cross-origin policy. A nil config disables it.
func CORS(cfg *config.CORSConfig) Middleware {
	if cfg == nil {
		return func(next http.Handler) http.Handler { return next }
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})

	return c.Handler
}

// Package middleware holds cross-origin request handling for the API server.
package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"blog-api/internal/pkg/config"
)

// CORSConfig holds the CORS policy applied by the middleware.
type CORSConfig struct {
	// AllowedOrigins is the whitelist of permitted origins. A single "*"
	// entry allows every origin.
	AllowedOrigins []string

	AllowedMethods []string
	AllowedHeaders []string

	// AllowCredentials must be true for Bearer token authentication.
	AllowCredentials bool

	// MaxAge is the preflight cache lifetime in seconds.
	MaxAge int
}

// LoadCORSConfig builds the CORS policy from environment variables with
// sensible defaults for a JSON API.
func LoadCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: config.LoadEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		AllowedMethods: config.LoadEnvStringSlice("CORS_ALLOWED_METHODS",
			[]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		AllowedHeaders: config.LoadEnvStringSlice("CORS_ALLOWED_HEADERS",
			[]string{"Content-Type", "Authorization", "X-Request-ID"}),
		AllowCredentials: true,
		MaxAge:           config.LoadEnvInt("CORS_MAX_AGE", 86400),
	}
}

func (c CORSConfig) originAllowed(origin string) bool {
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// CORS returns middleware that validates the Origin header against the
// configured whitelist. Preflight OPTIONS requests are answered directly
// with 204; disallowed origins pass through without CORS headers so the
// browser blocks the response.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// Same-origin request.
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !config.originAllowed(origin) {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			if config.AllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

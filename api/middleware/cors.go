package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/config"
)

// CORS returns middleware that applies the configured allowed origin policy.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Idempotency-Key", "X-Guest-Cart-Token", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Guest-Cart-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}

package middlewares

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
	"github.com/kndri/selah-journaling/internal/config"
)

// CorsMiddleware allows the mobile client origins. CORS_ALLOWED_ORIGINS is
// a comma-separated list; credentials stay on because the refresh token
// travels in a cookie.
func CorsMiddleware(next http.Handler) http.Handler {
	origins := strings.Split(config.Getenv("CORS_ALLOWED_ORIGINS", "http://localhost:8081"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	})(next)
}

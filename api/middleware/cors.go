package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/pradom/storefront/pkg/types"
)

// CORS returns middleware that lets the listed storefront origins call the API with cookies.
func CORS(origins []string) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", SessionHeader, types.RequestIDHeader, "X-Requested-With"},
		ExposedHeaders:   []string{SessionHeader, types.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}

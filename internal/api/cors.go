package api

import (
	"github.com/gorilla/handlers"
)

func setupCorsOptions(origin string) []handlers.CORSOption {
	credentials := handlers.AllowCredentials()
	methods := handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	origins := handlers.AllowedOrigins([]string{origin})
	headers := handlers.AllowedHeaders([]string{"Content-Type", "X-Request-ID"})

	options := []handlers.CORSOption{credentials, methods, origins, headers}
	return options
}

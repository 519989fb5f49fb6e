// Package middleware bundles the fiber middleware stack shared by every route.
package middleware

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/cors"
)

// RequestID tags each request with a UUID, echoed in the X-Request-ID header.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Generator: uuid.NewString,
	})
}

// Logging writes one access-log line per request. RequestID must run first.
func Logging() fiber.Handler {
	return logger.New(logger.Config{
		Format:     "${time} [HTTP] ${locals:requestid} ${status} ${latency} ${method} ${path}\n",
		TimeFormat: "2006/01/02 15:04:05",
	})
}

// Recover turns panics into 500 responses instead of killing the server.
func Recover() fiber.Handler {
	return recover.New()
}

// CORS allows the listed browser origins to call the API. Only install it
// when origins is non-empty; rs/cors treats an empty list as "allow all".
func CORS(origins []string) fiber.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         600,
	})
	return adaptor.HTTPMiddleware(c.Handler)
}

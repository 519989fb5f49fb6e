package handler

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/ahmednasr/luis/server/internal/middleware"
	"github.com/ahmednasr/luis/server/internal/models"
	"github.com/ahmednasr/luis/server/internal/service"
	"github.com/ahmednasr/luis/server/web"
)

// Options configures NewApp. Zero values are usable in tests.
type Options struct {
	ChatService service.ChatService
	Health      *HealthHandler

	RateLimitMax     int
	RateLimitWindow  time.Duration
	RateLimitStorage fiber.Storage // nil keeps counters in memory

	AllowedOrigins []string
	ProxyHeader    string
	TrustedProxies []string // empty trusts every peer to set ProxyHeader
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// NewApp builds the fiber app with the middleware stack and every route.
func NewApp(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:                 "luis",
		ReadTimeout:             opts.ReadTimeout,
		WriteTimeout:            opts.WriteTimeout,
		ProxyHeader:             opts.ProxyHeader,
		EnableTrustedProxyCheck: len(opts.TrustedProxies) > 0,
		TrustedProxies:          opts.TrustedProxies,
		ErrorHandler:            ErrorHandler,
		DisableStartupMessage:   true,
	})

	app.Use(middleware.Recover())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logging())
	if len(opts.AllowedOrigins) > 0 {
		app.Use(middleware.CORS(opts.AllowedOrigins))
	}

	RegisterRoutes(app, opts)
	return app
}

// RegisterRoutes mounts the API, health check and the chat page.
func RegisterRoutes(app *fiber.App, opts Options) {
	if opts.Health != nil {
		opts.Health.Register(app)
	}

	api := app.Group("/api")
	guard := NewRateGuard(opts.RateLimitMax, opts.RateLimitWindow, opts.RateLimitStorage)
	NewChatHandler(opts.ChatService, guard).Register(api)

	app.Use("/", filesystem.New(filesystem.Config{
		Root:  web.FS(),
		Index: "index.html",
	}))
}

// NewRateGuard rejects clients that exceed maxRequests in a fixed window.
// Clients are identified by ClientKey. A max of zero or less disables the guard.
func NewRateGuard(maxRequests int, window time.Duration, storage fiber.Storage) fiber.Handler {
	if maxRequests <= 0 {
		return nil
	}
	if window <= 0 {
		window = 15 * time.Minute
	}

	return limiter.New(limiter.Config{
		Max:        maxRequests,
		Expiration: window,
		KeyGenerator: ClientKey,
		LimitReached: func(c *fiber.Ctx) error {
			log.Printf("[Rate Guard] %s exceeded %d requests per %s", ClientKey(c), maxRequests, window)
			return c.Status(fiber.StatusTooManyRequests).JSON(models.ChatResponse{Reply: RateLimitReply})
		},
		Storage:           storage,
		LimiterMiddleware: limiter.FixedWindow{},
	})
}

// ClientKey identifies the caller for rate limiting. Without a proxy header,
// or when the peer is not a trusted proxy, it is the socket address. Behind a
// trusted proxy it is the right-most hop of the header: the address the proxy
// itself appended, which the client cannot choose.
func ClientKey(c *fiber.Ctx) string {
	header := c.App().Config().ProxyHeader
	if header == "" || !c.IsProxyTrusted() {
		return c.Context().RemoteIP().String()
	}

	hops := strings.Split(c.Get(header), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		if hop := strings.TrimSpace(hops[i]); hop != "" {
			return hop
		}
	}
	return c.Context().RemoteIP().String()
}

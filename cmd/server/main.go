package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ahmednasr/luis/server/internal/config"
	"github.com/ahmednasr/luis/server/internal/database"
	"github.com/ahmednasr/luis/server/internal/handler"
	"github.com/ahmednasr/luis/server/internal/repository"
	"github.com/ahmednasr/luis/server/internal/service"
	"github.com/ahmednasr/luis/server/internal/timetable"
)

// main is the single entry‑point for the chat server.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg := config.Load()
	log.Printf("Configuration loaded:")
	log.Printf("  - Port: %s", cfg.Port)
	log.Printf("  - Timetable: %s", cfg.TimetablePath)
	log.Printf("  - Completion backend: %s (%s)", cfg.CompletionBackend, cfg.Model)

	// Timetable is read once; a bad file leaves it empty.
	tt := timetable.Load(cfg.TimetablePath)
	log.Printf("Timetable loaded with %d day(s): %v", len(tt), tt.Days())

	// Completion provider
	llm, closer, err := service.NewBackend(ctx, service.BackendOptions{
		Backend:         cfg.CompletionBackend,
		APIKey:          cfg.GeminiAPIKey,
		Model:           cfg.Model,
		ProjectID:       cfg.ProjectID,
		Location:        cfg.Location,
		CredentialsFile: cfg.CredentialsFile,
	})
	if err != nil {
		log.Fatalf("Failed to initialize completion backend: %v", err)
	}
	defer closer.Close()
	completion := service.NewCompletionClient(llm, cfg.Model)

	// Optional exchange log
	var (
		mongoClient *mongo.Client
		exchanges   service.ExchangeRepository
	)
	if cfg.MongoURI != "" {
		mongoClient, err = database.NewMongo(ctx, cfg.MongoURI)
		if err != nil {
			log.Printf("Warning: MongoDB unavailable, exchange log disabled: %v", err)
		} else {
			defer mongoClient.Disconnect(context.Background())
			repo := repository.NewExchangeRepository(mongoClient.Database(cfg.DBName))
			if err := repo.EnsureIndexes(ctx); err != nil {
				log.Printf("Warning: failed to create exchange indexes: %v", err)
			}
			exchanges = repo
			log.Printf("Connected to MongoDB, logging exchanges to %s", cfg.DBName)
		}
	}

	// Optional shared rate-limit counters
	var (
		redisClient *redis.Client
		storage     fiber.Storage
	)
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Redis unavailable, rate limits kept in memory: %v", err)
		} else {
			defer redisClient.Close()
			storage = database.NewRedisStorage(redisClient)
			log.Printf("Connected to Redis, rate limits are shared")
		}
	}

	// Initialize services
	chatSvc := service.NewChatService(tt, completion, exchanges, cfg.Clock())

	app := handler.NewApp(handler.Options{
		ChatService:      chatSvc,
		Health:           handler.NewHealthHandler(mongoClient, redisClient, completion, tt),
		RateLimitMax:     cfg.RateLimitMax,
		RateLimitWindow:  cfg.RateLimitWindow,
		RateLimitStorage: storage,
		AllowedOrigins:   cfg.AllowedOrigins,
		ProxyHeader:      cfg.ProxyHeader,
		TrustedProxies:   cfg.TrustedProxies,
		ReadTimeout:      cfg.ReadTimeout,
		WriteTimeout:     cfg.WriteTimeout,
	})

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Start server; deferred cleanup only runs once requests have drained.
	log.Printf("LUIS server running on http://localhost:%s", cfg.Port)
	if err := serve(app, ln, sigCh, 10*time.Second); err != nil {
		log.Printf("Server error: %v", err)
	}
	log.Println("Server stopped")
}

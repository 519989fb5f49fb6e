package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ahmednasr/luis/server/internal/timetable"
)

// completionStatus is satisfied by *service.CompletionClient.
type completionStatus interface {
	Configured() bool
}

type HealthHandler struct {
	mongo      *mongo.Client
	redis      *redis.Client
	completion completionStatus
	tt         timetable.Timetable
}

// NewHealthHandler accepts nil clients for dependencies that are not configured.
func NewHealthHandler(mongoClient *mongo.Client, redisClient *redis.Client, completion completionStatus, tt timetable.Timetable) *HealthHandler {
	return &HealthHandler{
		mongo:      mongoClient,
		redis:      redisClient,
		completion: completion,
		tt:         tt,
	}
}

func (h *HealthHandler) Register(r fiber.Router) {
	r.Get("/health", h.health)
}

func (h *HealthHandler) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := fiber.Map{
		"status":         "ok",
		"timetable_days": len(h.tt),
		"deps": fiber.Map{
			"mongo":      h.checkMongo(ctx),
			"redis":      h.checkRedis(ctx),
			"completion": h.checkCompletion(),
		},
	}

	return c.JSON(status)
}

func (h *HealthHandler) checkMongo(ctx context.Context) string {
	if h.mongo == nil {
		return "not_configured"
	}
	if err := h.mongo.Ping(ctx, nil); err != nil {
		return "error"
	}
	return "connected"
}

func (h *HealthHandler) checkRedis(ctx context.Context) string {
	if h.redis == nil {
		return "not_configured"
	}
	if err := h.redis.Ping(ctx).Err(); err != nil {
		return "error"
	}
	return "connected"
}

func (h *HealthHandler) checkCompletion() string {
	if h.completion == nil || !h.completion.Configured() {
		return "not_configured"
	}
	return "configured"
}

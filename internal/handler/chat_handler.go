package handler

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmednasr/luis/server/internal/models"
	"github.com/ahmednasr/luis/server/internal/service"
)

// ChatHandler wires HTTP → ChatService.
type ChatHandler struct {
	svc   service.ChatService
	guard fiber.Handler
}

// NewChatHandler returns a struct pointer so you can call Register on it.
// guard runs before the handler and may reject the request.
func NewChatHandler(svc service.ChatService, guard fiber.Handler) *ChatHandler {
	return &ChatHandler{svc: svc, guard: guard}
}

// Register mounts the /chat endpoint on the supplied router group.
func (h *ChatHandler) Register(r fiber.Router) {
	if h.guard != nil {
		r.Post("/chat", h.guard, h.chat)
		return
	}
	r.Post("/chat", h.chat)
}

// chat handles POST /chat  { "message": "..." }
func (h *ChatHandler) chat(c *fiber.Ctx) error {
	// Only JSON bodies are read; anything else counts as an empty message.
	var req models.ChatRequest
	if len(c.Body()) > 0 && c.Is("json") {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, InvalidBodyReply)
		}
	}

	requestID := c.GetRespHeader(fiber.HeaderXRequestID)
	ctx := service.WithRequestID(c.UserContext(), requestID)

	// Delegate to service layer.
	reply, err := h.svc.Ask(ctx, req.Message)
	if err != nil {
		log.Printf("[Chat Handler] Request %s failed: %v", requestID, err)
		return fiber.NewError(fiber.StatusInternalServerError, GenericErrorReply)
	}

	return c.JSON(models.ChatResponse{Reply: reply})
}

package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmednasr/luis/server/internal/models"
)

// User-facing replies. Provider details are only ever logged.
const (
	GenericErrorReply = "Error fetching response."
	RateLimitReply    = "Too many requests, please slow down."
	InvalidBodyReply  = "Invalid request body."
)

// ErrorHandler renders every error in the same {"reply": "..."} shape the UI
// expects. Errors that are not *fiber.Error are logged and hidden behind
// GenericErrorReply.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := GenericErrorReply

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	} else {
		log.Printf("[HTTP] Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(models.ChatResponse{Reply: msg})
}

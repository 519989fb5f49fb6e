package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ahmednasr/luis/server/internal/models"
	"github.com/ahmednasr/luis/server/internal/timetable"
)

// ---- Repository contract ---------------------------------------------------

// ExchangeRepository stores answered questions for later auditing.
type ExchangeRepository interface {
	Insert(ctx context.Context, e models.Exchange) error
}

// ---- Service interface + implementation ------------------------------------

// ChatService answers a single timetable question. No state is kept between
// calls beyond the immutable timetable.
type ChatService interface {
	// Ask returns the assistant's reply for message.
	Ask(ctx context.Context, message string) (string, error)
}

// Completer is satisfied by *CompletionClient.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type chatService struct {
	tt         timetable.Timetable
	completion Completer
	exchanges  ExchangeRepository // optional
	now        func() time.Time
}

// NewChatService wires dependencies and returns ChatService. exchanges may be
// nil; now defaults to time.Now.
func NewChatService(tt timetable.Timetable, completion Completer, exchanges ExchangeRepository, now func() time.Time) ChatService {
	if now == nil {
		now = time.Now
	}
	return &chatService{
		tt:         tt,
		completion: completion,
		exchanges:  exchanges,
		now:        now,
	}
}

// NormalizeMessage lowercases and trims the raw user message.
func NormalizeMessage(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}

// Ask resolves the day, composes the prompt and calls the completion client.
func (s *chatService) Ask(ctx context.Context, message string) (string, error) {
	msg := NormalizeMessage(message)
	today := s.now()

	// 1. Work out which day the question is about.
	day := ResolveDay(msg, today, s.tt)
	log.Printf("[Chat Service] Resolved %q to %s", msg, day)

	// 2. Build the prompt and hand it to the provider.
	prompt := ComposePrompt(msg, today, s.tt, day)
	reply, err := s.completion.Complete(ctx, prompt)

	// 3. Best-effort audit trail.
	s.record(ctx, models.Exchange{
		ID:        uuid.NewString(),
		RequestID: RequestIDFrom(ctx),
		Message:   msg,
		Day:       day,
		Reply:     reply,
		Failed:    err != nil,
		CreatedAt: today.UTC(),
	})

	if err != nil {
		return "", err
	}
	return reply, nil
}

func (s *chatService) record(ctx context.Context, e models.Exchange) {
	if s.exchanges == nil {
		return
	}
	if err := s.exchanges.Insert(ctx, e); err != nil {
		log.Printf("[Chat Service] Failed to record exchange %s: %v", e.ID, err)
	}
}

type requestIDKey struct{}

// WithRequestID attaches the HTTP request id to ctx for logging.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request id stored by WithRequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

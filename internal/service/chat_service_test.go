package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ahmednasr/luis/server/internal/models"
	"github.com/ahmednasr/luis/server/internal/timetable"
)

type fakeLLM struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (f *fakeLLM) GenerateResponse(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

type fakeExchanges struct {
	saved []models.Exchange
	err   error
}

func (f *fakeExchanges) Insert(_ context.Context, e models.Exchange) error {
	f.saved = append(f.saved, e)
	return f.err
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCompletionClientTrims(t *testing.T) {
	llm := &fakeLLM{reply: "  You've got Maths.\n"}
	client := NewCompletionClient(llm, "gemini-2.0-flash")

	got, err := client.Complete(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "You've got Maths." {
		t.Errorf("expected trimmed reply, got %q", got)
	}
}

func TestCompletionClientWrapsErrors(t *testing.T) {
	cause := errors.New("401 unauthorized")
	client := NewCompletionClient(&fakeLLM{err: cause}, "gemini-2.0-flash")

	_, err := client.Complete(context.Background(), "prompt")

	var cerr *CompletionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *CompletionError, got %T (%v)", err, err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected CompletionError to unwrap to the provider error")
	}
	if cerr.Model != "gemini-2.0-flash" {
		t.Errorf("expected model to be recorded, got %q", cerr.Model)
	}
}

func TestCompletionClientMissingKey(t *testing.T) {
	client := NewCompletionClient(nil, "gemini-2.0-flash")
	if client.Configured() {
		t.Errorf("expected client without backend to report unconfigured")
	}

	_, err := client.Complete(context.Background(), "prompt")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	var cerr *CompletionError
	if !errors.As(err, &cerr) {
		t.Errorf("expected missing key to surface as *CompletionError")
	}
}

func TestChatServiceAskTomorrow(t *testing.T) {
	llm := &fakeLLM{reply: " Maths and Physics tomorrow! "}
	exchanges := &fakeExchanges{}
	tt := timetable.Timetable{"tuesday": {"Maths", "Physics"}}
	svc := NewChatService(tt, NewCompletionClient(llm, "m"), exchanges, fixedClock(monday))

	ctx := WithRequestID(context.Background(), "req-1")
	reply, err := svc.Ask(ctx, "What do I have tomorrow?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Maths and Physics tomorrow!" {
		t.Errorf("unexpected reply %q", reply)
	}

	if len(llm.prompts) != 1 {
		t.Fatalf("expected exactly one completion call, got %d", len(llm.prompts))
	}
	prompt := llm.prompts[0]
	if !strings.Contains(prompt, "Maths, Physics") {
		t.Errorf("expected prompt to list tuesday classes, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, `"what do i have tomorrow?"`) {
		t.Errorf("expected normalised message in prompt, got:\n%s", prompt)
	}

	if len(exchanges.saved) != 1 {
		t.Fatalf("expected one recorded exchange, got %d", len(exchanges.saved))
	}
	e := exchanges.saved[0]
	if e.Day != "tuesday" || e.RequestID != "req-1" || e.Failed || e.ID == "" {
		t.Errorf("unexpected exchange %+v", e)
	}
}

func TestChatServiceAbsentDayUsesSentinel(t *testing.T) {
	llm := &fakeLLM{reply: "No classes on Friday."}
	svc := NewChatService(timetable.Timetable{"monday": {"C"}}, NewCompletionClient(llm, "m"), nil, fixedClock(monday))

	if _, err := svc.Ask(context.Background(), "friday classes"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(llm.prompts[0], "Classes for friday: "+NoClassInfo) {
		t.Errorf("expected sentinel in prompt, got:\n%s", llm.prompts[0])
	}
}

func TestChatServiceCompletionFailure(t *testing.T) {
	exchanges := &fakeExchanges{}
	svc := NewChatService(timetable.Timetable{}, NewCompletionClient(&fakeLLM{err: errors.New("quota")}, "m"), exchanges, fixedClock(monday))

	_, err := svc.Ask(context.Background(), "today")
	var cerr *CompletionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *CompletionError, got %v", err)
	}
	if len(exchanges.saved) != 1 || !exchanges.saved[0].Failed {
		t.Errorf("expected failed exchange to be recorded, got %+v", exchanges.saved)
	}
}

func TestChatServiceIgnoresExchangeStoreErrors(t *testing.T) {
	exchanges := &fakeExchanges{err: errors.New("mongo down")}
	svc := NewChatService(timetable.Timetable{}, NewCompletionClient(&fakeLLM{reply: "ok"}, "m"), exchanges, fixedClock(monday))

	reply, err := svc.Ask(context.Background(), "hi")
	if err != nil || reply != "ok" {
		t.Errorf("expected store failure to be ignored, got reply=%q err=%v", reply, err)
	}
}

func TestNewBackendWithoutKey(t *testing.T) {
	llm, closer, err := NewBackend(context.Background(), BackendOptions{Backend: BackendGemini, Model: "m"})
	if err != nil {
		t.Fatalf("expected missing key not to be a startup error, got %v", err)
	}
	if llm != nil {
		t.Errorf("expected nil LLM without API key")
	}
	if closer == nil || closer.Close() != nil {
		t.Errorf("expected usable no-op closer")
	}
}

func TestNewBackendUnknown(t *testing.T) {
	if _, _, err := NewBackend(context.Background(), BackendOptions{Backend: "openai"}); err == nil {
		t.Errorf("expected unknown backend to fail")
	}
}

func TestDummyBackend(t *testing.T) {
	llm, _, err := NewBackend(context.Background(), BackendOptions{Backend: BackendDummy})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reply, err := llm.GenerateResponse(context.Background(), "anything")
	if err != nil || reply != DummyReply {
		t.Errorf("unexpected dummy reply %q (%v)", reply, err)
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// LLM defines the interface for language model interactions
type LLM interface {
	GenerateResponse(ctx context.Context, prompt string) (string, error)
}

// ErrMissingAPIKey is returned by every completion when no provider key is configured.
var ErrMissingAPIKey = errors.New("completion provider API key is not configured")

// CompletionError wraps any failure of the completion provider.
type CompletionError struct {
	Model string
	Err   error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion with model %s failed: %v", e.Model, e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }

// CompletionClient sends a composed prompt to an LLM and returns its reply.
// It makes exactly one provider call per Complete; there is no retry or cache.
type CompletionClient struct {
	llm   LLM
	model string
}

// NewCompletionClient wires an LLM backend. A nil llm is allowed and makes
// every call fail with ErrMissingAPIKey.
func NewCompletionClient(llm LLM, model string) *CompletionClient {
	return &CompletionClient{llm: llm, model: model}
}

// Model returns the fixed model identifier the client was configured with.
func (c *CompletionClient) Model() string { return c.model }

// Configured reports whether a backend is available.
func (c *CompletionClient) Configured() bool { return c.llm != nil }

// Complete returns the trimmed generated text or a *CompletionError.
func (c *CompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.llm == nil {
		return "", &CompletionError{Model: c.model, Err: ErrMissingAPIKey}
	}

	text, err := c.llm.GenerateResponse(ctx, prompt)
	if err != nil {
		return "", &CompletionError{Model: c.model, Err: err}
	}
	return strings.TrimSpace(text), nil
}

package service

import "context"

// DummyReply is what the offline backend answers with.
const DummyReply = "<placeholder answer> LUIS is running without a completion backend."

type dummyLLM struct{}

func (d dummyLLM) GenerateResponse(context.Context, string) (string, error) {
	return DummyReply, nil
}

// NewDummyLLM returns an LLM that never leaves the process. Useful for local
// UI work without an API key.
func NewDummyLLM() LLM {
	return dummyLLM{}
}

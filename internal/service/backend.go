package service

import (
	"context"
	"fmt"
	"io"
	"log"
)

// Completion backends understood by NewBackend.
const (
	BackendGemini = "gemini"
	BackendVertex = "vertex"
	BackendDummy  = "dummy"
)

// BackendOptions carries everything NewBackend needs; callers fill it from config.
type BackendOptions struct {
	Backend         string
	APIKey          string
	Model           string
	ProjectID       string
	Location        string
	CredentialsFile string
}

// NewBackend builds the LLM for opts.Backend. A missing Gemini API key is not
// an error: it yields a nil LLM so the server starts and every completion
// fails instead. The returned io.Closer is never nil.
func NewBackend(ctx context.Context, opts BackendOptions) (LLM, io.Closer, error) {
	switch opts.Backend {
	case BackendDummy:
		log.Printf("[Completion] Using offline dummy backend")
		return NewDummyLLM(), nopCloser{}, nil

	case BackendVertex:
		llm, err := NewVertexLLM(ctx, opts.ProjectID, opts.Location, opts.Model, opts.CredentialsFile)
		if err != nil {
			return nil, nopCloser{}, err
		}
		log.Printf("[Completion] Using Vertex AI model %s in %s", opts.Model, opts.Location)
		return llm, llm, nil

	case BackendGemini, "":
		if opts.APIKey == "" {
			log.Printf("[Completion] GEMINI_API_KEY is not set; chat requests will fail until it is configured")
			return nil, nopCloser{}, nil
		}
		llm, err := NewGeminiLLM(ctx, opts.APIKey, opts.Model)
		if err != nil {
			return nil, nopCloser{}, err
		}
		log.Printf("[Completion] Using Gemini model %s", opts.Model)
		return llm, llm, nil

	default:
		return nil, nopCloser{}, fmt.Errorf("unknown completion backend %q", opts.Backend)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

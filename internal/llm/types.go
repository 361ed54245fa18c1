// Package llm defines the text-generation backend interface and its providers.
// Providers are interchangeable behind this interface — OpenAI or Azure today,
// anything tomorrow.
package llm

import "context"

// Request is the input to a Generate call. System carries the speaking role's
// objective and persona; Prompt carries the rendered task for this turn.
type Request struct {
	System string
	Prompt string
}

// Generator is the core abstraction for language model backends.
type Generator interface {
	// Generate sends a completion request and waits for the full response text.
	Generate(ctx context.Context, req Request) (string, error)

	// ModelID returns the current model identifier string.
	ModelID() string
}

package ai

import (
	"context"
)

// Provider defines the contract for interacting with language models.
// This interface allows swapping providers (Gemini, OpenAI, ...) without
// touching the itinerary composer.
type Provider interface {
	// Generate sends a single prompt and returns the raw model text.
	// The composer owns prompt construction and response parsing.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name identifies the provider in logs and error messages.
	Name() string
}

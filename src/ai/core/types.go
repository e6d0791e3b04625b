package core

import "context"

// Options controls model behavior; fields are optional per provider.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int
	SystemPrompt        string
}

// Client is a provider-agnostic interface for LLM operations we need.
type Client interface {
	// Respond sends a single text prompt and returns the completion text.
	Respond(ctx context.Context, input string, opts Options) (string, error)
}

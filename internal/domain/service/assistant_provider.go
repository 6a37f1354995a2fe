package service

import (
	"context"
	"iter"
)

// AssistantProvider generates answers from a generative-AI model.
type AssistantProvider interface {
	// Name identifies the provider in logs and metrics.
	Name() string

	// Generate returns the complete answer for prompt.
	Generate(ctx context.Context, prompt string) (string, error)

	// GenerateStream yields answer chunks as they arrive. A non-nil error ends the stream.
	GenerateStream(ctx context.Context, prompt string) iter.Seq2[string, error]
}

package usecase

import (
	"context"
	"iter"
)

// AssistantUsecase relays health and emergency questions to the assistant provider.
type AssistantUsecase interface {
	// Ask returns the complete answer. Provider failures are turned into an
	// explanatory answer; only an unconfigured provider returns an error.
	Ask(ctx context.Context, question string) (string, error)

	// AskStream validates the question and returns the answer as a sequence of
	// text chunks. Provider failures end the sequence with an explanatory chunk.
	AskStream(ctx context.Context, question string) (iter.Seq[string], error)
}

package impl

import (
	"context"
	"slices"
	"strings"
	"testing"

	domainerrors "lifeline/internal/domain/errors"
	mockSvc "lifeline/internal/mocks/service"

	"github.com/pkg/errors"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAssistantService(t *testing.T) (*assistantService, *mockSvc.MockAssistantProvider) {
	provider := mockSvc.NewMockAssistantProvider(t)
	provider.EXPECT().Name().Return("gemini").Maybe()

	svc := NewAssistantService(AssistantServiceParams{
		Provider: provider,
		Logger:   newDiscardLogger(),
	}).(*assistantService)

	return svc, provider
}

func TestAssistantService_Ask_Success(t *testing.T) {
	svc, provider := newTestAssistantService(t)
	ctx := context.Background()

	provider.EXPECT().
		Generate(ctx, mock.MatchedBy(func(prompt string) bool {
			return strings.HasPrefix(prompt, healthExpertPrompt) &&
				strings.HasSuffix(prompt, "\n\nUser Question: How do I treat a burn?")
		})).
		Return("Cool the burn under running water.", nil)

	answer, err := svc.Ask(ctx, "How do I treat a burn?")
	require.NoError(t, err)
	assert.Equal(t, "Cool the burn under running water.", answer)
}

func TestAssistantService_Ask_EmptyQuestion(t *testing.T) {
	svc, _ := newTestAssistantService(t)

	_, err := svc.Ask(context.Background(), "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "No question provided", appErr.Details())
}

func TestAssistantService_Ask_ProviderErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "api key rejected",
			err:      errors.New("googleapi: Error 400: API key not valid"),
			expected: "Invalid or expired API key. Please check your Gemini API key.",
		},
		{
			name:     "other failure",
			err:      errors.New("deadline exceeded"),
			expected: "I encountered an error when processing your question: deadline exceeded",
		},
		{
			name:     "circuit open",
			err:      errors.Wrap(gobreaker.ErrOpenState, "assistant provider paused after repeated failures"),
			expected: "I encountered an error when processing your question: assistant provider paused after repeated failures: circuit breaker is open",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, provider := newTestAssistantService(t)
			provider.EXPECT().Generate(mock.Anything, mock.Anything).Return("", tt.err)

			answer, err := svc.Ask(context.Background(), "question")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, answer)
		})
	}
}

func TestAssistantService_Ask_Unavailable(t *testing.T) {
	svc, provider := newTestAssistantService(t)
	provider.EXPECT().Generate(mock.Anything, mock.Anything).Return("", errors.WithStack(domainerrors.ErrAssistantUnavailable))

	_, err := svc.Ask(context.Background(), "question")
	assert.ErrorIs(t, err, domainerrors.ErrAssistantUnavailable)
}

func TestAssistantService_AskStream_YieldsChunks(t *testing.T) {
	svc, provider := newTestAssistantService(t)
	provider.EXPECT().
		GenerateStream(mock.Anything, mock.Anything).
		Return(chunks([]string{"Stay ", "", "calm."}, nil))

	seq, err := svc.AskStream(context.Background(), "question")
	require.NoError(t, err)
	assert.Equal(t, []string{"Stay ", "calm."}, slices.Collect(seq))
}

func TestAssistantService_AskStream_ErrorEndsWithExplanation(t *testing.T) {
	svc, provider := newTestAssistantService(t)
	provider.EXPECT().
		GenerateStream(mock.Anything, mock.Anything).
		Return(chunks([]string{"Partial"}, errors.New("stream reset")))

	seq, err := svc.AskStream(context.Background(), "question")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Partial",
		"I encountered an error when processing your question: stream reset",
	}, slices.Collect(seq))
}

func TestAssistantService_AskStream_Unavailable(t *testing.T) {
	svc, provider := newTestAssistantService(t)
	provider.EXPECT().
		GenerateStream(mock.Anything, mock.Anything).
		Return(chunks(nil, domainerrors.ErrAssistantUnavailable))

	seq, err := svc.AskStream(context.Background(), "question")
	require.NoError(t, err)
	assert.Equal(t, []string{domainerrors.ErrAssistantUnavailable.Message()}, slices.Collect(seq))
}

func TestAssistantService_AskStream_EmptyQuestion(t *testing.T) {
	svc, _ := newTestAssistantService(t)

	seq, err := svc.AskStream(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	assert.Nil(t, seq)
}

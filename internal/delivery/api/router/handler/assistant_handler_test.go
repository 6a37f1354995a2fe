package handler

import (
	"iter"
	"net/http"
	"slices"
	"strings"
	"testing"

	domainerrors "lifeline/internal/domain/errors"
	mockUsecase "lifeline/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAssistantEcho(uc *mockUsecase.MockAssistantUsecase) *echoServer {
	h := NewAssistantHandler(AssistantHandlerParams{AssistantUC: uc, Logger: discardLogger()})
	e := newTestEcho()
	e.POST("/ask", h.Ask)
	e.POST("/ask-stream", h.AskStream)

	return &echoServer{e}
}

func TestAssistantHandler_Ask(t *testing.T) {
	uc := mockUsecase.NewMockAssistantUsecase(t)
	uc.EXPECT().Ask(mock.Anything, "How do I treat a burn?").Return("Cool the burn under running water.", nil)

	rec := newAssistantEcho(uc).do(http.MethodPost, "/ask", `{"question":"How do I treat a burn?"}`)

	assertStatus(t, http.StatusOK, rec)
	assert.JSONEq(t, `{"response":"Cool the burn under running water."}`, rec.Body.String())
}

func TestAssistantHandler_AskEmptyQuestion(t *testing.T) {
	uc := mockUsecase.NewMockAssistantUsecase(t)
	uc.EXPECT().Ask(mock.Anything, "").Return("", domainerrors.ErrInvalidInput.WithDetails("No question provided"))

	rec := newAssistantEcho(uc).do(http.MethodPost, "/ask", `{}`)

	assertStatus(t, http.StatusBadRequest, rec)
	assert.Equal(t, "INVALID_INPUT", errorCode(t, rec))
	assert.Contains(t, rec.Body.String(), "No question provided")
}

func TestAssistantHandler_AskUnavailable(t *testing.T) {
	uc := mockUsecase.NewMockAssistantUsecase(t)
	uc.EXPECT().Ask(mock.Anything, "hi").Return("", errors.WithStack(domainerrors.ErrAssistantUnavailable))

	rec := newAssistantEcho(uc).do(http.MethodPost, "/ask", `{"question":"hi"}`)

	assertStatus(t, http.StatusServiceUnavailable, rec)
	assert.Equal(t, "ASSISTANT_UNAVAILABLE", errorCode(t, rec))
}

func TestAssistantHandler_AskMalformedBody(t *testing.T) {
	uc := mockUsecase.NewMockAssistantUsecase(t)

	rec := newAssistantEcho(uc).do(http.MethodPost, "/ask", `{"question":`)

	assertStatus(t, http.StatusBadRequest, rec)
	assert.Equal(t, "INVALID_INPUT", errorCode(t, rec))
}

func TestAssistantHandler_AskStreamFramesEachChunk(t *testing.T) {
	uc := mockUsecase.NewMockAssistantUsecase(t)
	var chunks iter.Seq[string] = slices.Values([]string{"Stay calm.", "Step 1\nStep 2"})
	uc.EXPECT().AskStream(mock.Anything, "help").Return(chunks, nil)

	rec := newAssistantEcho(uc).do(http.MethodPost, "/ask-stream", `{"question":"help"}`)

	assertStatus(t, http.StatusOK, rec)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "data: Stay calm.\n\ndata: Step 1\ndata: Step 2\n\n", rec.Body.String())
}

func TestAssistantHandler_AskStreamEmptyQuestion(t *testing.T) {
	uc := mockUsecase.NewMockAssistantUsecase(t)
	uc.EXPECT().AskStream(mock.Anything, "").Return(nil, domainerrors.ErrInvalidInput.WithDetails("No question provided"))

	rec := newAssistantEcho(uc).do(http.MethodPost, "/ask-stream", `{"question":""}`)

	assertStatus(t, http.StatusBadRequest, rec)
	assert.Equal(t, "INVALID_INPUT", errorCode(t, rec))
}

func TestWriteEvent(t *testing.T) {
	var b strings.Builder

	assert.NoError(t, writeEvent(&b, "line one\r\nline two"))
	assert.Equal(t, "data: line one\ndata: line two\n\n", b.String())
}

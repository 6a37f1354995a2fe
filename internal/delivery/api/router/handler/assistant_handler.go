package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AssistantHandlerParams holds dependencies for AssistantHandler, injected by Fx.
type AssistantHandlerParams struct {
	fx.In

	AssistantUC usecase.AssistantUsecase
	Logger      *slog.Logger
}

// AssistantHandler serves the health assistant endpoints
type AssistantHandler struct {
	assistantUC usecase.AssistantUsecase
	logger      *slog.Logger
}

// NewAssistantHandler is the constructor for AssistantHandler
func NewAssistantHandler(params AssistantHandlerParams) *AssistantHandler {
	return &AssistantHandler{
		assistantUC: params.AssistantUC,
		logger:      params.Logger,
	}
}

// AskRequest is the body of /ask and /ask-stream
type AskRequest struct {
	Question string `json:"question" validate:"max=8000"`
}

// AskResponse is the body returned by /ask
type AskResponse struct {
	Response string `json:"response"`
}

// Ask returns the complete answer to a question
func (h *AssistantHandler) Ask(c echo.Context) error {
	var req AskRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	answer, err := h.assistantUC.Ask(c.Request().Context(), req.Question)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, AskResponse{Response: answer})
}

// AskStream streams the answer as server-sent events, one event per chunk
func (h *AssistantHandler) AskStream(c echo.Context) error {
	var req AskRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	chunks, err := h.assistantUC.AskStream(ctx, req.Question)
	if err != nil {
		return err
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)

	for chunk := range chunks {
		if err := writeEvent(res, chunk); err != nil {
			// Client went away.
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("Stopped streaming answer", slog.Any("error", err))

			return nil
		}
		res.Flush()
	}

	return nil
}

// writeEvent frames chunk as one SSE event. Each line of a multi-line chunk
// gets its own data field so clients rejoin them with newlines.
func writeEvent(w io.Writer, chunk string) error {
	var frame strings.Builder
	for line := range strings.SplitSeq(chunk, "\n") {
		frame.WriteString("data: ")
		frame.WriteString(strings.TrimSuffix(line, "\r"))
		frame.WriteString("\n")
	}
	frame.WriteString("\n")

	_, err := io.WriteString(w, frame.String())

	return err
}

package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/khairibzd/portfolio-chat/internal/knowledge"
	"github.com/khairibzd/portfolio-chat/internal/portfolio"
	"github.com/khairibzd/portfolio-chat/internal/recruiter"
	"github.com/khairibzd/portfolio-chat/provider"
)

// rephraseFallback is returned with a 200 when the agent produced an
// empty display text, so the widget always has something to render.
const rephraseFallback = "I'm here to help! Could you please rephrase your question? I'm ready to tell you about Mohamed's projects, skills, and experience."

// Agent is the chat pipeline the handler drives.
type Agent interface {
	ProcessMessage(ctx context.Context, req recruiter.ChatRequest) recruiter.ChatResult
	QuickResponses() []recruiter.QuickResponse
}

// ChatHandler serves the chat endpoints. NewAgent builds the agent per
// request; construction fails when the completion-service credential is
// missing.
type ChatHandler struct {
	NewAgent func() (Agent, error)
}

// Register mounts the chat routes.
func (h *ChatHandler) Register(e *echo.Echo) {
	e.POST("/chat", h.chat)
	e.GET("/chat", h.quickResponses)
}

type chatRequest struct {
	Message             string             `json:"message"`
	ConversationHistory []provider.Message `json:"conversationHistory"`
}

type chatResponse struct {
	Response     string                  `json:"response"`
	Context      []knowledge.Item        `json:"context"`
	ProjectCards []portfolio.ProjectCard `json:"projectCards"`
	Timestamp    string                  `json:"timestamp"`
}

// chat handles one question-answering turn.
func (h *ChatHandler) chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		chatRequests.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "Message is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		chatRequests.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "Message is required")
	}

	agent, err := h.NewAgent()
	if err != nil {
		chatRequests.WithLabelValues("error").Inc()
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error":   "Failed to process chat message",
			"details": err.Error(),
		})
	}

	start := time.Now()
	result := agent.ProcessMessage(c.Request().Context(), recruiter.ChatRequest{
		Message:             req.Message,
		ConversationHistory: req.ConversationHistory,
	})
	chatDuration.Observe(time.Since(start).Seconds())
	chatRequests.WithLabelValues("ok").Inc()

	response := result.Response
	if strings.TrimSpace(response) == "" {
		response = rephraseFallback
	}

	ctxItems := result.Context
	if ctxItems == nil {
		ctxItems = []knowledge.Item{}
	}
	cards := result.ProjectCards
	if cards == nil {
		cards = []portfolio.ProjectCard{}
	}

	return c.JSON(http.StatusOK, chatResponse{
		Response:     response,
		Context:      ctxItems,
		ProjectCards: cards,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}

// quickResponses returns the static recruiter question catalog.
func (h *ChatHandler) quickResponses(c echo.Context) error {
	agent, err := h.NewAgent()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Chatbot configuration error",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"quickResponses": agent.QuickResponses(),
		"status":         "Chatbot is ready",
	})
}

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/khairibzd/portfolio-chat/internal/knowledge"
	"github.com/khairibzd/portfolio-chat/internal/portfolio"
	"github.com/khairibzd/portfolio-chat/internal/recruiter"
)

// stubAgent implements Agent with canned results.
type stubAgent struct {
	result  recruiter.ChatResult
	gotReq  recruiter.ChatRequest
	called  bool
	quickly []recruiter.QuickResponse
}

func (s *stubAgent) ProcessMessage(_ context.Context, req recruiter.ChatRequest) recruiter.ChatResult {
	s.called = true
	s.gotReq = req
	return s.result
}

func (s *stubAgent) QuickResponses() []recruiter.QuickResponse {
	return s.quickly
}

func newChatContext(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/chat", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestChatSuccess(t *testing.T) {
	e := echo.New()
	stub := &stubAgent{
		result: recruiter.ChatResult{
			Response: "Here are my projects.",
			Context:  []knowledge.Item{{ID: "about-background", Kind: knowledge.KindAbout, Title: "Professional Background"}},
			ProjectCards: []portfolio.ProjectCard{
				{Type: "project_card", Title: "Carbon Calculator"},
			},
		},
	}
	handler := &ChatHandler{NewAgent: func() (Agent, error) { return stub, nil }}

	ctx, rec := newChatContext(e, http.MethodPost, `{"message":"show me projects","conversationHistory":[{"role":"user","content":"hi"}]}`)
	if err := handler.chat(ctx); err != nil {
		t.Fatalf("chat: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d", rec.Code)
	}

	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Response != "Here are my projects." {
		t.Fatalf("unexpected response: %q", resp.Response)
	}
	if len(resp.Context) != 1 || len(resp.ProjectCards) != 1 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Fatalf("timestamp not RFC3339: %q", resp.Timestamp)
	}

	if !stub.called {
		t.Fatal("agent was not invoked")
	}
	if stub.gotReq.Message != "show me projects" || len(stub.gotReq.ConversationHistory) != 1 {
		t.Fatalf("unexpected agent request: %+v", stub.gotReq)
	}
}

func TestChatEmptySlicesEncodeAsArrays(t *testing.T) {
	e := echo.New()
	stub := &stubAgent{result: recruiter.ChatResult{Response: "plain answer"}}
	handler := &ChatHandler{NewAgent: func() (Agent, error) { return stub, nil }}

	ctx, rec := newChatContext(e, http.MethodPost, `{"message":"hello there"}`)
	if err := handler.chat(ctx); err != nil {
		t.Fatalf("chat: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `"context":[]`) || !strings.Contains(body, `"projectCards":[]`) {
		t.Fatalf("nil slices leaked into response: %s", body)
	}
}

func TestChatValidation(t *testing.T) {
	e := echo.New()
	handler := &ChatHandler{NewAgent: func() (Agent, error) {
		t.Fatal("agent must not be built for invalid requests")
		return nil, nil
	}}

	tests := []struct {
		name string
		body string
	}{
		{name: "missing message", body: `{}`},
		{name: "blank message", body: `{"message":"   "}`},
		{name: "non-string message", body: `{"message":123}`},
		{name: "malformed json", body: `{"message":`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := newChatContext(e, http.MethodPost, tt.body)
			err := handler.chat(ctx)
			he, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected HTTPError, got %v", err)
			}
			if he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 got %d", he.Code)
			}
		})
	}
}

func TestChatConfigurationError(t *testing.T) {
	e := echo.New()
	handler := &ChatHandler{NewAgent: func() (Agent, error) {
		return nil, errors.New("OPENROUTER_API_KEY is not configured")
	}}

	ctx, rec := newChatContext(e, http.MethodPost, `{"message":"hello there"}`)
	if err := handler.chat(ctx); err != nil {
		t.Fatalf("chat: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "Failed to process chat message" || resp["details"] == "" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestChatEmptyAgentResponseFallback(t *testing.T) {
	e := echo.New()
	stub := &stubAgent{result: recruiter.ChatResult{Response: "   "}}
	handler := &ChatHandler{NewAgent: func() (Agent, error) { return stub, nil }}

	ctx, rec := newChatContext(e, http.MethodPost, `{"message":"hello there"}`)
	if err := handler.chat(ctx); err != nil {
		t.Fatalf("chat: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Response != rephraseFallback {
		t.Fatalf("unexpected response: %q", resp.Response)
	}
}

func TestQuickResponsesEndpoint(t *testing.T) {
	e := echo.New()
	stub := &stubAgent{quickly: []recruiter.QuickResponse{
		{Question: "Tell me about your latest projects", Category: "projects"},
	}}
	handler := &ChatHandler{NewAgent: func() (Agent, error) { return stub, nil }}

	ctx, rec := newChatContext(e, http.MethodGet, "")
	if err := handler.quickResponses(ctx); err != nil {
		t.Fatalf("quickResponses: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var resp struct {
		QuickResponses []recruiter.QuickResponse `json:"quickResponses"`
		Status         string                    `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.QuickResponses) != 1 || resp.Status != "Chatbot is ready" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestQuickResponsesConfigurationError(t *testing.T) {
	e := echo.New()
	handler := &ChatHandler{NewAgent: func() (Agent, error) {
		return nil, errors.New("OPENROUTER_API_KEY is not configured")
	}}

	ctx, rec := newChatContext(e, http.MethodGet, "")
	if err := handler.quickResponses(ctx); err != nil {
		t.Fatalf("quickResponses: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "Chatbot configuration error" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

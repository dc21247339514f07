package openrouter_provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/khairibzd/portfolio-chat/config"
)

// Message represents a message in a conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// request represents a request to the OpenRouter chat-completion API
type request struct {
	Model            string    `json:"model"`
	Messages         []Message `json:"messages"`
	Temperature      float64   `json:"temperature"`
	MaxTokens        int       `json:"max_tokens"`
	TopP             float64   `json:"top_p"`
	FrequencyPenalty float64   `json:"frequency_penalty"`
	PresencePenalty  float64   `json:"presence_penalty"`
}

// response represents a response from the OpenRouter API
type response struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
			Role    string `json:"role"`
		} `json:"message"`
	} `json:"choices"`
}

// Client implements a completion client against the OpenRouter API
type Client struct {
	apiKey           string
	model            string
	baseURL          string
	referer          string
	title            string
	temperature      float64
	maxTokens        int
	topP             float64
	frequencyPenalty float64
	presencePenalty  float64
	httpClient       *http.Client
}

// NewClient creates a new OpenRouter client
func NewClient(cfg config.OpenRouterConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:           cfg.APIKey,
		model:            cfg.Model,
		baseURL:          cfg.BaseURL,
		referer:          cfg.Referer,
		title:            cfg.Title,
		temperature:      cfg.Temperature,
		maxTokens:        cfg.MaxTokens,
		topP:             cfg.TopP,
		frequencyPenalty: cfg.FrequencyPenalty,
		presencePenalty:  cfg.PresencePenalty,
		httpClient:       &http.Client{Timeout: timeout},
	}
}

// ChatCompletion sends the message sequence to OpenRouter and returns
// the first completion choice. A non-2xx status, an empty choices array
// or a whitespace-only completion is an error; the call is never
// retried.
func (c *Client) ChatCompletion(ctx context.Context, messages []Message) (string, error) {
	requestBody := request{
		Model:            c.model,
		Messages:         messages,
		Temperature:      c.temperature,
		MaxTokens:        c.maxTokens,
		TopP:             c.topP,
		FrequencyPenalty: c.frequencyPenalty,
		PresencePenalty:  c.presencePenalty,
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if c.referer != "" {
		req.Header.Set("HTTP-Referer", c.referer)
	}
	if c.title != "" {
		req.Header.Set("X-Title", c.title)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("API returned status: %d", resp.StatusCode)
	}

	var orResp response
	if err := json.NewDecoder(resp.Body).Decode(&orResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(orResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	content := orResp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("empty completion content")
	}

	return content, nil
}

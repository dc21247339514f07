package provider

import (
	"context"
	"errors"

	"github.com/khairibzd/portfolio-chat/config"
	openrouter_provider "github.com/khairibzd/portfolio-chat/provider/openrouter"
)

// Message represents a single turn in a conversation
type Message = openrouter_provider.Message

// Message roles accepted by the chat-completion endpoint.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Client represents different completion-service providers
type Client string

const (
	OpenRouter Client = "openrouter"
	OpenAI     Client = "openai"
)

// Provider is the interface that all completion-service implementations
// must satisfy
type Provider interface {
	ChatCompletion(ctx context.Context, messages []Message) (string, error)
}

// NewProvider creates a new completion client based on the provided
// configuration
func NewProvider(client Client, cfg config.OpenRouterConfig) (Provider, error) {
	switch client {
	case OpenRouter:
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return openrouter_provider.NewClient(cfg), nil
	case OpenAI:
		return nil, errors.New("openai client not implemented yet")
	default:
		return nil, errors.New("unsupported completion provider")
	}
}

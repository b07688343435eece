// Package llm is the fallback reply path: messages the keyword classifier
// cannot place are answered by an external chat model, bounded by the
// session's context window.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/g4brie11e/chatbot-backend/internal/chatbot"
	"github.com/g4brie11e/chatbot-backend/internal/config"
)

// ErrFallback wraps every transport or API failure of the fallback call so
// the orchestrator can substitute the localized apology.
var ErrFallback = errors.New("llm fallback failed")

// chatModel is the slice of the eino model surface the client needs.
// Both *openai.ChatModel and *ollama.ChatModel satisfy it.
type chatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// Client sends the bounded conversation window plus the new message to a
// chat completion model. Stateless; one best-effort attempt per call, no
// retries, latency bounded by the configured timeout.
type Client struct {
	model   chatModel
	timeout time.Duration
}

// New builds a fallback client for the configured provider: "ollama" for a
// local model, anything else an OpenAI-compatible endpoint (Mistral by
// default).
func New(ctx context.Context, cfg config.LLMConfig) (*Client, error) {
	var (
		m   chatModel
		err error
	)

	switch strings.ToLower(cfg.Provider) {
	case "ollama":
		m, err = ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
		})
	default:
		maxTokens := cfg.MaxTokens
		temperature := float32(cfg.Temperature)
		m, err = openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			MaxTokens:   &maxTokens,
			Temperature: &temperature,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("error creating chat model: %w", err)
	}

	return &Client{model: m, timeout: cfg.Timeout}, nil
}

const systemPrompt = "You are the assistant of a small web development agency. " +
	"Answer briefly and helpfully. If the user seems interested in a website, " +
	"suggest starting a project inquiry. Answer in %s."

// Complete sends the ordered recent turns plus the new message and returns
// the model's reply in the requested language. Any failure wraps
// ErrFallback.
func (c *Client) Complete(ctx context.Context, history []*schema.Message, message string, lang chatbot.Language) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	input := make([]*schema.Message, 0, len(history)+2)
	input = append(input, schema.SystemMessage(fmt.Sprintf(systemPrompt, lang.Name())))
	input = append(input, history...)
	input = append(input, schema.UserMessage(message))

	resp, err := c.model.Generate(ctx, input)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFallback, err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", fmt.Errorf("%w: empty completion", ErrFallback)
	}

	return strings.TrimSpace(resp.Content), nil
}

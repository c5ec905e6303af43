// internal/gpt/client.go
package gpt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fitness-bot/internal/config"

	"github.com/sashabaranov/go-openai"
)

// ErrEmptyCompletion is returned when the API answers without any choice.
var ErrEmptyCompletion = errors.New("no response from GPT API")

//go:generate mockgen -destination=../../mocks/generator.go -package=mocks fitness-bot/internal/gpt Generator

// Generator turns a prompt into completion text.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Client struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
	// sem bounds in-flight completions.
	sem chan struct{}
}

func NewClient(cfg config.OpenAI) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	limit := cfg.MaxConcurrent
	if limit < 1 {
		limit = 1
	}

	return &Client{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		sem:         make(chan struct{}, limit),
	}
}

// Complete sends prompt as a single chat turn and returns the first choice.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	select {
	case c.sem <- struct{}{}:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	defer func() { <-c.sem }()

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("gpt/Complete: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

var _ Generator = (*Client)(nil)

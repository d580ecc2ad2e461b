package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/folioforge/folioforge/internal/application/service"
	"github.com/folioforge/folioforge/internal/config"
	"github.com/folioforge/folioforge/pkg/logger"
)

type openAIAdapter struct {
	client *openai.Client
	model  string
	log    logger.Logger
}

// NewOpenAIAdapter talks to any OpenAI-compatible endpoint; the base URL and
// model come from config so a local runtime works the same as a hosted one.
func NewOpenAIAdapter(cfg config.Config, log logger.Logger) (service.TextAssistant, error) {
	if cfg.Assist.BaseURL == "" {
		return nil, fmt.Errorf("assist base_url is not configured")
	}

	apiKey := cfg.Assist.ApiKey
	if apiKey == "" {
		apiKey = "dummy-key"
	}

	clientCfg := openai.DefaultConfig(apiKey)
	clientCfg.BaseURL = cfg.Assist.BaseURL

	client := openai.NewClientWithConfig(clientCfg)

	log.Info("Text assistant adapter initialized")
	return &openAIAdapter{client: client, model: cfg.Assist.Model, log: log}, nil
}

func (a *openAIAdapter) Complete(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Stream: false,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("assistant returned no chat choices")
	}

	return resp.Choices[0].Message.Content, nil
}

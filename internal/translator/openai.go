package translator

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

type openAITranslator struct {
	client *openai.Client
	model  string
}

func newOpenAITranslator(cfg config.Translator) Translator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = config.DefaultOpenAIModel
	}

	return &openAITranslator{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

func (o *openAITranslator) Translate(ctx context.Context, text, language string) (string, error) {
	log := logger.FromContext(ctx)

	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: Prompt(text, language),
			},
		},
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "openAITranslator.Translate").Str("language", language).Msg("chat completion request failed")
		return "", fmt.Errorf("%w: %w", ErrTranslation, err)
	}

	if len(resp.Choices) == 0 {
		log.Warn().Str("func", "openAITranslator.Translate").Str("language", language).Msg("no choices returned")
		return "", fmt.Errorf("%w: %w", ErrTranslation, errEmptyResponse)
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", fmt.Errorf("%w: %w", ErrTranslation, errEmptyResponse)
	}

	return translated, nil
}

func (o *openAITranslator) Enabled() bool {
	return true
}

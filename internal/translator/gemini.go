package translator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

type geminiTranslator struct {
	client *genai.Client
	model  string
}

func newGeminiTranslator(ctx context.Context, cfg config.Translator) (Translator, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("error creating gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = config.DefaultGeminiModel
	}

	return &geminiTranslator{client: client, model: model}, nil
}

func (g *geminiTranslator) Translate(ctx context.Context, text, language string) (string, error) {
	log := logger.FromContext(ctx)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(Prompt(text, language)), nil)
	if err != nil {
		log.Err(err).Str("func", "geminiTranslator.Translate").Str("language", language).Msg("generate content request failed")
		return "", fmt.Errorf("%w: %w", ErrTranslation, err)
	}

	translated := strings.TrimSpace(resp.Text())
	if translated == "" {
		log.Warn().Str("func", "geminiTranslator.Translate").Str("language", language).Msg("empty response")
		return "", fmt.Errorf("%w: %w", ErrTranslation, errEmptyResponse)
	}

	return translated, nil
}

func (g *geminiTranslator) Enabled() bool {
	return true
}

var errEmptyResponse = errors.New("provider returned no text")

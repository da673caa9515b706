// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package translator

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// New builds the translator described by cfg.
//
// An empty API key yields [NewUnavailable] and a single warning; this is not
// an error. Otherwise the provider client is wrapped, innermost first, with
// the per-call timeout and the circuit breaker when they are configured.
func New(ctx context.Context, cfg config.Translator, log *logger.Logger) (Translator, error) {
	if !cfg.Enabled() {
		log.Warn().Str("func", "translator.New").Msg("no translation API key configured; translation is disabled")
		return NewUnavailable(), nil
	}

	var (
		provider Translator
		err      error
	)
	switch cfg.Provider {
	case config.ProviderGemini, "":
		provider, err = newGeminiTranslator(ctx, cfg)
	case config.ProviderOpenAI:
		provider = newOpenAITranslator(cfg)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
	if err != nil {
		log.Err(err).Str("func", "translator.New").Str("provider", cfg.Provider).Msg("error creating translation provider")
		return nil, err
	}

	log.Info().Str("provider", cfg.Provider).Str("model", cfg.Model).Msg("translation enabled")

	return WithBreaker(WithTimeout(provider, cfg.Timeout), cfg.BreakerFailures, cfg.BreakerCooldown), nil
}

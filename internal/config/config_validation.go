// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged [StructuredConfig] for values that are wrong
// regardless of which binary uses them.
func (cfg *StructuredConfig) validate() error {
	return cfg.Translator.validate()
}

func (cfg *ServerConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return cfg.Translator.validate()
}

func (cfg *ClientConfig) validate() error {
	if cfg.Remote() {
		if cfg.Adapter.RequestTimeout <= 0 {
			return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
		}
		return nil
	}

	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	return cfg.Translator.validate()
}

func (s Storage) validate() error {
	if s.DB.DSN == "" || strings.Contains(s.DB.DSN, "memory") {
		return fmt.Errorf("%w: a file path is required", ErrInvalidStorageConfigs)
	}
	return nil
}

func (t Translator) validate() error {
	switch t.Provider {
	case "", ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidTranslatorConfigs, t.Provider)
	}

	if t.Timeout < 0 || t.BreakerCooldown < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidTranslatorConfigs)
	}

	return nil
}

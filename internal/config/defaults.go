package config

import "time"

// Translation providers understood by the translator package.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

const (
	DefaultAppVersion      = "dev"
	DefaultDSN             = "./todo.db"
	DefaultServerAddress   = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultGeminiModel     = "gemini-2.5-flash"
	DefaultOpenAIModel     = "gpt-4o-mini"
	DefaultBreakerCooldown = 30 * time.Second

	defaultDotEnvPath = ".env"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: DefaultAppVersion},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
		},
		Translator: Translator{
			Provider:        ProviderGemini,
			BreakerCooldown: DefaultBreakerCooldown,
		},
	}
}

// resolveCredentials fills the translator key and model from the
// provider-specific fallbacks.
func (cfg *StructuredConfig) resolveCredentials() {
	switch cfg.Translator.Provider {
	case ProviderGemini:
		if cfg.Translator.APIKey == "" {
			cfg.Translator.APIKey = cfg.GoogleAPIKey
		}
		if cfg.Translator.Model == "" {
			cfg.Translator.Model = DefaultGeminiModel
		}
	case ProviderOpenAI:
		if cfg.Translator.APIKey == "" {
			cfg.Translator.APIKey = cfg.OpenAIAPIKey
		}
		if cfg.Translator.Model == "" {
			cfg.Translator.Model = DefaultOpenAIModel
		}
	}
}

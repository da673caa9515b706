package config

import (
	"fmt"
)

// ClientConfig is the configuration view of the terminal client assembled
// from [StructuredConfig].
type ClientConfig struct {
	// App contains application-level settings.
	App App
	// Adapter selects remote mode when its HTTPAddress is set.
	Adapter Adapter
	// Storage locates the local item store used in local mode.
	Storage Storage
	// Translator configures translations in local mode.
	Translator Translator
}

// Remote reports whether the client talks to a web server instead of
// opening the store file itself.
func (c *ClientConfig) Remote() bool {
	return c.Adapter.HTTPAddress != ""
}

// GetClientConfig builds and validates the client view of the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App:        cfg.App,
		Adapter:    cfg.Adapter,
		Storage:    cfg.Storage,
		Translator: cfg.Translator,
	}
}

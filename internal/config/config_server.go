package config

import "fmt"

// ServerConfig is the configuration view of the web application.
type ServerConfig struct {
	App        App
	Storage    Storage
	Server     Server
	Translator Translator
}

// GetServerConfig builds and validates the server view of the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)

	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App:        cfg.App,
		Storage:    cfg.Storage,
		Server:     cfg.Server,
		Translator: cfg.Translator,
	}
}

package config

import "fmt"

// ServerConfig is the part of [StructuredConfig] the sync backend uses.
// The client's local database and session file are dropped.
type ServerConfig struct {
	App     App
	Storage Storage
	Server  Server
}

func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	if err = serverCfg.validate(); err != nil {
		return nil, err
	}
	return serverCfg, nil
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App:     cfg.App,
		Storage: Storage{DB: cfg.Storage.DB},
		Server:  cfg.Server,
	}
}

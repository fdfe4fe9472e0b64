package config

import (
	"fmt"
	"time"
)

type ClientApp struct {
	Version string
	LogFile string
}

type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientDB is the local SQLite database. DSN is a file path or ":memory:".
type ClientDB struct {
	DSN string `env:"DSN"`
}

type ClientStorage struct {
	DB          ClientDB
	SessionFile string
}

type ClientWorkers struct {
	SyncInterval time.Duration
}

// ClientConfig is the part of [StructuredConfig] the terminal client uses.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err = clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{Version: cfg.App.Version, LogFile: cfg.App.LogFile},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:          cfg.Storage.Client,
			SessionFile: cfg.Storage.SessionFile,
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}
}

package config

import "time"

const (
	defaultServerAddress = "localhost:8080"
	defaultServerTimeout = 30 * time.Second
	defaultTokenDuration = 24 * time.Hour
	defaultTokenIssuer   = "medi-vault"
	defaultLocalDSN      = "medi-vault.db"
	defaultRemoteTimeout = 10 * time.Second
	defaultSyncInterval  = 5 * time.Minute
)

// defaults fills everything that has a sensible local value. The token
// signing key and the server DSN have none and must always be supplied.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
		},
		Storage: Storage{
			Client: ClientDB{DSN: defaultLocalDSN},
		},
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultServerTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultRemoteTimeout,
		},
		Workers: Workers{SyncInterval: defaultSyncInterval},
	}
}

package config

import "errors"

// Returned by GetClientConfig and GetServerConfig when a group the binary
// depends on is incomplete.
var (
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration: backend address and request timeout are required")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration: database DSN is required")
	ErrInvalidAppConfigs     = errors.New("invalid app configuration: token sign key, issuer and duration are required")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configuration: sync interval must be positive")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration: listen address and request timeout are required")
)

package handler

import (
	"github.com/MKhiriev/go-medi-vault/internal/config"
	"github.com/MKhiriev/go-medi-vault/internal/handler/http"
	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/service"
)

// Handlers groups the transport handlers of the remote store.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-medi-vault/internal/adapter"
	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/store"
	"github.com/MKhiriev/go-medi-vault/models"
)

type clientAccountService struct {
	remote adapter.RemoteStore
	tokens store.TokenStore
	sync   SyncService
	logger *logger.Logger
}

func NewClientAccountService(remote adapter.RemoteStore, tokens store.TokenStore, sync SyncService, logger *logger.Logger) AccountService {
	return &clientAccountService{
		remote: remote,
		tokens: tokens,
		sync:   sync,
		logger: logger,
	}
}

func (a *clientAccountService) Register(ctx context.Context, creds models.Credentials) (models.AccountSession, error) {
	account, err := a.remote.Register(ctx, creds)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAccountService.Register").Msg("registration failed")
		return models.AccountSession{}, mapAdapterError(err)
	}

	if err := a.tokens.Save(account); err != nil {
		a.logger.Err(err).Str("func", "clientAccountService.Register").Msg("error saving remote session")
		return models.AccountSession{}, fmt.Errorf("error saving remote session: %w", err)
	}

	a.logger.Info().Str("func", "clientAccountService.Register").Int64("user_id", account.UserID).Msg("account registered")
	return account, nil
}

func (a *clientAccountService) Login(ctx context.Context, creds models.Credentials) (models.AccountSession, models.SyncReport, error) {
	account, err := a.remote.Login(ctx, creds)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAccountService.Login").Msg("login failed")
		return models.AccountSession{}, models.SyncReport{}, mapAdapterError(err)
	}

	if err := a.tokens.Save(account); err != nil {
		a.logger.Err(err).Str("func", "clientAccountService.Login").Msg("error saving remote session")
		return models.AccountSession{}, models.SyncReport{}, fmt.Errorf("error saving remote session: %w", err)
	}

	a.logger.Info().Str("func", "clientAccountService.Login").Int64("user_id", account.UserID).Msg("signed in")

	report := a.sync.PullFromCloud(ctx)
	return account, report, nil
}

func (a *clientAccountService) Logout(_ context.Context) error {
	if err := a.tokens.Remove(); err != nil {
		a.logger.Err(err).Str("func", "clientAccountService.Logout").Msg("error removing remote session")
		return fmt.Errorf("error removing remote session: %w", err)
	}
	return nil
}

func (a *clientAccountService) Current(_ context.Context) (models.AccountSession, bool) {
	account, err := a.tokens.Load()
	if err != nil {
		if !errors.Is(err, store.ErrTokenNotFound) {
			a.logger.Warn().Err(err).Str("func", "clientAccountService.Current").Msg("error loading remote session")
		}
		return models.AccountSession{}, false
	}
	return account, account.Authenticated()
}

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-medi-vault/internal/config"
	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/validators"
)

// ClientStorages groups the client-side repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	Records   RecordRepository
	Vitals    VitalRepository
	Reminders ReminderRepository
	Settings  SettingsRepository
	Tokens    TokenStore

	db *DB
}

// NewClientStorages opens the local SQLite store at cfg.DB.DSN (creating the
// file when missing), applies pending migrations and wires the repositories.
// The remote session is kept in cfg.SessionFile.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, NewFileTokenStore(cfg.SessionFile)), nil
}

func newClientStorages(db *DB, tokens TokenStore) *ClientStorages {
	validator := validators.NewEntityValidator()

	return &ClientStorages{
		Records:   NewLocalRecordRepository(db, validator),
		Vitals:    NewLocalVitalRepository(db, validator),
		Reminders: NewLocalReminderRepository(db, validator),
		Settings:  NewLocalSettingsRepository(db),
		Tokens:    tokens,
		db:        db,
	}
}

// Close releases the local database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/models"
)

type localSettingsRepository struct {
	*DB
}

func NewLocalSettingsRepository(db *DB) SettingsRepository {
	return &localSettingsRepository{DB: db}
}

func (l *localSettingsRepository) GetSetting(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	err := l.DB.QueryRowContext(ctx, getSetting, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "localSettingsRepository.GetSetting").Str("key", key).Msg("failed to read setting")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (l *localSettingsRepository) PutSetting(ctx context.Context, key, value string) error {
	if _, err := l.DB.ExecContext(ctx, putSetting, key, value); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localSettingsRepository.PutSetting").
			Str("key", key).
			Msg("failed to write setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// SaveCredential inserts the passcode hash without an upsert, so the primary
// key on settings.key decides between two processes setting up the same
// database. The loser gets ErrCredentialExists and nothing is written.
func (l *localSettingsRepository) SaveCredential(ctx context.Context, cred models.Credential) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localSettingsRepository.SaveCredential").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, insertSetting, models.SettingPasscode, cred.PasscodeHash); err != nil {
		if isUniqueViolation(err) {
			return ErrCredentialExists
		}
		log.Err(err).Str("func", "localSettingsRepository.SaveCredential").Msg("failed to write passcode hash")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// a recovery key left without a passcode is stale and gets replaced
	if _, err = tx.ExecContext(ctx, putSetting, models.SettingRecoveryKey, cred.RecoveryKey); err != nil {
		log.Err(err).Str("func", "localSettingsRepository.SaveCredential").Msg("failed to write recovery key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localSettingsRepository.SaveCredential").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localSettingsRepository) DeleteSetting(ctx context.Context, key string) error {
	if _, err := l.DB.ExecContext(ctx, deleteSetting, key); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

package store

import (
	"context"

	"github.com/MKhiriev/go-medi-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// RecordRepository is the local store of encrypted documents.
type RecordRepository interface {
	// SaveRecord validates and inserts rec, returning it with its local ID.
	SaveRecord(ctx context.Context, rec models.Record) (models.Record, error)
	GetRecord(ctx context.Context, id int64) (models.Record, error)
	ListRecords(ctx context.Context) ([]models.Record, error)
	DeleteRecord(ctx context.Context, id int64) error
}

// VitalRepository is the local store of vitals.
type VitalRepository interface {
	SaveVital(ctx context.Context, vital models.Vital) (models.Vital, error)
	ListVitals(ctx context.Context) ([]models.Vital, error)
	DeleteVital(ctx context.Context, id int64) error
}

// ReminderRepository is the local store of medication reminders.
type ReminderRepository interface {
	SaveReminder(ctx context.Context, reminder models.Reminder) (models.Reminder, error)
	ListReminders(ctx context.Context) ([]models.Reminder, error)
	SetReminderActive(ctx context.Context, id int64, active bool) error
	DeleteReminder(ctx context.Context, id int64) error
}

// SettingsRepository is the local key-value settings table. It holds the
// vault credential and the emergency card.
type SettingsRepository interface {
	// GetSetting returns ErrSettingNotFound for keys never written.
	GetSetting(ctx context.Context, key string) (string, error)
	PutSetting(ctx context.Context, key, value string) error
	// SaveCredential stores the vault credential in one transaction. It
	// returns ErrCredentialExists when a passcode hash is already stored.
	SaveCredential(ctx context.Context, cred models.Credential) error
	DeleteSetting(ctx context.Context, key string) error
}

// TokenStore persists the remote session under a fixed key. It is read once
// on first use and cached afterwards.
type TokenStore interface {
	// Load returns ErrTokenNotFound when no session is stored.
	Load() (models.AccountSession, error)
	Save(session models.AccountSession) error
	Remove() error
}

package service

import (
	"context"

	"github.com/MKhiriev/go-medi-vault/internal/crypto"
	"github.com/MKhiriev/go-medi-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// DocumentService manages encrypted medical documents on the device. Every
// call that touches document content takes the session key explicitly.
type DocumentService interface {
	// Upload encodes the file as a data URL, encrypts it under the session
	// key and saves the resulting record locally.
	Upload(ctx context.Context, key crypto.KeySource, upload models.DocumentUpload) (models.Record, error)

	// Open decrypts the record with the given local id. A wrong key, a
	// tampered blob and a payload that is not a data URL all return
	// crypto.ErrDecryptionFailed.
	Open(ctx context.Context, key crypto.KeySource, id int64) (models.Document, error)

	// List returns record metadata, newest first. Nothing is decrypted.
	List(ctx context.Context) ([]models.Record, error)

	// Delete removes the record locally. The remote copy is kept.
	Delete(ctx context.Context, id int64) error
}

// VitalService records health measurements.
type VitalService interface {
	// Add stores a measurement, stamping it with the current time when
	// Timestamp is empty.
	Add(ctx context.Context, vital models.Vital) (models.Vital, error)
	// List returns all measurements in timestamp order.
	List(ctx context.Context) ([]models.Vital, error)
	Delete(ctx context.Context, id int64) error
	// Latest returns the most recent measurement of vitalType, or false.
	Latest(ctx context.Context, vitalType string) (models.Vital, bool, error)
}

// ReminderService manages medication reminders.
type ReminderService interface {
	// Add stores a reminder. Missing frequency and time default to "Daily"
	// and "08:00"; new reminders are active and due at their time.
	Add(ctx context.Context, reminder models.Reminder) (models.Reminder, error)
	List(ctx context.Context) ([]models.Reminder, error)
	// Toggle flips the active flag of reminder and returns the updated value.
	Toggle(ctx context.Context, reminder models.Reminder) (models.Reminder, error)
	Delete(ctx context.Context, id int64) error
}

// EmergencyService reads and writes the emergency contact card. The card is
// stored unencrypted and is available while the vault is locked.
type EmergencyService interface {
	// Get returns the stored card or the default card when none was saved.
	Get(ctx context.Context) (models.ICEData, error)
	Save(ctx context.Context, card models.ICEData) error
}

// AccountService manages the remote store account of the device.
type AccountService interface {
	// Register creates a remote account and signs in with it.
	Register(ctx context.Context, creds models.Credentials) (models.AccountSession, error)
	// Login signs in, persists the session and pulls remote data once. The
	// pull report is returned alongside the session.
	Login(ctx context.Context, creds models.Credentials) (models.AccountSession, models.SyncReport, error)
	// Logout forgets the remote session. Local data is kept.
	Logout(ctx context.Context) error
	// Current returns the persisted session, or false when signed out.
	Current(ctx context.Context) (models.AccountSession, bool)
}

// SyncService reconciles the local store with the remote store. It never
// decrypts anything and never needs the session key: ciphertext, IV and
// salt are copied verbatim in both directions.
//
// Neither method returns an error. Every failure is reported in the
// returned [models.SyncReport]; a missing remote session yields a skipped
// report and performs no I/O.
type SyncService interface {
	// SyncToCloud pushes local items whose natural key is absent remotely.
	SyncToCloud(ctx context.Context) models.SyncReport
	// PullFromCloud inserts remote items whose natural key is absent locally.
	PullFromCloud(ctx context.Context) models.SyncReport
}

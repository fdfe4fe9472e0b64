package store

import (
	"context"

	"github.com/MKhiriev/go-medi-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_store_mock.go -package=mock

// UserRepository stores remote store accounts.
type UserRepository interface {
	// CreateUser returns ErrEmailAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns ErrNoUserWasFound for unknown emails.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// EntityRepository stores synchronized entities on the server, scoped by
// owner.
type EntityRepository interface {
	ListRecords(ctx context.Context, owner int64) ([]models.RemoteRecord, error)
	CreateRecord(ctx context.Context, owner int64, rec models.Record) (models.RemoteRecord, error)
	// RecordOwner returns the owner of the record, or ErrRecordNotFound.
	RecordOwner(ctx context.Context, id string) (int64, error)
	DeleteRecord(ctx context.Context, owner int64, id string) error

	ListVitals(ctx context.Context, owner int64) ([]models.RemoteVital, error)
	CreateVital(ctx context.Context, owner int64, vital models.Vital) (models.RemoteVital, error)

	ListReminders(ctx context.Context, owner int64) ([]models.RemoteReminder, error)
	CreateReminder(ctx context.Context, owner int64, reminder models.Reminder) (models.RemoteReminder, error)
}

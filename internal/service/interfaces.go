package service

import (
	"context"

	"github.com/MKhiriev/go-medi-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=EntityServiceWrapper

// AuthService registers and authenticates remote store accounts and issues
// their bearer tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// EntityService stores synchronized entities on behalf of their owner.
type EntityService interface {
	ListRecords(ctx context.Context, owner int64) ([]models.RemoteRecord, error)
	CreateRecord(ctx context.Context, owner int64, rec models.Record) (models.RemoteRecord, error)
	// DeleteRecord removes the record with the given server id. Returns
	// store.ErrRecordNotFound or ErrUnauthorizedAccessToDifferentUserData.
	DeleteRecord(ctx context.Context, owner int64, id string) error

	ListVitals(ctx context.Context, owner int64) ([]models.RemoteVital, error)
	CreateVital(ctx context.Context, owner int64, vital models.Vital) (models.RemoteVital, error)

	ListReminders(ctx context.Context, owner int64) ([]models.RemoteReminder, error)
	CreateReminder(ctx context.Context, owner int64, reminder models.Reminder) (models.RemoteReminder, error)
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// EntityServiceWrapper defines middleware composition for EntityService.
// Implementations wrap an existing EntityService to add behavior such as
// logging or validating.
type EntityServiceWrapper interface {
	Wrap(EntityService) EntityService // returns a decorated EntityService applying additional behavior
}

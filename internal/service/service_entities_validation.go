package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-medi-vault/internal/utils"
	"github.com/MKhiriev/go-medi-vault/internal/validators"
	"github.com/MKhiriev/go-medi-vault/models"
)

// EntityValidationService rejects malformed entities and requests without an
// owner before they reach the wrapped EntityService.
type EntityValidationService struct {
	inner     EntityService
	validator validators.Validator
}

func NewEntityValidationService() EntityServiceWrapper {
	return &EntityValidationService{
		validator: validators.NewEntityValidator(),
	}
}

func (v *EntityValidationService) ListRecords(ctx context.Context, owner int64) ([]models.RemoteRecord, error) {
	if owner == 0 {
		return nil, ErrValidationNoUserID
	}
	return v.inner.ListRecords(ctx, owner)
}

func (v *EntityValidationService) CreateRecord(ctx context.Context, owner int64, rec models.Record) (models.RemoteRecord, error) {
	if owner == 0 {
		return models.RemoteRecord{}, ErrValidationNoUserID
	}
	if err := v.validator.Validate(ctx, rec); err != nil {
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateRecord(ctx, owner, rec)
}

func (v *EntityValidationService) DeleteRecord(ctx context.Context, owner int64, id string) error {
	if owner == 0 {
		return ErrValidationNoUserID
	}
	if !utils.IsEntityID(id) {
		return ErrValidationNoRecordID
	}
	return v.inner.DeleteRecord(ctx, owner, id)
}

func (v *EntityValidationService) ListVitals(ctx context.Context, owner int64) ([]models.RemoteVital, error) {
	if owner == 0 {
		return nil, ErrValidationNoUserID
	}
	return v.inner.ListVitals(ctx, owner)
}

func (v *EntityValidationService) CreateVital(ctx context.Context, owner int64, vital models.Vital) (models.RemoteVital, error) {
	if owner == 0 {
		return models.RemoteVital{}, ErrValidationNoUserID
	}
	if err := v.validator.Validate(ctx, vital); err != nil {
		return models.RemoteVital{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateVital(ctx, owner, vital)
}

func (v *EntityValidationService) ListReminders(ctx context.Context, owner int64) ([]models.RemoteReminder, error) {
	if owner == 0 {
		return nil, ErrValidationNoUserID
	}
	return v.inner.ListReminders(ctx, owner)
}

func (v *EntityValidationService) CreateReminder(ctx context.Context, owner int64, reminder models.Reminder) (models.RemoteReminder, error) {
	if owner == 0 {
		return models.RemoteReminder{}, ErrValidationNoUserID
	}
	if err := v.validator.Validate(ctx, reminder); err != nil {
		return models.RemoteReminder{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateReminder(ctx, owner, reminder)
}

func (v *EntityValidationService) Wrap(wrapper EntityService) EntityService {
	v.inner = wrapper
	return v
}

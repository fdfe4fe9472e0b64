package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/store"
	"github.com/MKhiriev/go-medi-vault/models"
)

type entityService struct {
	entityRepository store.EntityRepository

	logger *logger.Logger
}

func NewEntityService(entityRepository store.EntityRepository, logger *logger.Logger) EntityService {
	return &entityService{
		entityRepository: entityRepository,
		logger:           logger,
	}
}

func (e *entityService) ListRecords(ctx context.Context, owner int64) ([]models.RemoteRecord, error) {
	return e.entityRepository.ListRecords(ctx, owner)
}

func (e *entityService) CreateRecord(ctx context.Context, owner int64, rec models.Record) (models.RemoteRecord, error) {
	return e.entityRepository.CreateRecord(ctx, owner, rec)
}

func (e *entityService) DeleteRecord(ctx context.Context, owner int64, id string) error {
	log := logger.FromContext(ctx)

	recordOwner, err := e.entityRepository.RecordOwner(ctx, id)
	if err != nil {
		return fmt.Errorf("error resolving record owner: %w", err)
	}
	if recordOwner != owner {
		log.Warn().Str("record_id", id).Int64("owner", owner).Msg("attempt to delete another user's record")
		return ErrUnauthorizedAccessToDifferentUserData
	}

	return e.entityRepository.DeleteRecord(ctx, owner, id)
}

func (e *entityService) ListVitals(ctx context.Context, owner int64) ([]models.RemoteVital, error) {
	return e.entityRepository.ListVitals(ctx, owner)
}

func (e *entityService) CreateVital(ctx context.Context, owner int64, vital models.Vital) (models.RemoteVital, error) {
	return e.entityRepository.CreateVital(ctx, owner, vital)
}

func (e *entityService) ListReminders(ctx context.Context, owner int64) ([]models.RemoteReminder, error) {
	return e.entityRepository.ListReminders(ctx, owner)
}

func (e *entityService) CreateReminder(ctx context.Context, owner int64, reminder models.Reminder) (models.RemoteReminder, error) {
	return e.entityRepository.CreateReminder(ctx, owner, reminder)
}

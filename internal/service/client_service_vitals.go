package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/store"
	"github.com/MKhiriev/go-medi-vault/models"
)

// timestampLayout is the ISO 8601 layout vitals are stamped with.
const timestampLayout = "2006-01-02T15:04:05.000Z"

type clientVitalService struct {
	vitals store.VitalRepository
	logger *logger.Logger

	now func() time.Time
}

func NewClientVitalService(vitals store.VitalRepository, logger *logger.Logger) VitalService {
	return &clientVitalService{
		vitals: vitals,
		logger: logger,
		now:    time.Now,
	}
}

func (v *clientVitalService) Add(ctx context.Context, vital models.Vital) (models.Vital, error) {
	now := v.now().UTC()
	if vital.Timestamp == "" {
		vital.Timestamp = now.Format(timestampLayout)
	}
	if vital.CreatedAt.IsZero() {
		vital.CreatedAt = now
	}
	vital.Type = strings.TrimSpace(vital.Type)
	vital.Value = strings.TrimSpace(vital.Value)

	saved, err := v.vitals.SaveVital(ctx, vital)
	if err != nil {
		v.logger.Err(err).Str("func", "clientVitalService.Add").Msg("error saving vital")
		return models.Vital{}, fmt.Errorf("error saving vital: %w", err)
	}
	return saved, nil
}

func (v *clientVitalService) List(ctx context.Context) ([]models.Vital, error) {
	vitals, err := v.vitals.ListVitals(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing vitals: %w", err)
	}
	return vitals, nil
}

func (v *clientVitalService) Delete(ctx context.Context, id int64) error {
	if err := v.vitals.DeleteVital(ctx, id); err != nil {
		return fmt.Errorf("error deleting vital: %w", err)
	}
	return nil
}

func (v *clientVitalService) Latest(ctx context.Context, vitalType string) (models.Vital, bool, error) {
	vitals, err := v.List(ctx)
	if err != nil {
		return models.Vital{}, false, err
	}

	var (
		latest models.Vital
		found  bool
	)
	for _, vital := range vitals {
		if vital.Type != vitalType {
			continue
		}
		if !found || vital.Timestamp >= latest.Timestamp {
			latest, found = vital, true
		}
	}
	return latest, found, nil
}

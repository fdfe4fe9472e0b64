package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/validators"
	"github.com/MKhiriev/go-medi-vault/models"
)

type localVitalRepository struct {
	*DB
	validator validators.Validator
}

func NewLocalVitalRepository(db *DB, validator validators.Validator) VitalRepository {
	return &localVitalRepository{
		DB:        db,
		validator: validator,
	}
}

func (l *localVitalRepository) SaveVital(ctx context.Context, vital models.Vital) (models.Vital, error) {
	log := logger.FromContext(ctx)

	if err := l.validator.Validate(ctx, vital); err != nil {
		log.Err(err).Str("func", "localVitalRepository.SaveVital").Msg("rejected malformed vital")
		return models.Vital{}, err
	}
	if vital.CreatedAt.IsZero() {
		vital.CreatedAt = time.Now().UTC()
	}

	res, err := l.DB.ExecContext(ctx, insertVital,
		vital.Type,
		vital.Value,
		vital.Unit,
		vital.Timestamp,
		vital.CreatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "localVitalRepository.SaveVital").Msg("failed to insert vital")
		return models.Vital{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	vital.ID, err = res.LastInsertId()
	if err != nil {
		return models.Vital{}, fmt.Errorf("failed to read inserted vital id: %w", err)
	}

	return vital, nil
}

func (l *localVitalRepository) ListVitals(ctx context.Context) ([]models.Vital, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, listVitals)
	if err != nil {
		log.Err(err).Str("func", "localVitalRepository.ListVitals").Msg("failed to query vitals")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	vitals := make([]models.Vital, 0)
	for rows.Next() {
		var v models.Vital
		if err := rows.Scan(&v.ID, &v.Type, &v.Value, &v.Unit, &v.Timestamp, &v.CreatedAt); err != nil {
			log.Err(err).Str("func", "localVitalRepository.ListVitals").Msg("failed to scan vital row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		vitals = append(vitals, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return vitals, nil
}

func (l *localVitalRepository) DeleteVital(ctx context.Context, id int64) error {
	return deleteByID(ctx, l.DB, deleteVital, id, "localVitalRepository.DeleteVital")
}

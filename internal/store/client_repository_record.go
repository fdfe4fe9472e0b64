package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/validators"
	"github.com/MKhiriev/go-medi-vault/models"
)

type localRecordRepository struct {
	*DB
	validator validators.Validator
}

func NewLocalRecordRepository(db *DB, validator validators.Validator) RecordRepository {
	return &localRecordRepository{
		DB:        db,
		validator: validator,
	}
}

func (l *localRecordRepository) SaveRecord(ctx context.Context, rec models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	if err := l.validator.Validate(ctx, rec); err != nil {
		log.Err(err).Str("func", "localRecordRepository.SaveRecord").Msg("rejected malformed record")
		return models.Record{}, err
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	res, err := l.DB.ExecContext(ctx, insertRecord,
		rec.Name,
		rec.Type,
		rec.Category,
		rec.Doctor,
		rec.Hospital,
		rec.Date,
		rec.Size,
		rec.EncryptedData,
		rec.IV,
		rec.Salt,
		rec.CreatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "localRecordRepository.SaveRecord").Msg("failed to insert record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rec.ID, err = res.LastInsertId()
	if err != nil {
		return models.Record{}, fmt.Errorf("failed to read inserted record id: %w", err)
	}

	return rec, nil
}

func (l *localRecordRepository) GetRecord(ctx context.Context, id int64) (models.Record, error) {
	log := logger.FromContext(ctx)

	rec, err := scanRecord(l.DB.QueryRowContext(ctx, getRecord, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "localRecordRepository.GetRecord").Int64("record_id", id).Msg("failed to scan record row")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec, nil
}

func (l *localRecordRepository) ListRecords(ctx context.Context) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, listRecords)
	if err != nil {
		log.Err(err).Str("func", "localRecordRepository.ListRecords").Msg("failed to query records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			log.Err(err).Str("func", "localRecordRepository.ListRecords").Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "localRecordRepository.ListRecords").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (l *localRecordRepository) DeleteRecord(ctx context.Context, id int64) error {
	return deleteByID(ctx, l.DB, deleteRecord, id, "localRecordRepository.DeleteRecord")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.Record, error) {
	var rec models.Record
	err := row.Scan(
		&rec.ID,
		&rec.Name,
		&rec.Type,
		&rec.Category,
		&rec.Doctor,
		&rec.Hospital,
		&rec.Date,
		&rec.Size,
		&rec.EncryptedData,
		&rec.IV,
		&rec.Salt,
		&rec.CreatedAt,
	)
	return rec, err
}

// deleteByID runs a single-row delete and maps zero affected rows to
// ErrRecordNotFound.
func deleteByID(ctx context.Context, db *DB, query string, id int64, fn string) error {
	log := logger.FromContext(ctx)

	res, err := db.ExecContext(ctx, query, id)
	if err != nil {
		log.Err(err).Str("func", fn).Int64("id", id).Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/utils"
	"github.com/MKhiriev/go-medi-vault/models"
)

const (
	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

type idGenerator interface {
	Generate() string
}

// entityRepository is the PostgreSQL-backed implementation of
// [EntityRepository]. New entities get a UUIDv7 identifier and revision 0;
// transient driver failures are retried.
type entityRepository struct {
	db    *DB
	ids   idGenerator
	sleep func(ctx context.Context, d time.Duration) error
}

func NewEntityRepository(db *DB, logger *logger.Logger) EntityRepository {
	logger.Debug().Msg("creating entity repository")
	return &entityRepository{
		db:    db,
		ids:   utils.NewEntityIDs(),
		sleep: sleepContext,
	}
}

func (r *entityRepository) ListRecords(ctx context.Context, owner int64) ([]models.RemoteRecord, error) {
	return listByOwner(ctx, r, "records", recordColumns, owner, func(row rowScanner) (models.RemoteRecord, error) {
		var rec models.RemoteRecord
		err := row.Scan(
			&rec.ServerID, &rec.Owner, &rec.Revision, &rec.ServerCreatedAt,
			&rec.Name, &rec.Type, &rec.Category, &rec.Doctor, &rec.Hospital, &rec.Date, &rec.Size,
			&rec.EncryptedData, &rec.IV, &rec.Salt, &rec.Record.CreatedAt,
		)
		return rec, err
	})
}

func (r *entityRepository) CreateRecord(ctx context.Context, owner int64, rec models.Record) (models.RemoteRecord, error) {
	created := models.RemoteRecord{
		ServerFields: r.newServerFields(owner),
		Record:       rec,
	}
	created.Record.ID = 0

	err := r.insert(ctx, "records", recordColumns, []any{
		created.ServerID, owner, created.Revision,
		rec.Name, rec.Type, rec.Category, rec.Doctor, rec.Hospital, rec.Date, rec.Size,
		rec.EncryptedData, rec.IV, rec.Salt, rec.CreatedAt,
	}, &created.ServerCreatedAt)
	if err != nil {
		return models.RemoteRecord{}, err
	}

	return created, nil
}

func (r *entityRepository) RecordOwner(ctx context.Context, id string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := recordOwnerQuery(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var owner int64
	err = r.retry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&owner)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "entityRepository.RecordOwner").Str("record_id", id).Msg("failed to query record owner")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return owner, nil
}

func (r *entityRepository) DeleteRecord(ctx context.Context, owner int64, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteRecordQuery(owner, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.retry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "entityRepository.DeleteRecord").Str("record_id", id).Int64("owner", owner).Msg("failed to delete record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (r *entityRepository) ListVitals(ctx context.Context, owner int64) ([]models.RemoteVital, error) {
	return listByOwner(ctx, r, "vitals", vitalColumns, owner, func(row rowScanner) (models.RemoteVital, error) {
		var v models.RemoteVital
		err := row.Scan(
			&v.ServerID, &v.Owner, &v.Revision, &v.ServerCreatedAt,
			&v.Type, &v.Value, &v.Unit, &v.Timestamp, &v.Vital.CreatedAt,
		)
		return v, err
	})
}

func (r *entityRepository) CreateVital(ctx context.Context, owner int64, vital models.Vital) (models.RemoteVital, error) {
	created := models.RemoteVital{
		ServerFields: r.newServerFields(owner),
		Vital:        vital,
	}
	created.Vital.ID = 0

	err := r.insert(ctx, "vitals", vitalColumns, []any{
		created.ServerID, owner, created.Revision,
		vital.Type, vital.Value, vital.Unit, vital.Timestamp, vital.CreatedAt,
	}, &created.ServerCreatedAt)
	if err != nil {
		return models.RemoteVital{}, err
	}

	return created, nil
}

func (r *entityRepository) ListReminders(ctx context.Context, owner int64) ([]models.RemoteReminder, error) {
	return listByOwner(ctx, r, "reminders", reminderColumns, owner, func(row rowScanner) (models.RemoteReminder, error) {
		var rem models.RemoteReminder
		err := row.Scan(
			&rem.ServerID, &rem.Owner, &rem.Revision, &rem.ServerCreatedAt,
			&rem.MedicineName, &rem.Dosage, &rem.Frequency, &rem.Time, &rem.IsActive, &rem.NextDose, &rem.Reminder.CreatedAt,
		)
		return rem, err
	})
}

func (r *entityRepository) CreateReminder(ctx context.Context, owner int64, reminder models.Reminder) (models.RemoteReminder, error) {
	created := models.RemoteReminder{
		ServerFields: r.newServerFields(owner),
		Reminder:     reminder,
	}
	created.Reminder.ID = 0

	err := r.insert(ctx, "reminders", reminderColumns, []any{
		created.ServerID, owner, created.Revision,
		reminder.MedicineName, reminder.Dosage, reminder.Frequency, reminder.Time,
		reminder.IsActive, reminder.NextDose, reminder.CreatedAt,
	}, &created.ServerCreatedAt)
	if err != nil {
		return models.RemoteReminder{}, err
	}

	return created, nil
}

func (r *entityRepository) newServerFields(owner int64) models.ServerFields {
	return models.ServerFields{
		ServerID: r.ids.Generate(),
		Owner:    owner,
		Revision: 0,
	}
}

// insert writes one row. columns carries server_created_at in fourth
// position; the database fills it and it is scanned back into createdAt.
func (r *entityRepository) insert(ctx context.Context, table string, columns []string, values []any, createdAt *time.Time) error {
	log := logger.FromContext(ctx)

	insertColumns := append(append([]string{}, columns[:3]...), columns[4:]...)
	query, args, err := insertReturningQuery(table, insertColumns, values)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.retry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(createdAt)
	})
	if err != nil {
		log.Err(err).Str("func", "entityRepository.insert").Str("table", table).Msg("failed to insert entity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *entityRepository) retry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = fn(); err == nil || !r.db.IsRetryable(err) {
			return err
		}
		if attempt == maxAttempts {
			break
		}
		if sleepErr := r.sleep(ctx, time.Duration(attempt)*retryBackoff); sleepErr != nil {
			return sleepErr
		}
	}
	return err
}

func listByOwner[T any](ctx context.Context, r *entityRepository, table string, columns []string, owner int64, scan func(rowScanner) (T, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := listByOwnerQuery(table, columns, owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = r.retry(ctx, func() error {
		var qErr error
		rows, qErr = r.db.QueryContext(ctx, query, args...)
		return qErr
	})
	if err != nil {
		log.Err(err).Str("func", "entityRepository.listByOwner").Str("table", table).Int64("owner", owner).Msg("failed to query entities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			log.Err(err).Str("func", "entityRepository.listByOwner").Str("table", table).Msg("failed to scan entity row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/validators"
	"github.com/MKhiriev/go-medi-vault/models"
)

type localReminderRepository struct {
	*DB
	validator validators.Validator
}

func NewLocalReminderRepository(db *DB, validator validators.Validator) ReminderRepository {
	return &localReminderRepository{
		DB:        db,
		validator: validator,
	}
}

func (l *localReminderRepository) SaveReminder(ctx context.Context, reminder models.Reminder) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	if err := l.validator.Validate(ctx, reminder); err != nil {
		log.Err(err).Str("func", "localReminderRepository.SaveReminder").Msg("rejected malformed reminder")
		return models.Reminder{}, err
	}
	if reminder.CreatedAt.IsZero() {
		reminder.CreatedAt = time.Now().UTC()
	}

	res, err := l.DB.ExecContext(ctx, insertReminder,
		reminder.MedicineName,
		reminder.Dosage,
		reminder.Frequency,
		reminder.Time,
		reminder.IsActive,
		reminder.NextDose,
		reminder.CreatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "localReminderRepository.SaveReminder").Msg("failed to insert reminder")
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	reminder.ID, err = res.LastInsertId()
	if err != nil {
		return models.Reminder{}, fmt.Errorf("failed to read inserted reminder id: %w", err)
	}

	return reminder, nil
}

func (l *localReminderRepository) ListReminders(ctx context.Context) ([]models.Reminder, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, listReminders)
	if err != nil {
		log.Err(err).Str("func", "localReminderRepository.ListReminders").Msg("failed to query reminders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reminders := make([]models.Reminder, 0)
	for rows.Next() {
		var r models.Reminder
		err := rows.Scan(
			&r.ID,
			&r.MedicineName,
			&r.Dosage,
			&r.Frequency,
			&r.Time,
			&r.IsActive,
			&r.NextDose,
			&r.CreatedAt,
		)
		if err != nil {
			log.Err(err).Str("func", "localReminderRepository.ListReminders").Msg("failed to scan reminder row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		reminders = append(reminders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reminders, nil
}

func (l *localReminderRepository) SetReminderActive(ctx context.Context, id int64, active bool) error {
	log := logger.FromContext(ctx)

	res, err := l.DB.ExecContext(ctx, setReminderActive, active, id)
	if err != nil {
		log.Err(err).Str("func", "localReminderRepository.SetReminderActive").Int64("id", id).Msg("failed to update reminder")
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

func (l *localReminderRepository) DeleteReminder(ctx context.Context, id int64) error {
	return deleteByID(ctx, l.DB, deleteReminder, id, "localReminderRepository.DeleteReminder")
}

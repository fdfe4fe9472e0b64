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

// Reminder defaults applied by Add.
const (
	DefaultReminderFrequency = "Daily"
	DefaultReminderTime      = "08:00"
)

type clientReminderService struct {
	reminders store.ReminderRepository
	logger    *logger.Logger

	now func() time.Time
}

func NewClientReminderService(reminders store.ReminderRepository, logger *logger.Logger) ReminderService {
	return &clientReminderService{
		reminders: reminders,
		logger:    logger,
		now:       time.Now,
	}
}

func (r *clientReminderService) Add(ctx context.Context, reminder models.Reminder) (models.Reminder, error) {
	reminder.MedicineName = strings.TrimSpace(reminder.MedicineName)
	reminder.Dosage = strings.TrimSpace(reminder.Dosage)
	if reminder.Frequency == "" {
		reminder.Frequency = DefaultReminderFrequency
	}
	if reminder.Time == "" {
		reminder.Time = DefaultReminderTime
	}
	reminder.IsActive = true
	reminder.NextDose = reminder.Time
	if reminder.CreatedAt.IsZero() {
		reminder.CreatedAt = r.now().UTC()
	}

	saved, err := r.reminders.SaveReminder(ctx, reminder)
	if err != nil {
		r.logger.Err(err).Str("func", "clientReminderService.Add").Msg("error saving reminder")
		return models.Reminder{}, fmt.Errorf("error saving reminder: %w", err)
	}
	return saved, nil
}

func (r *clientReminderService) List(ctx context.Context) ([]models.Reminder, error) {
	reminders, err := r.reminders.ListReminders(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing reminders: %w", err)
	}
	return reminders, nil
}

func (r *clientReminderService) Toggle(ctx context.Context, reminder models.Reminder) (models.Reminder, error) {
	active := !reminder.IsActive
	if err := r.reminders.SetReminderActive(ctx, reminder.ID, active); err != nil {
		r.logger.Err(err).Str("func", "clientReminderService.Toggle").Int64("reminder_id", reminder.ID).Msg("error toggling reminder")
		return reminder, fmt.Errorf("error toggling reminder: %w", err)
	}

	reminder.IsActive = active
	return reminder, nil
}

func (r *clientReminderService) Delete(ctx context.Context, id int64) error {
	if err := r.reminders.DeleteReminder(ctx, id); err != nil {
		return fmt.Errorf("error deleting reminder: %w", err)
	}
	return nil
}

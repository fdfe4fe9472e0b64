package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/store"
	"github.com/MKhiriev/go-medi-vault/models"
)

type clientEmergencyService struct {
	settings store.SettingsRepository
	logger   *logger.Logger
}

func NewClientEmergencyService(settings store.SettingsRepository, logger *logger.Logger) EmergencyService {
	return &clientEmergencyService{
		settings: settings,
		logger:   logger,
	}
}

func (e *clientEmergencyService) Get(ctx context.Context) (models.ICEData, error) {
	raw, err := e.settings.GetSetting(ctx, models.SettingICEData)
	if errors.Is(err, store.ErrSettingNotFound) {
		return models.DefaultICEData(), nil
	}
	if err != nil {
		return models.ICEData{}, fmt.Errorf("error reading emergency card: %w", err)
	}

	var card models.ICEData
	if err := json.Unmarshal([]byte(raw), &card); err != nil {
		e.logger.Err(err).Str("func", "clientEmergencyService.Get").Msg("stored emergency card is malformed")
		return models.DefaultICEData(), nil
	}
	return card, nil
}

func (e *clientEmergencyService) Save(ctx context.Context, card models.ICEData) error {
	raw, err := json.Marshal(card)
	if err != nil {
		return fmt.Errorf("error encoding emergency card: %w", err)
	}

	if err := e.settings.PutSetting(ctx, models.SettingICEData, string(raw)); err != nil {
		e.logger.Err(err).Str("func", "clientEmergencyService.Save").Msg("error saving emergency card")
		return fmt.Errorf("error saving emergency card: %w", err)
	}
	return nil
}

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/LianHaeming/workoutplanner/models"
)

// SettingsKey is the slot key holding user settings.
const SettingsKey = "workoutSettings"

// SettingsStore persists user settings in a Slot.
type SettingsStore struct {
	slot   Slot
	logger *zap.Logger
}

func NewSettingsStore(slot Slot, logger *zap.Logger) *SettingsStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsStore{slot: slot, logger: logger}
}

// Get returns user settings, or defaults if none are stored or they can't
// be read.
func (s *SettingsStore) Get(ctx context.Context) models.UserSettings {
	raw, ok, err := s.slot.Get(ctx, SettingsKey)
	if err != nil {
		s.logger.Warn("could not read settings", zap.Error(err))
		return models.DefaultSettings()
	}
	if !ok {
		return models.DefaultSettings()
	}

	var settings models.UserSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		s.logger.Warn("invalid settings JSON", zap.Error(err))
		return models.DefaultSettings()
	}
	return settings.Normalize()
}

// Save persists user settings.
func (s *SettingsStore) Save(ctx context.Context, settings models.UserSettings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return s.slot.Set(ctx, SettingsKey, string(data))
}

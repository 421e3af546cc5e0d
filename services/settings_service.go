package services

import (
	"context"
	"strings"

	"resort-backend/models"
	"resort-backend/repository"
)

// SettingsService keeps the resort's business profile.
type SettingsService struct {
	Store repository.Store
}

func NewSettingsService(store repository.Store) *SettingsService {
	return &SettingsService{Store: store}
}

func (s *SettingsService) Get(ctx context.Context) (models.ResortSetting, error) {
	var setting models.ResortSetting
	err := readWithRetry(ctx, func() error {
		var err error
		setting, err = s.Store.Settings().Get(ctx)
		return err
	})
	return setting, err
}

func (s *SettingsService) Update(ctx context.Context, setting models.ResortSetting) (models.ResortSetting, error) {
	setting.Name = strings.TrimSpace(setting.Name)
	setting.GSTIN = strings.ToUpper(strings.TrimSpace(setting.GSTIN))
	if setting.Name == "" {
		return setting, validationf("resort name is required")
	}
	if err := s.Store.Settings().Save(ctx, &setting); err != nil {
		return setting, err
	}
	return setting, nil
}

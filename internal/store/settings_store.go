package store

import (
	"time"

	"github.com/vowsnap-dev/vowsnap/internal/models"
	"gorm.io/gorm"
)

type SettingsStore struct {
	db *gorm.DB
}

func NewSettingsStore(db *gorm.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

func (s *SettingsStore) Create(settings *models.TemplateSettings) error {
	settings.LastUpdated = time.Now()
	return s.db.Create(settings).Error
}

func (s *SettingsStore) Get(templateID string) (*models.TemplateSettings, error) {
	var settings models.TemplateSettings
	if err := s.db.First(&settings, "template_id = ?", templateID).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *SettingsStore) Update(templateID string, updates map[string]interface{}) (*models.TemplateSettings, error) {
	settings, err := s.Get(templateID)
	if err != nil {
		return nil, err
	}

	updates["last_updated"] = time.Now()

	if err := s.db.Model(settings).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.Get(templateID)
}

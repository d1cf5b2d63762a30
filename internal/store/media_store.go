package store

import (
	"time"

	"github.com/vowsnap-dev/vowsnap/internal/models"
	"gorm.io/gorm"
)

type MediaStore struct {
	db *gorm.DB
}

func NewMediaStore(db *gorm.DB) *MediaStore {
	return &MediaStore{db: db}
}

func (s *MediaStore) Create(media *models.TemplateMedia) error {
	media.UploadedAt = time.Now()
	return s.db.Create(media).Error
}

func (s *MediaStore) List(templateID string) ([]models.TemplateMedia, error) {
	var media []models.TemplateMedia
	if err := s.db.Where("template_id = ?", templateID).
		Order("uploaded_at DESC").
		Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}

func (s *MediaStore) Get(templateID string, mediaID uint) (*models.TemplateMedia, error) {
	var media models.TemplateMedia
	if err := s.db.Where("template_id = ? AND id = ?", templateID, mediaID).
		First(&media).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (s *MediaStore) Update(templateID string, mediaID uint, updates map[string]interface{}) (*models.TemplateMedia, error) {
	media, err := s.Get(templateID, mediaID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(media).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.Get(templateID, mediaID)
}

func (s *MediaStore) Delete(templateID string, mediaID uint) (bool, error) {
	result := s.db.Where("template_id = ? AND id = ?", templateID, mediaID).
		Delete(&models.TemplateMedia{})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

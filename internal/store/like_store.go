package store

import (
	"errors"
	"time"

	"github.com/vowsnap-dev/vowsnap/internal/models"
	"gorm.io/gorm"
)

type LikeStore struct {
	db *gorm.DB
}

func NewLikeStore(db *gorm.DB) *LikeStore {
	return &LikeStore{db: db}
}

// ToggleResult reports which way the toggle went. Like is only set when
// the toggle added one.
type ToggleResult struct {
	Action string               `json:"action"`
	Like   *models.TemplateLike `json:"like,omitempty"`
}

func (s *LikeStore) List(templateID string) ([]models.TemplateLike, error) {
	var likes []models.TemplateLike
	if err := s.db.Where("template_id = ?", templateID).
		Order("created_at DESC").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

// Toggle is keyed by (templateId, mediaId, deviceId): an existing like is
// removed, a missing one is created. Keying by device rather than user
// name means a renamed guest cannot double-like an item.
func (s *LikeStore) Toggle(templateID string, mediaID uint, userName, deviceID string) (*ToggleResult, error) {
	var existing models.TemplateLike

	err := s.db.Where("template_id = ? AND media_id = ? AND device_id = ?",
		templateID, mediaID, deviceID).First(&existing).Error

	switch {
	case err == nil:
		if err := s.db.Delete(&models.TemplateLike{}, existing.ID).Error; err != nil {
			return nil, err
		}
		return &ToggleResult{Action: "removed"}, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		like := models.TemplateLike{
			TemplateID: templateID,
			MediaID:    mediaID,
			UserName:   userName,
			DeviceID:   deviceID,
			CreatedAt:  time.Now(),
		}
		if err := s.db.Create(&like).Error; err != nil {
			return nil, err
		}
		return &ToggleResult{Action: "added", Like: &like}, nil

	default:
		return nil, err
	}
}

package store

import (
	"errors"
	"time"

	"github.com/vowsnap-dev/vowsnap/internal/models"
	"gorm.io/gorm"
)

type LiveUserStore struct {
	db *gorm.DB
}

func NewLiveUserStore(db *gorm.DB) *LiveUserStore {
	return &LiveUserStore{db: db}
}

func (s *LiveUserStore) List(templateID string) ([]models.TemplateLiveUser, error) {
	var users []models.TemplateLiveUser
	if err := s.db.Where("template_id = ?", templateID).
		Order("last_seen DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Upsert is the heartbeat: one row per (templateId, deviceId), refreshed
// on every ping. Presence never accumulates history.
func (s *LiveUserStore) Upsert(templateID, deviceID, userName string, isActive bool) (*models.TemplateLiveUser, error) {
	var existing models.TemplateLiveUser

	err := s.db.Where("template_id = ? AND device_id = ?", templateID, deviceID).
		First(&existing).Error

	switch {
	case err == nil:
		updates := map[string]interface{}{
			"user_name": userName,
			"last_seen": time.Now(),
			"is_active": isActive,
		}
		if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
			return nil, err
		}
		return s.get(templateID, deviceID)

	case errors.Is(err, gorm.ErrRecordNotFound):
		user := models.TemplateLiveUser{
			TemplateID: templateID,
			DeviceID:   deviceID,
			UserName:   userName,
			LastSeen:   time.Now(),
			IsActive:   isActive,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil

	default:
		return nil, err
	}
}

func (s *LiveUserStore) UpdateStatus(templateID, deviceID string, isActive bool) (bool, error) {
	result := s.db.Model(&models.TemplateLiveUser{}).
		Where("template_id = ? AND device_id = ?", templateID, deviceID).
		Updates(map[string]interface{}{
			"is_active": isActive,
			"last_seen": time.Now(),
		})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// CleanupStale drops presence rows whose last heartbeat predates the
// cutoff.
func (s *LiveUserStore) CleanupStale(templateID string, before time.Time) (int64, error) {
	result := s.db.Where("template_id = ? AND last_seen < ?", templateID, before).
		Delete(&models.TemplateLiveUser{})

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (s *LiveUserStore) get(templateID, deviceID string) (*models.TemplateLiveUser, error) {
	var user models.TemplateLiveUser
	if err := s.db.Where("template_id = ? AND device_id = ?", templateID, deviceID).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

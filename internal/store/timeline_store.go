package store

import (
	"time"

	"github.com/vowsnap-dev/vowsnap/internal/models"
	"gorm.io/gorm"
)

type TimelineStore struct {
	db *gorm.DB
}

func NewTimelineStore(db *gorm.DB) *TimelineStore {
	return &TimelineStore{db: db}
}

func (s *TimelineStore) Create(event *models.TemplateTimelineEvent) error {
	event.CreatedAt = time.Now()
	return s.db.Create(event).Error
}

// List returns the timeline in ascending date order, unlike the
// recency-ordered feeds: a timeline reads oldest first.
func (s *TimelineStore) List(templateID string) ([]models.TemplateTimelineEvent, error) {
	var events []models.TemplateTimelineEvent
	if err := s.db.Where("template_id = ?", templateID).
		Order("date ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *TimelineStore) Get(templateID string, eventID uint) (*models.TemplateTimelineEvent, error) {
	var event models.TemplateTimelineEvent
	if err := s.db.Where("template_id = ? AND id = ?", templateID, eventID).
		First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *TimelineStore) Update(templateID string, eventID uint, updates map[string]interface{}) (*models.TemplateTimelineEvent, error) {
	event, err := s.Get(templateID, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(event).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.Get(templateID, eventID)
}

func (s *TimelineStore) Delete(templateID string, eventID uint) (bool, error) {
	result := s.db.Where("template_id = ? AND id = ?", templateID, eventID).
		Delete(&models.TemplateTimelineEvent{})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

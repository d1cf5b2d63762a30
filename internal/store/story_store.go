package store

import (
	"encoding/json"
	"time"

	"github.com/vowsnap-dev/vowsnap/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StoryTTL is the fixed story lifetime. Not configurable per story.
const StoryTTL = 24 * time.Hour

type StoryStore struct {
	db *gorm.DB
}

func NewStoryStore(db *gorm.DB) *StoryStore {
	return &StoryStore{db: db}
}

func (s *StoryStore) Create(story *models.TemplateStory) error {
	now := time.Now()
	story.CreatedAt = now

	if story.ExpiresAt.IsZero() {
		story.ExpiresAt = now.Add(StoryTTL)
	}

	if len(story.Views) == 0 {
		story.Views = datatypes.JSON([]byte("[]"))
	}

	return s.db.Create(story).Error
}

// ListActive returns only stories whose expiry is still in the future.
// A story expiring exactly now is already gone; the read-time filter is
// the source of truth, cleanup merely reclaims rows.
func (s *StoryStore) ListActive(templateID string) ([]models.TemplateStory, error) {
	var stories []models.TemplateStory
	if err := s.db.Where("template_id = ? AND expires_at > ?", templateID, time.Now()).
		Order("created_at DESC").
		Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}

func (s *StoryStore) Get(templateID string, storyID uint) (*models.TemplateStory, error) {
	var story models.TemplateStory
	if err := s.db.Where("template_id = ? AND id = ?", templateID, storyID).
		First(&story).Error; err != nil {
		return nil, err
	}
	return &story, nil
}

func (s *StoryStore) Delete(templateID string, storyID uint) (bool, error) {
	result := s.db.Where("template_id = ? AND id = ?", templateID, storyID).
		Delete(&models.TemplateStory{})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// CleanupExpired deletes stories whose expiry has passed. The comparator
// is the exact complement of ListActive's, so a story is either listed or
// reclaimable, never both.
func (s *StoryStore) CleanupExpired(templateID string) (int64, error) {
	result := s.db.Where("template_id = ? AND expires_at <= ?", templateID, time.Now()).
		Delete(&models.TemplateStory{})

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// MarkViewed records that a device opened the story. Repeat views by the
// same device leave the views set unchanged.
func (s *StoryStore) MarkViewed(templateID string, storyID uint, deviceID string) (*models.TemplateStory, error) {
	story, err := s.Get(templateID, storyID)
	if err != nil {
		return nil, err
	}

	var views []string
	if len(story.Views) > 0 {
		if err := json.Unmarshal(story.Views, &views); err != nil {
			return nil, err
		}
	}

	for _, v := range views {
		if v == deviceID {
			return story, nil
		}
	}

	views = append(views, deviceID)

	raw, err := json.Marshal(views)
	if err != nil {
		return nil, err
	}

	story.Views = datatypes.JSON(raw)

	if err := s.db.Model(&models.TemplateStory{}).
		Where("template_id = ? AND id = ?", templateID, storyID).
		Update("views", story.Views).Error; err != nil {
		return nil, err
	}

	return story, nil
}

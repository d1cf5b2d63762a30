package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vowsnap-dev/vowsnap/internal/models"
	"gorm.io/gorm"
)

type TemplateStore struct {
	db *gorm.DB
}

func NewTemplateStore(db *gorm.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

// NewTemplateID builds the tenant partition key. The shape mirrors the
// ids already in the wild: "template_<unix millis>_<random fragment>".
func NewTemplateID() string {
	fragment := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("template_%d_%s", time.Now().UnixMilli(), fragment)
}

// Create persists the template and its default settings row in one
// transaction. A wedding without a settings row never exists.
func (s *TemplateStore) Create(template *models.WeddingTemplate) error {
	if template.TemplateID == "" {
		template.TemplateID = NewTemplateID()
	}
	template.IsActive = true

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(template).Error; err != nil {
			return err
		}

		settings := models.TemplateSettings{
			TemplateID:          template.TemplateID,
			IsUnderConstruction: true,
			UpdatedBy:           "system",
			LastUpdated:         time.Now(),
		}

		return tx.Create(&settings).Error
	})
}

func (s *TemplateStore) GetByTemplateID(templateID string) (*models.WeddingTemplate, error) {
	var template models.WeddingTemplate
	if err := s.db.First(&template, "template_id = ?", templateID).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

func (s *TemplateStore) GetBySlug(slug string) (*models.WeddingTemplate, error) {
	var template models.WeddingTemplate
	if err := s.db.First(&template, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

func (s *TemplateStore) ListActive() ([]models.WeddingTemplate, error) {
	var templates []models.WeddingTemplate
	if err := s.db.Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// Update applies a partial update and returns the fresh row, or
// gorm.ErrRecordNotFound when no template carries the id.
func (s *TemplateStore) Update(templateID string, updates map[string]interface{}) (*models.WeddingTemplate, error) {
	var template models.WeddingTemplate

	if err := s.db.First(&template, "template_id = ?", templateID).Error; err != nil {
		return nil, err
	}

	updates["updated_at"] = time.Now()

	if err := s.db.Model(&template).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetByTemplateID(templateID)
}

// SoftDelete flips isActive off. Rows stay behind so tenant-scoped
// content keeps its partition key history.
func (s *TemplateStore) SoftDelete(templateID string) (bool, error) {
	result := s.db.Model(&models.WeddingTemplate{}).
		Where("template_id = ?", templateID).
		Update("is_active", false)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

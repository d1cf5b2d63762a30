package store

import (
	"time"

	"github.com/vowsnap-dev/vowsnap/internal/models"
	"gorm.io/gorm"
)

type CommentStore struct {
	db *gorm.DB
}

func NewCommentStore(db *gorm.DB) *CommentStore {
	return &CommentStore{db: db}
}

func (s *CommentStore) Create(comment *models.TemplateComment) error {
	comment.CreatedAt = time.Now()
	return s.db.Create(comment).Error
}

func (s *CommentStore) List(templateID string) ([]models.TemplateComment, error) {
	var comments []models.TemplateComment
	if err := s.db.Where("template_id = ?", templateID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentStore) Delete(templateID string, commentID uint) (bool, error) {
	result := s.db.Where("template_id = ? AND id = ?", templateID, commentID).
		Delete(&models.TemplateComment{})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

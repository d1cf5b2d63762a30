package models

import (
	"time"

	"gorm.io/datatypes"
)

// WeddingTemplate is the tenant root. TemplateID is the partition key
// carried by every tenant-scoped entity; Slug is the URL-friendly lookup.
// Deletion is soft via IsActive so guest links degrade gracefully.
type WeddingTemplate struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	TemplateID    string         `json:"templateId" gorm:"uniqueIndex;not null"`
	Name          string         `json:"name" gorm:"not null"`
	Slug          string         `json:"slug" gorm:"uniqueIndex;not null"`
	CreatedBy     uint           `json:"createdBy" gorm:"not null"`
	IsActive      bool           `json:"isActive" gorm:"not null;default:true"`
	ProfileImage  string         `json:"profileImage"`
	Description   string         `json:"description"`
	Customization datatypes.JSON `json:"customization" gorm:"type:jsonb"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

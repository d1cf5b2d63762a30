package models

import (
	"time"

	"gorm.io/datatypes"
)

// TemplateSettings is the per-tenant configuration row, created together
// with the template (isUnderConstruction starts true so a fresh wedding
// page is hidden until the admin opens it).
type TemplateSettings struct {
	ID                  uint           `json:"id" gorm:"primaryKey"`
	TemplateID          string         `json:"templateId" gorm:"uniqueIndex;not null"`
	IsUnderConstruction bool           `json:"isUnderConstruction" gorm:"default:true"`
	LastUpdated         time.Time      `json:"lastUpdated"`
	UpdatedBy           string         `json:"updatedBy" gorm:"not null"`
	CustomSettings      datatypes.JSON `json:"customSettings" gorm:"type:jsonb"`
}

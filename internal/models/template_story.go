package models

import (
	"time"

	"gorm.io/datatypes"
)

// TemplateStory is ephemeral: visible only while ExpiresAt is in the
// future. Views holds the distinct device ids that opened the story.
type TemplateStory struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	TemplateID string         `json:"templateId" gorm:"not null;index"`
	MediaURL   string         `json:"mediaUrl" gorm:"not null"`
	MediaType  string         `json:"mediaType" gorm:"not null"`
	UserName   string         `json:"userName" gorm:"not null"`
	DeviceID   string         `json:"deviceId" gorm:"not null"`
	FileName   string         `json:"fileName"`
	Views      datatypes.JSON `json:"views" gorm:"type:jsonb"`
	CreatedAt  time.Time      `json:"createdAt"`
	ExpiresAt  time.Time      `json:"expiresAt" gorm:"not null;index"`
}

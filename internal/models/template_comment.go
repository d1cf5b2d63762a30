package models

import "time"

// TemplateComment references media by id within the same template; the
// link is not an enforced foreign key.
type TemplateComment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	TemplateID string    `json:"templateId" gorm:"not null;index"`
	MediaID    uint      `json:"mediaId" gorm:"not null;index"`
	Text       string    `json:"text" gorm:"not null"`
	UserName   string    `json:"userName" gorm:"not null"`
	DeviceID   string    `json:"deviceId" gorm:"not null"`
	CreatedAt  time.Time `json:"createdAt"`
}

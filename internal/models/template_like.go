package models

import "time"

// TemplateLike is keyed by device, not user name, so renaming a guest
// never duplicates a like. The composite unique index backstops the
// toggle's check-then-write race at the persistence layer.
type TemplateLike struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	TemplateID string    `json:"templateId" gorm:"not null;uniqueIndex:idx_like_media_device"`
	MediaID    uint      `json:"mediaId" gorm:"not null;uniqueIndex:idx_like_media_device"`
	UserName   string    `json:"userName" gorm:"not null"`
	DeviceID   string    `json:"deviceId" gorm:"not null;uniqueIndex:idx_like_media_device"`
	CreatedAt  time.Time `json:"createdAt"`
}

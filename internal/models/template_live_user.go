package models

import "time"

// TemplateLiveUser is a presence heartbeat row: at most one per
// (templateId, deviceId), refreshed by upsert on every ping.
type TemplateLiveUser struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	TemplateID string    `json:"templateId" gorm:"not null;uniqueIndex:idx_live_template_device"`
	UserName   string    `json:"userName" gorm:"not null"`
	DeviceID   string    `json:"deviceId" gorm:"not null;uniqueIndex:idx_live_template_device"`
	LastSeen   time.Time `json:"lastSeen"`
	IsActive   bool      `json:"isActive" gorm:"default:true"`
}

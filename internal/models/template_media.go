package models

import "time"

// TemplateMedia is a gallery item. Type is "image", "video" or "note";
// notes carry NoteText and an empty URL, everything else the inverse.
type TemplateMedia struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	TemplateID    string    `json:"templateId" gorm:"not null;index"`
	Name          string    `json:"name" gorm:"not null"`
	URL           string    `json:"url"`
	UploadedBy    string    `json:"uploadedBy" gorm:"not null"`
	DeviceID      string    `json:"deviceId" gorm:"not null"`
	UploadedAt    time.Time `json:"uploadedAt"`
	Type          string    `json:"type" gorm:"not null"`
	NoteText      string    `json:"noteText,omitempty"`
	IsUnavailable bool      `json:"isUnavailable" gorm:"default:false"`
}

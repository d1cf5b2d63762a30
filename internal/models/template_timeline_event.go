package models

import (
	"time"

	"gorm.io/datatypes"
)

// TemplateTimelineEvent is a milestone on the shared wedding timeline.
// Date is a free-form string and the timeline is read in ascending date
// order. The media arrays are parallel: url, type and original file name
// per attached item.
type TemplateTimelineEvent struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	TemplateID      string         `json:"templateId" gorm:"not null;index"`
	Title           string         `json:"title" gorm:"not null"`
	CustomEventName string         `json:"customEventName,omitempty"`
	Date            string         `json:"date" gorm:"not null"`
	Description     string         `json:"description" gorm:"not null"`
	Location        string         `json:"location,omitempty"`
	Type            string         `json:"type" gorm:"not null"`
	CreatedBy       string         `json:"createdBy" gorm:"not null"`
	MediaURLs       datatypes.JSON `json:"mediaUrls" gorm:"type:jsonb"`
	MediaTypes      datatypes.JSON `json:"mediaTypes" gorm:"type:jsonb"`
	MediaFileNames  datatypes.JSON `json:"mediaFileNames" gorm:"type:jsonb"`
	CreatedAt       time.Time      `json:"createdAt"`
}

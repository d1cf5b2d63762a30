package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vowsnap-dev/vowsnap/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreateTimelineEventRequest struct {
	Title           string   `json:"title" binding:"required"`
	CustomEventName string   `json:"customEventName"`
	Date            string   `json:"date" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	Location        string   `json:"location"`
	Type            string   `json:"type" binding:"required"`
	CreatedBy       string   `json:"createdBy" binding:"required"`
	MediaURLs       []string `json:"mediaUrls"`
	MediaTypes      []string `json:"mediaTypes"`
	MediaFileNames  []string `json:"mediaFileNames"`
}

type UpdateTimelineEventRequest struct {
	Title           *string  `json:"title"`
	CustomEventName *string  `json:"customEventName"`
	Date            *string  `json:"date"`
	Description     *string  `json:"description"`
	Location        *string  `json:"location"`
	Type            *string  `json:"type"`
	MediaURLs       []string `json:"mediaUrls"`
	MediaTypes      []string `json:"mediaTypes"`
	MediaFileNames  []string `json:"mediaFileNames"`
}

func GetTimelineEvents(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	events, err := stores.Timeline.List(templateID)

	if err != nil {
		log.Printf("Failed to fetch timeline for template %s: %v", templateID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch timeline"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"events": events})
}

func CreateTimelineEvent(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	var body CreateTimelineEventRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	event := models.TemplateTimelineEvent{
		TemplateID:      templateID,
		Title:           body.Title,
		CustomEventName: body.CustomEventName,
		Date:            body.Date,
		Description:     body.Description,
		Location:        body.Location,
		Type:            body.Type,
		CreatedBy:       body.CreatedBy,
		MediaURLs:       marshalStrings(body.MediaURLs),
		MediaTypes:      marshalStrings(body.MediaTypes),
		MediaFileNames:  marshalStrings(body.MediaFileNames),
	}

	if err := stores.Timeline.Create(&event); err != nil {
		log.Printf("Failed to create timeline event for template %s: %v", templateID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create timeline event"})
		return
	}

	BroadcastRefresh(templateID)
	ctx.JSON(http.StatusCreated, gin.H{"event": event})
}

func UpdateTimelineEvent(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	eventID, ok := parseID(ctx, "eventId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var body UpdateTimelineEventRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updates := make(map[string]interface{})

	if body.Title != nil {
		updates["title"] = *body.Title
	}
	if body.CustomEventName != nil {
		updates["custom_event_name"] = *body.CustomEventName
	}
	if body.Date != nil {
		updates["date"] = *body.Date
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}
	if body.Location != nil {
		updates["location"] = *body.Location
	}
	if body.Type != nil {
		updates["type"] = *body.Type
	}
	if body.MediaURLs != nil {
		updates["media_urls"] = marshalStrings(body.MediaURLs)
	}
	if body.MediaTypes != nil {
		updates["media_types"] = marshalStrings(body.MediaTypes)
	}
	if body.MediaFileNames != nil {
		updates["media_file_names"] = marshalStrings(body.MediaFileNames)
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	event, err := stores.Timeline.Update(templateID, eventID, updates)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Timeline event not found"})
		} else {
			log.Printf("Failed to update timeline event %d: %v", eventID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update timeline event"})
		}
		return
	}

	BroadcastRefresh(templateID)
	ctx.JSON(http.StatusOK, gin.H{"event": event})
}

func DeleteTimelineEvent(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	eventID, ok := parseID(ctx, "eventId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	deleted, err := stores.Timeline.Delete(templateID, eventID)

	if err != nil {
		log.Printf("Failed to delete timeline event %d: %v", eventID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete timeline event"})
		return
	}

	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Timeline event not found"})
		return
	}

	BroadcastRefresh(templateID)
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func marshalStrings(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

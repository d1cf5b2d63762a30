package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vowsnap-dev/vowsnap/internal/models"
	"gorm.io/gorm"
)

type CreateMediaRequest struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	UploadedBy string `json:"uploadedBy" binding:"required"`
	DeviceID   string `json:"deviceId" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=image video note"`
	NoteText   string `json:"noteText"`
}

type UpdateMediaRequest struct {
	Name          *string `json:"name"`
	URL           *string `json:"url"`
	NoteText      *string `json:"noteText"`
	IsUnavailable *bool   `json:"isUnavailable"`
}

func GetMedia(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	media, err := stores.Media.List(templateID)

	if err != nil {
		log.Printf("Failed to fetch media for template %s: %v", templateID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch media"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"media": media})
}

func CreateMedia(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	var body CreateMediaRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// Notes are text-only; everything else needs a URL and carries no note.
	if body.Type == "note" {
		if body.NoteText == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Note media requires noteText"})
			return
		}
		body.URL = ""
	} else {
		if body.URL == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Media requires a url"})
			return
		}
		body.NoteText = ""
	}

	media := models.TemplateMedia{
		TemplateID: templateID,
		Name:       body.Name,
		URL:        body.URL,
		UploadedBy: body.UploadedBy,
		DeviceID:   body.DeviceID,
		Type:       body.Type,
		NoteText:   body.NoteText,
	}

	if err := stores.Media.Create(&media); err != nil {
		log.Printf("Failed to create media for template %s: %v", templateID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create media"})
		return
	}

	BroadcastRefresh(templateID)
	ctx.JSON(http.StatusCreated, gin.H{"media": media})
}

func UpdateMedia(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	mediaID, ok := parseID(ctx, "mediaId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid media ID"})
		return
	}

	var body UpdateMediaRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updates := make(map[string]interface{})

	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.URL != nil {
		updates["url"] = *body.URL
	}
	if body.NoteText != nil {
		updates["note_text"] = *body.NoteText
	}
	if body.IsUnavailable != nil {
		updates["is_unavailable"] = *body.IsUnavailable
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	media, err := stores.Media.Update(templateID, mediaID, updates)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		} else {
			log.Printf("Failed to update media %d: %v", mediaID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update media"})
		}
		return
	}

	BroadcastRefresh(templateID)
	ctx.JSON(http.StatusOK, gin.H{"media": media})
}

func DeleteMedia(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	mediaID, ok := parseID(ctx, "mediaId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid media ID"})
		return
	}

	deleted, err := stores.Media.Delete(templateID, mediaID)

	if err != nil {
		log.Printf("Failed to delete media %d: %v", mediaID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete media"})
		return
	}

	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		return
	}

	BroadcastRefresh(templateID)
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

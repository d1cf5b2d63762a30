package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vowsnap-dev/vowsnap/internal/models"
	"gorm.io/gorm"
)

type CreateStoryRequest struct {
	MediaURL  string     `json:"mediaUrl" binding:"required"`
	MediaType string     `json:"mediaType" binding:"required,oneof=image video"`
	UserName  string     `json:"userName" binding:"required"`
	DeviceID  string     `json:"deviceId" binding:"required"`
	FileName  string     `json:"fileName"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

type ViewStoryRequest struct {
	DeviceID string `json:"deviceId" binding:"required"`
}

// GetStories lists only unexpired stories; expiry is normal absence, not
// an error.
func GetStories(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	stories, err := stores.Stories.ListActive(templateID)

	if err != nil {
		log.Printf("Failed to fetch stories for template %s: %v", templateID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stories"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"stories": stories})
}

func CreateStory(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	var body CreateStoryRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	story := models.TemplateStory{
		TemplateID: templateID,
		MediaURL:   body.MediaURL,
		MediaType:  body.MediaType,
		UserName:   body.UserName,
		DeviceID:   body.DeviceID,
		FileName:   body.FileName,
	}

	if body.ExpiresAt != nil {
		story.ExpiresAt = *body.ExpiresAt
	}

	if err := stores.Stories.Create(&story); err != nil {
		log.Printf("Failed to create story for template %s: %v", templateID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create story"})
		return
	}

	BroadcastRefresh(templateID)
	ctx.JSON(http.StatusCreated, gin.H{"story": story})
}

func DeleteStory(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	storyID, ok := parseID(ctx, "storyId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid story ID"})
		return
	}

	deleted, err := stores.Stories.Delete(templateID, storyID)

	if err != nil {
		log.Printf("Failed to delete story %d: %v", storyID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete story"})
		return
	}

	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		return
	}

	BroadcastRefresh(templateID)
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// CleanupStories reclaims expired rows on demand. Callers do not depend
// on it for correctness; listing already filters expired stories out.
func CleanupStories(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	deletedCount, err := stores.Stories.CleanupExpired(templateID)

	if err != nil {
		log.Printf("Failed to cleanup stories for template %s: %v", templateID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cleanup stories"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deletedCount": deletedCount})
}

func ViewStory(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	storyID, ok := parseID(ctx, "storyId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid story ID"})
		return
	}

	var body ViewStoryRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	story, err := stores.Stories.MarkViewed(templateID, storyID, body.DeviceID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		} else {
			log.Printf("Failed to mark story %d viewed: %v", storyID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark story viewed"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"story": story})
}

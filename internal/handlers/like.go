package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ToggleLikeRequest struct {
	MediaID  uint   `json:"mediaId" binding:"required"`
	UserName string `json:"userName" binding:"required"`
	DeviceID string `json:"deviceId" binding:"required"`
}

func GetLikes(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	likes, err := stores.Likes.List(templateID)

	if err != nil {
		log.Printf("Failed to fetch likes for template %s: %v", templateID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch likes"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"likes": likes})
}

// ToggleLike responds with {"action": "added", "like": {...}} or
// {"action": "removed"}.
func ToggleLike(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	var body ToggleLikeRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result, err := stores.Likes.Toggle(templateID, body.MediaID, body.UserName, body.DeviceID)

	if err != nil {
		log.Printf("Failed to toggle like for template %s: %v", templateID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		return
	}

	BroadcastRefresh(templateID)
	ctx.JSON(http.StatusOK, result)
}

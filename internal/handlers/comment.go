package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vowsnap-dev/vowsnap/internal/models"
)

type CreateCommentRequest struct {
	MediaID  uint   `json:"mediaId" binding:"required"`
	Text     string `json:"text" binding:"required"`
	UserName string `json:"userName" binding:"required"`
	DeviceID string `json:"deviceId" binding:"required"`
}

func GetComments(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	comments, err := stores.Comments.List(templateID)

	if err != nil {
		log.Printf("Failed to fetch comments for template %s: %v", templateID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"comments": comments})
}

func CreateComment(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	var body CreateCommentRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	comment := models.TemplateComment{
		TemplateID: templateID,
		MediaID:    body.MediaID,
		Text:       body.Text,
		UserName:   body.UserName,
		DeviceID:   body.DeviceID,
	}

	if err := stores.Comments.Create(&comment); err != nil {
		log.Printf("Failed to create comment for template %s: %v", templateID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	BroadcastRefresh(templateID)
	ctx.JSON(http.StatusCreated, gin.H{"comment": comment})
}

func DeleteComment(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	commentID, ok := parseID(ctx, "commentId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	deleted, err := stores.Comments.Delete(templateID, commentID)

	if err != nil {
		log.Printf("Failed to delete comment %d: %v", commentID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	BroadcastRefresh(templateID)
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

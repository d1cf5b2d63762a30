package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UpsertLiveUserRequest struct {
	UserName string `json:"userName" binding:"required"`
	DeviceID string `json:"deviceId" binding:"required"`
	IsActive *bool  `json:"isActive"`
}

type UpdateLiveUserStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

func GetLiveUsers(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	users, err := stores.LiveUsers.List(templateID)

	if err != nil {
		log.Printf("Failed to fetch live users for template %s: %v", templateID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch live users"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"users": users})
}

// UpsertLiveUser is the presence heartbeat. Every ping lands on the same
// (templateId, deviceId) row.
func UpsertLiveUser(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	var body UpsertLiveUserRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}

	user, err := stores.LiveUsers.Upsert(templateID, body.DeviceID, body.UserName, isActive)

	if err != nil {
		log.Printf("Failed to upsert live user for template %s: %v", templateID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update live user"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": user})
}

func UpdateLiveUserStatus(ctx *gin.Context) {
	templateID := ctx.Param("templateId")
	deviceID := ctx.Param("deviceId")

	var body UpdateLiveUserStatusRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updated, err := stores.LiveUsers.UpdateStatus(templateID, deviceID, *body.IsActive)

	if err != nil {
		log.Printf("Failed to update live user status for template %s: %v", templateID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update live user status"})
		return
	}

	if !updated {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Live user not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

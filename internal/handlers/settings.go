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

type UpdateSettingsRequest struct {
	IsUnderConstruction *bool           `json:"isUnderConstruction"`
	UpdatedBy           *string         `json:"updatedBy"`
	CustomSettings      json.RawMessage `json:"customSettings"`
}

func GetSettings(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	settings, err := stores.Settings.Get(templateID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		} else {
			log.Printf("Failed to fetch settings for template %s: %v", templateID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"settings": settings})
}

func UpdateSettings(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	var body UpdateSettingsRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updates := make(map[string]interface{})

	if body.IsUnderConstruction != nil {
		updates["is_under_construction"] = *body.IsUnderConstruction
	}
	if body.UpdatedBy != nil {
		updates["updated_by"] = *body.UpdatedBy
	}
	if body.CustomSettings != nil {
		if err := models.ValidateCustomSettings(body.CustomSettings); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updates["custom_settings"] = datatypes.JSON(body.CustomSettings)
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	settings, err := stores.Settings.Update(templateID, updates)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		} else {
			log.Printf("Failed to update settings for template %s: %v", templateID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		}
		return
	}

	BroadcastRefresh(templateID)
	ctx.JSON(http.StatusOK, gin.H{"settings": settings})
}

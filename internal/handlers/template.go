package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vowsnap-dev/vowsnap/internal/models"
	"github.com/vowsnap-dev/vowsnap/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreateTemplateRequest struct {
	Name          string          `json:"name" binding:"required"`
	Slug          string          `json:"slug" binding:"required"`
	Description   string          `json:"description"`
	ProfileImage  string          `json:"profileImage"`
	Customization json.RawMessage `json:"customization"`
}

type UpdateTemplateRequest struct {
	Name          *string         `json:"name"`
	Slug          *string         `json:"slug"`
	Description   *string         `json:"description"`
	ProfileImage  *string         `json:"profileImage"`
	IsActive      *bool           `json:"isActive"`
	Customization json.RawMessage `json:"customization"`
}

// ListTemplates returns all active weddings (admin surface).
func ListTemplates(ctx *gin.Context) {
	templates, err := stores.Templates.ListActive()

	if err != nil {
		log.Printf("Failed to list templates: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch templates"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"templates": templates})
}

func CreateTemplate(ctx *gin.Context) {
	var body CreateTemplateRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := models.ValidateCustomization(body.Customization); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminID, err := utils.GetCurrentAdminID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	template := models.WeddingTemplate{
		Name:          body.Name,
		Slug:          body.Slug,
		Description:   body.Description,
		ProfileImage:  body.ProfileImage,
		Customization: datatypes.JSON(body.Customization),
		CreatedBy:     adminID,
	}

	if err := stores.Templates.Create(&template); err != nil {
		log.Printf("Failed to create template: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"template": template})
}

func UpdateTemplate(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	var body UpdateTemplateRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updates := make(map[string]interface{})

	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Slug != nil {
		updates["slug"] = *body.Slug
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}
	if body.ProfileImage != nil {
		updates["profile_image"] = *body.ProfileImage
	}
	if body.IsActive != nil {
		updates["is_active"] = *body.IsActive
	}
	if body.Customization != nil {
		if err := models.ValidateCustomization(body.Customization); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updates["customization"] = datatypes.JSON(body.Customization)
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	template, err := stores.Templates.Update(templateID, updates)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		} else {
			log.Printf("Failed to update template %s: %v", templateID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update template"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"template": template})
}

func DeleteTemplate(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	deleted, err := stores.Templates.SoftDelete(templateID)

	if err != nil {
		log.Printf("Failed to delete template %s: %v", templateID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete template"})
		return
	}

	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

func GetTemplate(ctx *gin.Context) {
	templateID := ctx.Param("templateId")

	template, err := stores.Templates.GetByTemplateID(templateID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		} else {
			log.Printf("Failed to fetch template %s: %v", templateID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch template"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"template": template})
}

func GetTemplateBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	template, err := stores.Templates.GetBySlug(slug)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		} else {
			log.Printf("Failed to fetch template by slug %s: %v", slug, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch template"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"template": template})
}

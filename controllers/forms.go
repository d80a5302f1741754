package controllers

import (
	"net/http"
	"strings"

	dbpkg "formforge/db"
	"formforge/generation"
	"formforge/models"
	"formforge/tools"

	"github.com/gin-gonic/gin"
)

type GenerateFormRequest struct {
	Prompt      string   `json:"prompt" form:"prompt"`
	Attachments []string `json:"attachments" form:"attachments"`
}

// GenerateForm runs the whole pipeline for the logged user. Every pipeline
// failure collapses to one generic message; details stay in the logs.
func GenerateForm(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "authentication required", http.StatusUnauthorized)
		return
	}

	var req GenerateFormRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if len(strings.TrimSpace(req.Prompt)) < 5 {
		RespondError(c, "prompt must have at least 5 characters", http.StatusBadRequest)
		return
	}
	for _, attachment := range req.Attachments {
		if !tools.IsURL(attachment) {
			RespondError(c, "attachments must be valid URLs", http.StatusBadRequest)
			return
		}
	}

	service := FormServiceInstance(c)
	if service == nil {
		RespondError(c, "form service not configured in context", http.StatusInternalServerError)
		return
	}

	result, err := service.GenerateForm(c.Request.Context(), generation.GenerateParams{
		Owner:       user,
		Prompt:      req.Prompt,
		Attachments: req.Attachments,
	})
	if err != nil {
		RespondError(c, "unable to generate form", http.StatusInternalServerError)
		return
	}

	RespondCreated(c, result)
}

func GetForms(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "authentication required", http.StatusUnauthorized)
		return
	}
	db := dbpkg.DBInstance(c)

	var forms []models.Form
	if err := db.Where("owner_id = ?", user.ID).Order("created_at desc").Find(&forms).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, forms)
}

func GetFormByID(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "authentication required", http.StatusUnauthorized)
		return
	}
	formID, ok := ParamID(c, "formId")
	if !ok {
		return
	}
	db := dbpkg.DBInstance(c)

	var form models.Form
	if err := db.Where("id = ? AND owner_id = ?", formID, user.ID).First(&form).Error; err != nil {
		RespondError(c, "form not found", http.StatusNotFound)
		return
	}
	RespondSuccess(c, form)
}

type UpdateFormRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Purpose     *string `json:"purpose"`
}

// UpdateForm patches owner-editable metadata. Fields and the embedding
// vector are immutable after generation.
func UpdateForm(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "authentication required", http.StatusUnauthorized)
		return
	}
	formID, ok := ParamID(c, "formId")
	if !ok {
		return
	}

	var req UpdateFormRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	var form models.Form
	if err := db.Where("id = ? AND owner_id = ?", formID, user.ID).First(&form).Error; err != nil {
		RespondError(c, "form not found", http.StatusNotFound)
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			RespondError(c, "title must not be empty", http.StatusBadRequest)
			return
		}
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Purpose != nil {
		updates["purpose"] = *req.Purpose
	}

	if len(updates) > 0 {
		if err := db.Model(&form).Updates(updates).Error; err != nil {
			RespondError(c, err.Error(), http.StatusInternalServerError)
			return
		}
	}
	RespondSuccess(c, form)
}

// DeleteForm removes a form and cascades to its submissions.
func DeleteForm(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "authentication required", http.StatusUnauthorized)
		return
	}
	formID, ok := ParamID(c, "formId")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	tx := db.Begin()

	result := tx.Where("id = ? AND owner_id = ?", formID, user.ID).Delete(&models.Form{})
	if result.Error != nil {
		tx.Rollback()
		RespondError(c, result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		RespondError(c, "form not found", http.StatusNotFound)
		return
	}
	if err := tx.Where("form_id = ?", formID).Delete(&models.Submission{}).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"success": true})
}

func GetFormSubmissions(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "authentication required", http.StatusUnauthorized)
		return
	}
	formID, ok := ParamID(c, "formId")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	var form models.Form
	if err := db.Where("id = ? AND owner_id = ?", formID, user.ID).First(&form).Error; err != nil {
		RespondError(c, "form not found", http.StatusNotFound)
		return
	}

	var submissions []models.Submission
	if err := db.Where("form_id = ?", form.ID).Order("submitted_at desc").Find(&submissions).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, submissions)
}

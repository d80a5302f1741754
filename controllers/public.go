package controllers

import (
	"net/http"
	"time"

	dbpkg "formforge/db"
	"formforge/models"
	"formforge/tools"

	"github.com/gin-gonic/gin"
)

// GetPublicForm serves a form to anyone holding its sharing slug. The
// embedding vector and memory summary stay private (stripped by json tags
// and cleared here).
func GetPublicForm(c *gin.Context) {
	form, ok := findFormBySlug(c)
	if !ok {
		return
	}
	form.MemorySummary = ""
	RespondSuccess(c, form)
}

type SubmitFormRequest struct {
	Values []models.FieldValue `json:"values"`
	Media  []string            `json:"media"`
}

// SubmitPublicForm records one respondent's answers. Field ids are not
// checked against the schema at write time; unknown ids are stored as sent.
func SubmitPublicForm(c *gin.Context) {
	form, ok := findFormBySlug(c)
	if !ok {
		return
	}

	var req SubmitFormRequest
	if err := c.BindJSON(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Values) == 0 {
		RespondError(c, "at least one value is required", http.StatusBadRequest)
		return
	}
	for _, value := range req.Values {
		if value.FieldID == "" {
			RespondError(c, "every value needs a fieldId", http.StatusBadRequest)
			return
		}
	}
	for _, media := range req.Media {
		if !tools.IsURL(media) {
			RespondError(c, "media entries must be valid URLs", http.StatusBadRequest)
			return
		}
	}

	db := dbpkg.DBInstance(c)
	submission := models.Submission{
		FormID:      form.ID,
		OwnerID:     form.OwnerID,
		Values:      req.Values,
		Media:       req.Media,
		SubmittedAt: time.Now().UTC(),
	}
	if err := db.Create(&submission).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondCreated(c, submission)
}

func findFormBySlug(c *gin.Context) (models.Form, bool) {
	slug := c.Param("slug")
	if slug == "" {
		RespondError(c, "slug is required", http.StatusBadRequest)
		return models.Form{}, false
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return models.Form{}, false
	}

	var form models.Form
	if err := db.Where("sharing_slug = ?", slug).First(&form).Error; err != nil {
		RespondError(c, "form not found", http.StatusNotFound)
		return models.Form{}, false
	}
	return form, true
}

package generation

import (
	"strings"

	"formforge/models"
)

// NormalizeFieldType maps whatever the model produced as a field type onto
// the canonical set. Unrecognized or non-string input degrades to "text"
// rather than aborting generation.
func NormalizeFieldType(raw interface{}) string {
	s, ok := raw.(string)
	if !ok {
		return models.FIELD_TYPE_TEXT
	}

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dropdown", "drop-down", "choice", "select":
		return models.FIELD_TYPE_SELECT
	case "multiple choice", "multi-select", "multiselect", "checkbox", "boolean":
		return models.FIELD_TYPE_CHECKBOX
	case "radio", "radio_button", "radio-button":
		return models.FIELD_TYPE_RADIO
	case "textarea", "long text", "longtext":
		return models.FIELD_TYPE_TEXTAREA
	case "file", "upload", "image":
		return models.FIELD_TYPE_FILE
	case "phone", "phone_number", "telephone":
		return models.FIELD_TYPE_PHONE
	case "date", "date-only":
		return models.FIELD_TYPE_DATE
	case "datetime", "date_time", "datetime-local":
		return models.FIELD_TYPE_DATETIME
	case "email", "email_address":
		return models.FIELD_TYPE_EMAIL
	case "url", "link":
		return models.FIELD_TYPE_URL
	case "number", "numeric":
		return models.FIELD_TYPE_NUMBER
	case "text", "short text", "shorttext":
		return models.FIELD_TYPE_TEXT
	default:
		return models.FIELD_TYPE_TEXT
	}
}

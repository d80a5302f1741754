package generation

import (
	"fmt"
	"strings"

	"formforge/models"

	"github.com/google/uuid"
)

// Draft is the sanitized output of a generation attempt, ready to persist.
type Draft struct {
	Title       string
	Description string
	Purpose     string
	Fields      []models.FormField
}

// SanitizeGeneratedForm turns the untrusted decoded payload of the generative
// backend into a valid schema draft. Individual malformed fields are dropped
// or defaulted, never fatal; only a non-object top level is rejected
// (ErrSchemaShape). The draft always ends up with a title and at least one
// field, so the final validation failing is an internal fault
// (ErrInvalidSchema) rather than bad model output.
func SanitizeGeneratedForm(raw interface{}, fallbackLabel string) (Draft, error) {
	candidate, ok := raw.(map[string]interface{})
	if !ok || candidate == nil {
		return Draft{}, fmt.Errorf("%w: got %T", ErrSchemaShape, raw)
	}

	fieldsInput, _ := candidate["fields"].([]interface{})

	fields := make([]models.FormField, 0, len(fieldsInput))
	seenIDs := make(map[string]bool, len(fieldsInput))
	for index, fieldLike := range fieldsInput {
		entry, ok := fieldLike.(map[string]interface{})
		if !ok || entry == nil {
			continue // drop the bad entry, keep the rest
		}
		field := sanitizeField(entry, index)
		if seenIDs[field.ID] {
			// duplicate id from the model; mint a fresh one
			field.ID = uuid.NewString()
		}
		seenIDs[field.ID] = true
		fields = append(fields, field)
	}

	if len(fields) == 0 {
		// A schema with zero fields is never emitted.
		fields = append(fields, models.FormField{
			ID:    uuid.NewString(),
			Label: fallbackLabel,
			Type:  models.FIELD_TYPE_TEXTAREA,
		})
	}

	draft := Draft{
		Title:       stringOr(candidate["title"], "Untitled form"),
		Description: stringOr(candidate["description"], ""),
		Purpose:     stringOr(candidate["purpose"], ""),
		Fields:      fields,
	}

	check := models.Form{Title: draft.Title, Fields: draft.Fields}
	if err := check.Validate(); err != nil {
		return Draft{}, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return draft, nil
}

func sanitizeField(entry map[string]interface{}, index int) models.FormField {
	field := models.FormField{
		ID:       stringOr(entry["id"], ""),
		Label:    stringOr(entry["label"], fmt.Sprintf("Field %d", index+1)),
		Type:     NormalizeFieldType(entry["type"]),
		Required: truthy(entry["required"]),
	}
	if field.ID == "" {
		field.ID = uuid.NewString()
	}
	field.Placeholder = stringOr(entry["placeholder"], "")
	field.Description = stringOr(entry["description"], "")

	if accepts, ok := entry["accept"].([]interface{}); ok {
		for _, item := range accepts {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				field.Accept = append(field.Accept, s)
			}
		}
	}
	if multiline, ok := entry["multiline"].(bool); ok {
		field.Multiline = &multiline
	}

	if field.Type == models.FIELD_TYPE_SELECT || field.Type == models.FIELD_TYPE_RADIO {
		field.Options = sanitizeOptions(entry["options"])
	}
	return field
}

func sanitizeOptions(raw interface{}) []models.FieldOption {
	source, _ := raw.([]interface{})
	options := make([]models.FieldOption, 0, len(source))
	for _, optionLike := range source {
		entry, ok := optionLike.(map[string]interface{})
		if !ok || entry == nil {
			continue
		}
		label := stringOr(entry["label"], "")
		value := stringOr(entry["value"], "")
		if label == "" || value == "" {
			continue
		}
		options = append(options, models.FieldOption{Label: label, Value: value})
	}
	if len(options) == 0 {
		// Choice fields never ship without at least one choice.
		options = append(options, models.FieldOption{Label: "Option 1", Value: "option-1"})
	}
	return options
}

// stringOr returns the trimmed string value, or def when the input is not a
// string or trims to nothing.
func stringOr(raw interface{}, def string) string {
	if s, ok := raw.(string); ok {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return def
}

func truthy(raw interface{}) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	case nil:
		return false
	default:
		return true
	}
}

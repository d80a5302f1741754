package generation

import (
	"testing"

	"formforge/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFieldTypeSynonyms(t *testing.T) {
	cases := map[string]string{
		"dropdown":        models.FIELD_TYPE_SELECT,
		"Drop-Down":       models.FIELD_TYPE_SELECT,
		"choice":          models.FIELD_TYPE_SELECT,
		"multiple choice": models.FIELD_TYPE_CHECKBOX,
		"multiselect":     models.FIELD_TYPE_CHECKBOX,
		"multi-select":    models.FIELD_TYPE_CHECKBOX,
		"boolean":         models.FIELD_TYPE_CHECKBOX,
		"radio_button":    models.FIELD_TYPE_RADIO,
		"long text":       models.FIELD_TYPE_TEXTAREA,
		"longtext":        models.FIELD_TYPE_TEXTAREA,
		"upload":          models.FIELD_TYPE_FILE,
		"Image":           models.FIELD_TYPE_FILE,
		"phone_number":    models.FIELD_TYPE_PHONE,
		"telephone":       models.FIELD_TYPE_PHONE,
		"date-only":       models.FIELD_TYPE_DATE,
		"datetime-local":  models.FIELD_TYPE_DATETIME,
		"email_address":   models.FIELD_TYPE_EMAIL,
		"link":            models.FIELD_TYPE_URL,
		"numeric":         models.FIELD_TYPE_NUMBER,
		"short text":      models.FIELD_TYPE_TEXT,
		"  select  ":      models.FIELD_TYPE_SELECT,
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizeFieldType(input), "input %q", input)
	}
}

func TestNormalizeFieldTypeCanonicalPassthrough(t *testing.T) {
	for _, canonical := range models.FieldTypes {
		assert.Equal(t, canonical, NormalizeFieldType(canonical))
	}
}

func TestNormalizeFieldTypeFailSafe(t *testing.T) {
	assert.Equal(t, models.FIELD_TYPE_TEXT, NormalizeFieldType(42))
	assert.Equal(t, models.FIELD_TYPE_TEXT, NormalizeFieldType(nil))
	assert.Equal(t, models.FIELD_TYPE_TEXT, NormalizeFieldType(true))
	assert.Equal(t, models.FIELD_TYPE_TEXT, NormalizeFieldType([]string{"select"}))
	assert.Equal(t, models.FIELD_TYPE_TEXT, NormalizeFieldType("hologram"))
	assert.Equal(t, models.FIELD_TYPE_TEXT, NormalizeFieldType(""))
}

func TestNormalizeFieldTypeAlwaysCanonical(t *testing.T) {
	inputs := []interface{}{"dropdown", "weird stuff", 3.14, nil, "RADIO", "Phone"}
	for _, input := range inputs {
		assert.True(t, models.IsFieldType(NormalizeFieldType(input)), "input %v", input)
	}
}

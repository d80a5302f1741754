package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

/************************************************
/**** MARK: FIELD TYPES ****/
/************************************************/
const FIELD_TYPE_TEXT = "text"
const FIELD_TYPE_TEXTAREA = "textarea"
const FIELD_TYPE_EMAIL = "email"
const FIELD_TYPE_NUMBER = "number"
const FIELD_TYPE_DATE = "date"
const FIELD_TYPE_DATETIME = "datetime"
const FIELD_TYPE_SELECT = "select"
const FIELD_TYPE_CHECKBOX = "checkbox"
const FIELD_TYPE_RADIO = "radio"
const FIELD_TYPE_FILE = "file"
const FIELD_TYPE_URL = "url"
const FIELD_TYPE_PHONE = "phone"

// FieldTypes lists every canonical field type a form may declare.
var FieldTypes = []string{
	FIELD_TYPE_TEXT,
	FIELD_TYPE_TEXTAREA,
	FIELD_TYPE_EMAIL,
	FIELD_TYPE_NUMBER,
	FIELD_TYPE_DATE,
	FIELD_TYPE_DATETIME,
	FIELD_TYPE_SELECT,
	FIELD_TYPE_CHECKBOX,
	FIELD_TYPE_RADIO,
	FIELD_TYPE_FILE,
	FIELD_TYPE_URL,
	FIELD_TYPE_PHONE,
}

func IsFieldType(t string) bool {
	for _, known := range FieldTypes {
		if t == known {
			return true
		}
	}
	return false
}

// FieldOption is one selectable choice of a select/radio field.
// Value is the wire-level identifier recorded in submissions.
type FieldOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FormField is one input definition inside a form. The ID is unique within
// its form, not globally.
type FormField struct {
	ID          string        `json:"id"`
	Label       string        `json:"label"`
	Type        string        `json:"type"`
	Required    bool          `json:"required"`
	Placeholder string        `json:"placeholder,omitempty"`
	Description string        `json:"description,omitempty"`
	Options     []FieldOption `json:"options,omitempty"`
	Accept      []string      `json:"accept,omitempty"`
	Multiline   *bool         `json:"multiline,omitempty"`
}

// FieldList stores the ordered field definitions as a JSON document column.
type FieldList []FormField

func (l FieldList) Value() (driver.Value, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *FieldList) Scan(src interface{}) error {
	return scanJSONColumn(src, l)
}

// Vector stores an embedding as a JSON array column.
type Vector []float64

func (v Vector) Value() (driver.Value, error) {
	if len(v) == 0 {
		return "", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (v *Vector) Scan(src interface{}) error {
	return scanJSONColumn(src, v)
}

func scanJSONColumn(src interface{}, dst interface{}) error {
	switch data := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(data) == 0 {
			return nil
		}
		return json.Unmarshal(data, dst)
	case string:
		if data == "" {
			return nil
		}
		return json.Unmarshal([]byte(data), dst)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}

// Form is a generated form schema owned by one user. Fields and the embedding
// vector are written once at creation; owner edits touch only title,
// description and purpose.
type Form struct {
	ID              int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	OwnerID         int64      `gorm:"not null;index" json:"owner_id"`
	Title           string     `gorm:"not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description,omitempty"`
	Purpose         string     `json:"purpose,omitempty"`
	SharingSlug     string     `gorm:"not null;unique_index" json:"sharing_slug"`
	Fields          FieldList  `gorm:"type:text;not null" json:"fields"`
	EmbeddingVector Vector     `gorm:"type:text" json:"-"`
	MemorySummary   string     `gorm:"type:text" json:"memory_summary,omitempty"`
	CreatedAt       *time.Time `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}

// Validate checks the full schema contract: non-empty title, at least one
// field, and every field consistent with its declared type.
func (form Form) Validate() error {
	if strings.TrimSpace(form.Title) == "" {
		return fmt.Errorf("form title must not be empty")
	}
	if len(form.Fields) == 0 {
		return fmt.Errorf("form must declare at least one field")
	}
	seen := make(map[string]bool, len(form.Fields))
	for i, field := range form.Fields {
		if err := field.Validate(); err != nil {
			return fmt.Errorf("field %d: %v", i, err)
		}
		if seen[field.ID] {
			return fmt.Errorf("field %d: duplicate id %q", i, field.ID)
		}
		seen[field.ID] = true
	}
	return nil
}

func (field FormField) Validate() error {
	if strings.TrimSpace(field.ID) == "" {
		return fmt.Errorf("missing id")
	}
	if strings.TrimSpace(field.Label) == "" {
		return fmt.Errorf("missing label")
	}
	if !IsFieldType(field.Type) {
		return fmt.Errorf("unknown type %q", field.Type)
	}
	if field.Type == FIELD_TYPE_SELECT || field.Type == FIELD_TYPE_RADIO {
		if len(field.Options) == 0 {
			return fmt.Errorf("%s field needs at least one option", field.Type)
		}
		for _, option := range field.Options {
			if strings.TrimSpace(option.Label) == "" || strings.TrimSpace(option.Value) == "" {
				return fmt.Errorf("option labels and values must not be empty")
			}
		}
	}
	return nil
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

/************************************************
/**** MARK: SUBMISSION VALUE KINDS ****/
/************************************************/

// ValueKind tags the closed set of types a submitted answer may carry.
type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueString
	ValueStringList
	ValueNumber
	ValueBool
)

// Value is a tagged union over string | []string | number | bool | null.
// Only the member matching Kind is meaningful.
type Value struct {
	Kind ValueKind
	Str  string
	List []string
	Num  float64
	Bool bool
}

func StringValue(s string) Value      { return Value{Kind: ValueString, Str: s} }
func StringListValue(l []string) Value { return Value{Kind: ValueStringList, List: l} }
func NumberValue(n float64) Value     { return Value{Kind: ValueNumber, Num: n} }
func BoolValue(b bool) Value          { return Value{Kind: ValueBool, Bool: b} }
func NullValue() Value                { return Value{Kind: ValueNull} }

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueString:
		return json.Marshal(v.Str)
	case ValueStringList:
		if v.List == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.List)
	case ValueNumber:
		return json.Marshal(v.Num)
	case ValueBool:
		return json.Marshal(v.Bool)
	case ValueNull:
		return []byte("null"), nil
	default:
		return nil, fmt.Errorf("unknown value kind %d", v.Kind)
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch typed := raw.(type) {
	case nil:
		*v = NullValue()
	case string:
		*v = StringValue(typed)
	case float64:
		*v = NumberValue(typed)
	case bool:
		*v = BoolValue(typed)
	case []interface{}:
		list := make([]string, 0, len(typed))
		for _, item := range typed {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("submission value lists may only contain strings, got %T", item)
			}
			list = append(list, s)
		}
		*v = StringListValue(list)
	default:
		return fmt.Errorf("unsupported submission value type %T", raw)
	}
	return nil
}

// FieldValue records one answered field. FieldID refers to a field of the
// submitted form; it is not checked against the schema at write time.
type FieldValue struct {
	FieldID string `json:"fieldId"`
	Value   Value  `json:"value"`
}

// FieldValueList stores the ordered answers as a JSON document column.
type FieldValueList []FieldValue

func (l FieldValueList) Value() (driver.Value, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *FieldValueList) Scan(src interface{}) error {
	return scanJSONColumn(src, l)
}

// StringList stores media URLs as a JSON array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	return scanJSONColumn(src, l)
}

// Submission is one respondent's recorded answer set. Immutable after
// creation; removed only when its form is deleted.
type Submission struct {
	ID          int64          `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	FormID      int64          `gorm:"not null;index" json:"form_id"`
	OwnerID     int64          `gorm:"not null;index" json:"owner_id"`
	Values      FieldValueList `gorm:"type:text;not null" json:"values"`
	Media       StringList     `gorm:"type:text" json:"media"`
	SubmittedAt time.Time      `gorm:"index" json:"submitted_at"`
	CreatedAt   *time.Time     `json:"created_at"`
	UpdatedAt   *time.Time     `json:"updated_at"`
}

package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONDocument stores an arbitrary nested JSON object in a jsonb column. Page
// content blobs and product specification maps both ride on this type.
type JSONDocument map[string]any

func (d *JSONDocument) Scan(src any) error {
	if src == nil {
		*d = JSONDocument{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("JSONDocument: unsupported Scan type %T", src)
	}

	if len(raw) == 0 {
		*d = JSONDocument{}
		return nil
	}

	parsed := map[string]any{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("JSONDocument: decode: %w", err)
	}
	*d = parsed
	return nil
}

func (d JSONDocument) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	encoded, err := json.Marshal(map[string]any(d))
	if err != nil {
		return nil, fmt.Errorf("JSONDocument: encode: %w", err)
	}
	return string(encoded), nil
}

// Clone returns a deep copy so callers can mutate without aliasing the stored
// document.
func (d JSONDocument) Clone() JSONDocument {
	if d == nil {
		return JSONDocument{}
	}
	return JSONDocument(cloneValue(map[string]any(d)).(map[string]any))
}

func cloneValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, val := range typed {
			out[k] = cloneValue(val)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, val := range typed {
			out[i] = cloneValue(val)
		}
		return out
	default:
		return v
	}
}

// GormDataType hints the jsonb column type for migrations run through GORM.
func (JSONDocument) GormDataType() string {
	return "jsonb"
}
